package testutil

import (
	"errors"

	"github.com/AntonioJCosta/okgate/internal/core/domain/execution"
)

// MockResultClassifier is a mock implementation of ports.ResultClassifier.
type MockResultClassifier struct {
	ClassifyFunc func(commandLine string) (*execution.Result, error)
}

// Classify calls the mock ClassifyFunc.
func (m *MockResultClassifier) Classify(commandLine string) (*execution.Result, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(commandLine)
	}
	return nil, errors.New("MockResultClassifier.ClassifyFunc not implemented")
}
