package ports

import "github.com/AntonioJCosta/okgate/internal/core/domain/execution"

// ResultClassifier runs a command line and classifies its output.
type ResultClassifier interface {
	// Classify runs commandLine to completion and reports whether its
	// combined output matched the success marker. An error means the
	// command could not be started and no verdict exists.
	Classify(commandLine string) (*execution.Result, error)
}
