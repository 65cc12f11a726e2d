package testutil

import "errors"

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(shellPath, pipeline string) (stdout string, stderr string, exitCode int, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(shellPath, pipeline string) (string, string, int, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(shellPath, pipeline)
	}
	return "", "", 0, errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
