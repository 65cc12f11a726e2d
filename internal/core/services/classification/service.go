package classification

import (
	"fmt"
	"time"

	"github.com/AntonioJCosta/okgate/internal/core/domain/execution"
	"github.com/AntonioJCosta/okgate/internal/core/ports"
	"github.com/google/uuid"
)

type service struct {
	executor  ports.CommandExecutor
	matcher   ports.SuccessMatcher
	shellPath string
}

// NewService creates a new result classification service.
// It panics if executor or matcher is nil.
// An empty shellPath leaves the choice of shell to the executor.
func NewService(executor ports.CommandExecutor, matcher ports.SuccessMatcher, shellPath string) ports.ResultClassifier {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	return &service{
		executor:  executor,
		matcher:   matcher,
		shellPath: shellPath,
	}
}

// Classify runs commandLine to completion and searches stderr followed by
// stdout for the success marker. The child's exit code is recorded on the
// result but plays no part in the verdict.
func (s *service) Classify(commandLine string) (*execution.Result, error) {
	started := time.Now()
	stdout, stderr, exitCode, err := s.executor.Execute(s.shellPath, commandLine)
	if err != nil {
		return nil, fmt.Errorf("failed to run command: %w", err)
	}

	result := &execution.Result{
		RunID:       uuid.New().String(),
		CommandLine: commandLine,
		Shell:       s.shellPath,
		Stdout:      stdout,
		Stderr:      stderr,
		ExitCode:    exitCode,
		Duration:    time.Since(started),
	}
	result.Matched = s.matcher.Match(result.CombinedOutput())
	return result, nil
}
