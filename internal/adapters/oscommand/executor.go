package oscommand

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/AntonioJCosta/okgate/internal/core/domain/settings"
	"github.com/AntonioJCosta/okgate/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// Execute runs the given pipeline with "<shellPath> -c" and blocks until it exits,
// returning its fully buffered stdout and stderr together with its exit code.
// If shellPath is empty, settings.DefaultShell is used.
//
// A non-zero exit is not an error. An error is returned only when the shell
// could not be started, in which case no output exists.
func (e *OSCommandExecutor) Execute(shellPath, pipeline string) (string, string, int, error) {
	if shellPath == "" {
		shellPath = settings.DefaultShell
	}

	cmd := exec.Command(shellPath, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outBuf.String(), errBuf.String(), exitErr.ExitCode(), nil
		}
		return "", "", -1, fmt.Errorf("starting shell '%s': %w", shellPath, err)
	}
	return outBuf.String(), errBuf.String(), 0, nil
}
