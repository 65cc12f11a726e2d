package ports

// CommandExecutor defines an interface for executing shell commands.
// A non-zero exit of the child is reported through exitCode, not err;
// err is reserved for failures to start the shell at all.
type CommandExecutor interface {
	Execute(shellPath, pipeline string) (stdout string, stderr string, exitCode int, err error)
}
