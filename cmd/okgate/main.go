package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/okgate/internal/adapters/markermatch"
	"github.com/AntonioJCosta/okgate/internal/adapters/oscommand"
	"github.com/AntonioJCosta/okgate/internal/adapters/settingsfile"
	"github.com/AntonioJCosta/okgate/internal/core/domain/settings"
	"github.com/AntonioJCosta/okgate/internal/core/ports"
	"github.com/AntonioJCosta/okgate/internal/core/services/classification"
	"github.com/AntonioJCosta/okgate/internal/handlers/cli"
	"github.com/AntonioJCosta/okgate/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

// Exit statuses. exitFatal covers usage errors, bad settings and commands
// that could not be started, so it never reads as a test verdict.
const (
	exitPass  = 0
	exitFail  = 1
	exitFatal = 2
)

func main() {
	settingsProvider, err := settingsfile.NewYAMLProvider(settingsfile.DefaultFilePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing settings provider: %v\n", err)
		os.Exit(exitFatal)
	}

	cmdExec := oscommand.NewOSCommandExecutor()
	newClassifier := func(s settings.Settings) (ports.ResultClassifier, error) {
		matcher, err := markermatch.NewRegexpMatcher(s.SuccessPattern)
		if err != nil {
			return nil, err
		}
		return classification.NewService(cmdExec, matcher, s.Shell), nil
	}

	rootCmd := cli.NewRootCommand(Version, settingsProvider, newClassifier)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrSuccessMarkerNotFound) {
			os.Exit(exitFail)
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorColor("Error:"), err)
		os.Exit(exitFatal)
	}
	os.Exit(exitPass)
}
