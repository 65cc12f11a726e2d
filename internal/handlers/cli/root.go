package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/okgate/internal/core/domain/settings"
	"github.com/AntonioJCosta/okgate/internal/core/ports"
	"github.com/spf13/cobra"
)

// ErrSuccessMarkerNotFound is returned when the command ran but its output
// carried no success marker. main maps it to exit status 1.
var ErrSuccessMarkerNotFound = errors.New("success marker not found in command output")

// ClassifierFactory builds a ResultClassifier for the effective settings.
type ClassifierFactory func(s settings.Settings) (ports.ResultClassifier, error)

func NewRootCommand(
	version string,
	settingsProvider ports.SettingsProvider,
	newClassifier ClassifierFactory,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "okgate [flags] \"<shell command>\"",
		Short: "okgate runs a test command and trusts its summary line, not its exit code.",
		Long: `okgate runs the given command line through a shell, waits for it to finish,
and prints its captured stderr followed by its captured stdout.

It exits 0 if the combined output contains a test summary such as "OK (12 tests)"
and 1 otherwise, whatever exit code the command itself returned. This adapts
test harnesses with unreliable exit codes (adb instrumentation, for example)
to CI exit-code semantics.`,
		Example: `  okgate "adb shell am instrument -w com.example.test/androidx.test.runner.AndroidJUnitRunner"
  okgate --summary "./run-device-tests.sh 2>&1 | tee device.log"`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, errors are about the run, not about usage.
			cmd.SilenceUsage = true
			return runRootCmd(cmd, args, settingsProvider, newClassifier)
		},
		SilenceErrors: true,
	}

	// Everything after the command string belongs to it, never to okgate.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().String("shell", "", fmt.Sprintf("Shell used to run the command (default %s).", settings.DefaultShell))
	cmd.Flags().String("pattern", "", fmt.Sprintf("Regular expression marking a successful run (default %q).", settings.DefaultSuccessPattern))
	cmd.Flags().Bool("summary", false, "Print a verdict and run details to stderr after the command output.")

	return cmd
}

func runRootCmd(
	cmd *cobra.Command,
	args []string,
	settingsProvider ports.SettingsProvider,
	newClassifier ClassifierFactory,
) error {
	if settingsProvider == nil || newClassifier == nil {
		return fmt.Errorf("services not initialized for okgate")
	}

	s, err := effectiveSettings(cmd, settingsProvider)
	if err != nil {
		return err
	}

	classifier, err := newClassifier(s)
	if err != nil {
		return fmt.Errorf("could not set up classifier: %w", err)
	}

	result, err := classifier.Classify(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Stderr)
	fmt.Fprintln(out, result.Stdout)

	if showSummary, _ := cmd.Flags().GetBool("summary"); showSummary {
		printSummary(cmd.ErrOrStderr(), result, s.SuccessPattern)
	}

	if !result.Matched {
		return ErrSuccessMarkerNotFound
	}
	return nil
}

// effectiveSettings layers command-line flags over the settings file, then defaults.
func effectiveSettings(cmd *cobra.Command, settingsProvider ports.SettingsProvider) (settings.Settings, error) {
	s, err := settingsProvider.GetSettings()
	if err != nil {
		return settings.Settings{}, fmt.Errorf("could not load settings from %s: %w", settingsProvider.GetSourceIdentifier(), err)
	}

	if cmd.Flags().Changed("shell") {
		s.Shell, _ = cmd.Flags().GetString("shell")
	}
	if cmd.Flags().Changed("pattern") {
		s.SuccessPattern, _ = cmd.Flags().GetString("pattern")
	}
	return s.WithDefaults(), nil
}
