/*
Package settings holds the user-tunable knobs of the wrapper.
*/
package settings

const (
	// DefaultShell is used when no shell is configured.
	DefaultShell = "/bin/sh"
	// DefaultSuccessPattern matches a JUnit-style summary such as "OK (12 tests)".
	DefaultSuccessPattern = `OK \(\d+ tests\)`
)

// Settings is read from the optional .okgate.yaml file.
type Settings struct {
	Shell          string `yaml:"shell"`
	SuccessPattern string `yaml:"success_pattern"`
}

// WithDefaults returns a copy with empty fields filled in.
func (s Settings) WithDefaults() Settings {
	if s.Shell == "" {
		s.Shell = DefaultShell
	}
	if s.SuccessPattern == "" {
		s.SuccessPattern = DefaultSuccessPattern
	}
	return s
}
