package classification

import (
	"errors"
	"strings"
	"testing"

	"github.com/AntonioJCosta/okgate/internal/adapters/markermatch"
	"github.com/AntonioJCosta/okgate/internal/core/domain/settings"
	"github.com/AntonioJCosta/okgate/internal/core/ports"
	"github.com/AntonioJCosta/okgate/internal/core/testutil"
)

func defaultMatcher(t *testing.T) ports.SuccessMatcher {
	t.Helper()
	m, err := markermatch.NewRegexpMatcher(settings.DefaultSuccessPattern)
	if err != nil {
		t.Fatalf("NewRegexpMatcher() unexpected error = %v", err)
	}
	return m
}

func TestNewService(t *testing.T) {
	t.Run("should return a service if dependencies are set", func(t *testing.T) {
		svc := NewService(&testutil.MockCommandExecutor{}, &testutil.MockSuccessMatcher{}, "")
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if executor is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil executor")
			}
		}()
		_ = NewService(nil, &testutil.MockSuccessMatcher{}, "")
	})

	t.Run("should panic if matcher is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil matcher")
			}
		}()
		_ = NewService(&testutil.MockCommandExecutor{}, nil, "")
	})
}

func TestService_Classify(t *testing.T) {
	tests := []struct {
		name         string
		stdout       string
		stderr       string
		exitCode     int
		wantMatched  bool
		wantExitCode int
	}{
		{
			name:         "marker on stdout with failing exit code",
			stdout:       "OK (12 tests)\n",
			exitCode:     2,
			wantMatched:  true,
			wantExitCode: 2,
		},
		{
			name:         "failure text on stderr",
			stderr:       "FAILURES!!! 1 test failed\n",
			exitCode:     1,
			wantMatched:  false,
			wantExitCode: 1,
		},
		{
			name:        "zero tests",
			stdout:      "OK (0 tests)",
			wantMatched: true,
		},
		{
			name:        "no digits",
			stdout:      "OK (tests)",
			wantMatched: false,
		},
		{
			name:        "empty output",
			wantMatched: false,
		},
		{
			name:        "marker on stderr",
			stderr:      "OK (7 tests)",
			wantMatched: true,
		},
		{
			name:        "marker spans stderr then stdout",
			stderr:      "OK (4",
			stdout:      " tests)",
			wantMatched: true,
		},
		{
			name:        "marker halves in stdout then stderr order do not join",
			stdout:      "OK (4",
			stderr:      " tests)",
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const commandLine = "adb shell am instrument -w com.example.test/androidx.test.runner.AndroidJUnitRunner"
			var gotShell, gotPipeline string
			executor := &testutil.MockCommandExecutor{
				ExecuteFunc: func(shellPath, pipeline string) (string, string, int, error) {
					gotShell, gotPipeline = shellPath, pipeline
					return tt.stdout, tt.stderr, tt.exitCode, nil
				},
			}

			svc := NewService(executor, defaultMatcher(t), "/bin/sh")
			result, err := svc.Classify(commandLine)
			if err != nil {
				t.Fatalf("Classify() unexpected error = %v", err)
			}

			if gotShell != "/bin/sh" || gotPipeline != commandLine {
				t.Errorf("Execute() called with (%q, %q), want (%q, %q)", gotShell, gotPipeline, "/bin/sh", commandLine)
			}
			if result.Matched != tt.wantMatched {
				t.Errorf("Classify() Matched = %v, want %v", result.Matched, tt.wantMatched)
			}
			if result.ExitCode != tt.wantExitCode {
				t.Errorf("Classify() ExitCode = %d, want %d", result.ExitCode, tt.wantExitCode)
			}
			if result.Stdout != tt.stdout || result.Stderr != tt.stderr {
				t.Errorf("Classify() buffers = (%q, %q), want (%q, %q)", result.Stdout, result.Stderr, tt.stdout, tt.stderr)
			}
			if result.CommandLine != commandLine {
				t.Errorf("Classify() CommandLine = %q, want %q", result.CommandLine, commandLine)
			}
			if result.RunID == "" {
				t.Error("Classify() RunID is empty")
			}
		})
	}
}

func TestService_Classify_SearchesStderrBeforeStdout(t *testing.T) {
	var searched string
	matcher := &testutil.MockSuccessMatcher{
		MatchFunc: func(output string) bool {
			searched = output
			return true
		},
	}
	executor := &testutil.MockCommandExecutor{
		ExecuteFunc: func(_, _ string) (string, string, int, error) {
			return "from stdout", "from stderr ", 0, nil
		},
	}

	if _, err := NewService(executor, matcher, "").Classify("whatever"); err != nil {
		t.Fatalf("Classify() unexpected error = %v", err)
	}
	if searched != "from stderr from stdout" {
		t.Errorf("matcher searched %q, want %q", searched, "from stderr from stdout")
	}
}

func TestService_Classify_SpawnFailure(t *testing.T) {
	spawnErr := errors.New("fork/exec /bin/nosh: no such file or directory")
	matcherCalled := false
	matcher := &testutil.MockSuccessMatcher{
		MatchFunc: func(string) bool {
			matcherCalled = true
			return true
		},
	}
	executor := &testutil.MockCommandExecutor{
		ExecuteFunc: func(_, _ string) (string, string, int, error) {
			return "", "", -1, spawnErr
		},
	}

	result, err := NewService(executor, matcher, "/bin/nosh").Classify("echo 'OK (1 tests)'")
	if err == nil {
		t.Fatal("Classify() expected error, got nil")
	}
	if !errors.Is(err, spawnErr) {
		t.Errorf("Classify() error = %v, want it to wrap %v", err, spawnErr)
	}
	if !strings.Contains(err.Error(), "failed to run command") {
		t.Errorf("Classify() error = %q, want context 'failed to run command'", err)
	}
	if result != nil {
		t.Errorf("Classify() result = %+v, want nil", result)
	}
	if matcherCalled {
		t.Error("matcher should not be consulted when the command never ran")
	}
}

func TestService_Classify_Idempotent(t *testing.T) {
	executor := &testutil.MockCommandExecutor{
		ExecuteFunc: func(_, _ string) (string, string, int, error) {
			return "OK (3 tests)\n", "warning: slow device\n", 1, nil
		},
	}
	svc := NewService(executor, defaultMatcher(t), "")

	first, err := svc.Classify("run-tests")
	if err != nil {
		t.Fatalf("Classify() unexpected error = %v", err)
	}
	second, err := svc.Classify("run-tests")
	if err != nil {
		t.Fatalf("Classify() unexpected error = %v", err)
	}

	if first.Matched != second.Matched || first.CombinedOutput() != second.CombinedOutput() {
		t.Errorf("Classify() not repeatable: first %+v, second %+v", first, second)
	}
	if first.RunID == second.RunID {
		t.Error("each run should get its own RunID")
	}
}
