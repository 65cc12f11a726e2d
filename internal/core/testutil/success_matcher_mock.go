package testutil

// MockSuccessMatcher is a mock implementation of ports.SuccessMatcher.
type MockSuccessMatcher struct {
	MatchFunc   func(output string) bool
	PatternFunc func() string
}

// Match calls the mock MatchFunc. It reports false if MatchFunc is not set.
func (m *MockSuccessMatcher) Match(output string) bool {
	if m.MatchFunc != nil {
		return m.MatchFunc(output)
	}
	return false
}

// Pattern calls the mock PatternFunc.
func (m *MockSuccessMatcher) Pattern() string {
	if m.PatternFunc != nil {
		return m.PatternFunc()
	}
	return ""
}
