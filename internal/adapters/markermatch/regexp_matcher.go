// Package markermatch finds a test-run success marker in captured output.
package markermatch

import (
	"fmt"
	"regexp"

	"github.com/AntonioJCosta/okgate/internal/core/ports"
)

// RegexpMatcher implements ports.SuccessMatcher with a compiled regular expression.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// NewRegexpMatcher compiles pattern into a matcher. The pattern is searched
// anywhere in the output, it is not anchored.
func NewRegexpMatcher(pattern string) (ports.SuccessMatcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("success pattern cannot be empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid success pattern %q: %w", pattern, err)
	}
	return &RegexpMatcher{re: re}, nil
}

// Match reports whether output contains the marker.
func (m *RegexpMatcher) Match(output string) bool {
	return m.re.MatchString(output)
}

func (m *RegexpMatcher) Pattern() string {
	return m.re.String()
}
