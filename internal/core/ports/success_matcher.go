package ports

// SuccessMatcher decides whether captured output carries the success marker.
type SuccessMatcher interface {
	Match(output string) bool
	Pattern() string
}
