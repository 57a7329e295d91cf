package storefront

import "fmt"

// UnknownThemeError is returned when a theme token has no registered factory.
// There is deliberately no fallback theme: an unrecognized token is always
// surfaced to the caller.
type UnknownThemeError struct {
	Theme string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme '%s'\nHint: run 'vitrine list' to see registered themes", e.Theme)
}

// Is reports a match for any other UnknownThemeError, so callers can test
// with errors.Is against a zero value.
func (e *UnknownThemeError) Is(target error) bool {
	_, ok := target.(*UnknownThemeError)
	return ok
}
