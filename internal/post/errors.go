package post

import "fmt"

// UnknownFormatError is returned when a format token has no registered
// renderer. As with themes, there is no fallback format.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format '%s'\nHint: run 'vitrine list' to see registered formats", e.Format)
}

// Is reports a match for any other UnknownFormatError.
func (e *UnknownFormatError) Is(target error) bool {
	_, ok := target.(*UnknownFormatError)
	return ok
}

// SealedError is returned by append operations once Build has been called.
// A sealed builder rejects mutation instead of silently growing an artifact
// the caller already considers final.
type SealedError struct {
	Op string
}

func (e *SealedError) Error() string {
	return fmt.Sprintf("builder is sealed: %s rejected after Build\nHint: create a new builder to compose another document", e.Op)
}

// Is reports a match for any other SealedError.
func (e *SealedError) Is(target error) bool {
	_, ok := target.(*SealedError)
	return ok
}
