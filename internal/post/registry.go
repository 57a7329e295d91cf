package post

import (
	"github.com/vitrinehq/vitrine/internal/registry"
)

var formats = registry.New[Renderer]()

// RegisterFormat adds a renderer under its own format token. Built-in
// formats call this from init(); the CLI pulls them in via blank imports.
func RegisterFormat(r Renderer) error {
	return formats.Register(r.Format(), r)
}

// NewBuilder resolves a format token and returns a fresh builder for it.
func NewBuilder(format string) (*Builder, error) {
	r, ok := formats.Lookup(format)
	if !ok {
		return nil, &UnknownFormatError{Format: format}
	}
	return NewBuilderWith(r), nil
}

// Formats lists registered format tokens in sorted order.
func Formats() []string {
	return formats.Tokens()
}

// ResetFormats clears format registrations (for tests).
func ResetFormats() {
	formats.Reset()
}
