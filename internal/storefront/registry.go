package storefront

import (
	"github.com/vitrinehq/vitrine/internal/registry"
)

var themes = registry.New[Factory]()

// RegisterTheme adds a factory under its own theme token. Built-in themes
// call this from init(); the CLI pulls them in via blank imports.
func RegisterTheme(f Factory) error {
	return themes.Register(f.Theme(), f)
}

// ForTheme resolves a theme token to its factory.
func ForTheme(token string) (Factory, error) {
	f, ok := themes.Lookup(token)
	if !ok {
		return nil, &UnknownThemeError{Theme: token}
	}
	return f, nil
}

// Themes lists registered theme tokens in sorted order.
func Themes() []string {
	return themes.Tokens()
}

// ResetThemes clears theme registrations (for tests).
func ResetThemes() {
	themes.Reset()
}

// Provision resolves token and constructs one fresh variant per contract.
// It is all-or-nothing: an unknown token constructs no variants.
func Provision(token string) (*Fixtures, error) {
	f, err := ForTheme(token)
	if err != nil {
		return nil, err
	}

	return &Fixtures{
		Theme: f.Theme(),
		Music: f.NewMusicPlayer(),
		Ads:   f.NewAdDisplay(),
		Board: f.NewLedBoard(),
	}, nil
}
