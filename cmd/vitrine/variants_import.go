package main

// Blank imports ensure theme and format init() registration runs for the
// CLI binary.
import (
	_ "github.com/vitrinehq/vitrine/internal/post/formats/html"
	_ "github.com/vitrinehq/vitrine/internal/post/formats/markdown"
	_ "github.com/vitrinehq/vitrine/internal/storefront/themes/christmas"
	_ "github.com/vitrinehq/vitrine/internal/storefront/themes/classic"
)
