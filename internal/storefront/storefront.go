package storefront

import "io"

// The fixture contracts intentionally use distinct operation names even
// though each boils down to "start producing output": players play, displays
// start, boards run. Variants implement exactly one contract.

// MusicPlayer produces the ambient soundtrack of a store.
type MusicPlayer interface {
	// Play writes the currently playing track announcement to w.
	Play(w io.Writer) error
}

// AdDisplay boots the advertisement screen.
type AdDisplay interface {
	// Start writes the running advertisement to w.
	Start(w io.Writer) error
}

// LedBoard drives the scrolling LED welcome board.
type LedBoard interface {
	// Run writes the board text to w.
	Run(w io.Writer) error
}

// Factory constructs one coherent fixture set for its theme. Every value a
// factory returns belongs to the theme reported by Theme(), and each
// constructor call yields a fresh, independent instance. Factories hold no
// mutable state and may be shared across goroutines once registered.
type Factory interface {
	Theme() string
	NewMusicPlayer() MusicPlayer
	NewAdDisplay() AdDisplay
	NewLedBoard() LedBoard
}

// Fixtures bundles one variant per contract, all from the same theme.
type Fixtures struct {
	Theme string
	Music MusicPlayer
	Ads   AdDisplay
	Board LedBoard
}

// Storefront drives a provisioned fixture family. It receives a Factory by
// injection, requests one variant per contract up front, and never names a
// concrete variant type: swapping the factory swaps the whole ambience.
type Storefront struct {
	theme string
	music MusicPlayer
	ads   AdDisplay
	board LedBoard
	out   io.Writer
}

// New builds a Storefront around the injected factory. Output lines are
// written to w.
func New(f Factory, w io.Writer) *Storefront {
	return &Storefront{
		theme: f.Theme(),
		music: f.NewMusicPlayer(),
		ads:   f.NewAdDisplay(),
		board: f.NewLedBoard(),
		out:   w,
	}
}

// Theme reports which theme the storefront was provisioned with.
func (s *Storefront) Theme() string {
	return s.theme
}

// Open starts every fixture in a fixed order: music, then ads, then the LED
// board. The first fixture failure aborts the remaining ones and is
// propagated unchanged.
func (s *Storefront) Open() error {
	if err := s.music.Play(s.out); err != nil {
		return err
	}
	if err := s.ads.Start(s.out); err != nil {
		return err
	}
	return s.board.Run(s.out)
}
