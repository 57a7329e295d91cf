package christmastheme

import (
	"fmt"
	"io"

	"github.com/vitrinehq/vitrine/internal/storefront"
)

// Theme is the token the christmas factory registers under.
const Theme = "christmas"

type factory struct{}

// New creates the christmas (seasonal) theme factory.
func New() storefront.Factory {
	return factory{}
}

func init() {
	if err := storefront.RegisterTheme(New()); err != nil {
		panic(err)
	}
}

func (factory) Theme() string { return Theme }

func (factory) NewMusicPlayer() storefront.MusicPlayer { return musicPlayer{} }
func (factory) NewAdDisplay() storefront.AdDisplay     { return adDisplay{} }
func (factory) NewLedBoard() storefront.LedBoard       { return ledBoard{} }

type musicPlayer struct{}

func (musicPlayer) Play(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Playing 'All I want for Christmas is you' on repeat")
	return err
}

type adDisplay struct{}

func (adDisplay) Start(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Check out all these Christmas deals we have for you!")
	return err
}

type ledBoard struct{}

func (ledBoard) Run(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Merry Christmas")
	return err
}
