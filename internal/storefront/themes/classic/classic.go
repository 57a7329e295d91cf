package classictheme

import (
	"fmt"
	"io"

	"github.com/vitrinehq/vitrine/internal/storefront"
)

// Theme is the token the classic factory registers under.
const Theme = "classic"

type factory struct{}

// New creates the classic (everyday) theme factory.
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
	_, err := fmt.Fprintln(w, "Playing typical store jingles.")
	return err
}

type adDisplay struct{}

func (adDisplay) Start(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Check out our bakery, 5 donuts for the price of 4")
	return err
}

type ledBoard struct{}

func (ledBoard) Run(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Welcome to our store during a normal time of the year!")
	return err
}
