// Package ui styles the output of the one-shot commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the lighter variant of every colour.
var DarkTheme bool

type shade struct {
	light func(a ...any) string
	dark  func(a ...any) string
}

func (s shade) paint(a any) string {
	if DarkTheme {
		return s.dark(a)
	}

	return s.light(a)
}

var (
	green     = shade{pterm.Green, pterm.LightGreen}
	cyan      = shade{pterm.Cyan, pterm.LightCyan}
	magenta   = shade{pterm.Magenta, pterm.LightMagenta}
	highlight = shade{pterm.Black, pterm.LightWhite}
)

func Green(a any) string { return green.paint(a) }

func Cyan(a any) string { return cyan.paint(a) }

func Magenta(a any) string { return magenta.paint(a) }

// Highlight makes a value stand out against the terminal background.
func Highlight(a any) string { return highlight.paint(a) }
