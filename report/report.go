// Package report prints errors and notices from the command-line
package report

import (
	"github.com/pterm/pterm"
)

// Error prints err with the error prefix.
func Error(err error) {
	pterm.Error.Println(err)
}

// Notice prints an informational message.
func Notice(msg string) {
	pterm.Info.Println(msg)
}
