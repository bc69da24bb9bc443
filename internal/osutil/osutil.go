// Package osutil holds operating system names and exit codes
package osutil

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// Int returns the exit code as an int for os.Exit.
func (c exitCode) Int() int {
	return int(c)
}
