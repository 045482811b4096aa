//go:build windows

// Package shutdown routes termination signals to the timer's cleanup path.
package shutdown

import (
	"os"
	"os/signal"
)

// Notify relays Ctrl+C to ch.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt)
}
