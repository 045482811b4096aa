//go:build !windows

// Package shutdown routes termination signals to the timer's cleanup path.
package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify relays interrupt, terminate and hangup to ch. Hangup covers the
// terminal window being closed while the timer runs.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
}
