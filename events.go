package main

import "freetimer/theme"

// EventSink abstracts the display layer so both the Bubble Tea TUI
// and the fyne GUI can receive the same beep and theme events.
type EventSink interface {
	BeepCount(n int)
	ThemeChanged(mode theme.Mode, dark bool)
}

var sink EventSink = nopSink{}

type nopSink struct{}

func (nopSink) BeepCount(int)                 {}
func (nopSink) ThemeChanged(theme.Mode, bool) {}

// tuiSink forwards events into the running tea.Program.
type tuiSink struct{}

func (tuiSink) BeepCount(n int) {
	tuiSend(BeepCountMsg{Count: n})
}

func (tuiSink) ThemeChanged(mode theme.Mode, dark bool) {
	tuiSend(ThemeMsg{Mode: mode, Dark: dark})
}
