//go:build gui

package main

import (
	"fmt"
	"os"
	"runtime"

	"freetimer/gui"
	"freetimer/log"
	"freetimer/theme"
)

func initGUI(cfg config) {
	// fyne needs the main thread
	runtime.LockOSThread()

	a := gui.NewApp(cfg.interval)
	s, err := newSession(cfg, a.Host())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.SessionStart(cfg.interval.String(), s.output)

	sink = a
	cancelCount := s.signal.OnCount(func(n int) { sink.BeepCount(n) })
	cancelDark := s.theme.OnDark(func(dark bool) { sink.ThemeChanged(s.theme.Mode(), dark) })
	defer cancelCount()
	defer cancelDark()

	a.Bind(s.signal, s.theme)
	a.Run()
	gracefulShutdown(s)
}

var _ theme.Host = (*gui.Host)(nil)
