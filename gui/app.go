//go:build gui

// Package gui is the desktop front end: a small window with the countdown,
// the beep cycle and buttons for a manual beep and the theme toggle.
package gui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"freetimer/beep"
	"freetimer/theme"
)

const tickInterval = 100 * time.Millisecond

type App struct {
	fyneApp fyne.App
	window  fyne.Window
	host    *Host

	signal *beep.Signal
	theme  *theme.Controller

	clock  *widget.Label
	pips   *widget.Label
	status *widget.Label

	mu        sync.Mutex
	interval  time.Duration
	remaining time.Duration
	paused    bool
	stop      chan struct{}
}

func NewApp(interval time.Duration) *App {
	a := &App{
		fyneApp:   app.NewWithID("io.freetimer.gui"),
		interval:  interval,
		remaining: interval,
		stop:      make(chan struct{}),
	}
	a.host = newHost(a.fyneApp)
	return a
}

// Host is the theme host to hand to theme.NewController.
func (a *App) Host() *Host { return a.host }

// Bind builds the window around an existing signal and controller.
func (a *App) Bind(signal *beep.Signal, tc *theme.Controller) {
	a.signal = signal
	a.theme = tc

	a.clock = widget.NewLabelWithStyle(formatRemaining(a.interval), fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	a.pips = widget.NewLabelWithStyle(renderPips(signal.Count()), fyne.TextAlignCenter, fyne.TextStyle{})
	a.status = widget.NewLabelWithStyle(statusText(tc.Mode(), false), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	var pause *widget.Button
	pause = widget.NewButton("Pause", func() {
		a.mu.Lock()
		a.paused = !a.paused
		paused := a.paused
		a.mu.Unlock()
		if paused {
			pause.SetText("Resume")
		} else {
			pause.SetText("Pause")
		}
		a.status.SetText(statusText(a.theme.Mode(), paused))
	})
	// Beep and Toggle notify subscribers that call fyne.Do; keep them off
	// the UI goroutine.
	beepBtn := widget.NewButton("Beep", func() { go a.signal.Beep() })
	themeBtn := widget.NewButton("Theme", func() { go a.theme.Toggle() })

	a.window = a.fyneApp.NewWindow("freetimer")
	a.window.SetContent(container.NewVBox(
		a.clock,
		a.pips,
		a.status,
		container.NewGridWithColumns(3, pause, beepBtn, themeBtn),
	))
	a.window.SetOnClosed(a.Quit)
	a.setupTray()
}

// Run shows the window and blocks until it is closed. Must be called from
// the main goroutine.
func (a *App) Run() {
	go a.countdown()
	a.window.ShowAndRun()
}

func (a *App) countdown() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
		}

		a.mu.Lock()
		if a.paused {
			a.mu.Unlock()
			continue
		}
		a.remaining -= tickInterval
		fire := a.remaining <= 0
		if fire {
			a.remaining = a.interval
		}
		text := formatRemaining(a.remaining)
		a.mu.Unlock()

		fyne.Do(func() { a.clock.SetText(text) })
		if fire {
			a.signal.Beep()
		}
	}
}

func (a *App) Quit() {
	a.mu.Lock()
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}
	a.mu.Unlock()
	a.fyneApp.Quit()
}

// EventSink implementation

func (a *App) BeepCount(n int) {
	fyne.Do(func() { a.pips.SetText(renderPips(n)) })
}

func (a *App) ThemeChanged(mode theme.Mode, _ bool) {
	a.mu.Lock()
	paused := a.paused
	a.mu.Unlock()
	fyne.Do(func() { a.status.SetText(statusText(mode, paused)) })
}

func formatRemaining(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func renderPips(count int) string {
	var b strings.Builder
	for i := 0; i < beep.ShortBeeps; i++ {
		if i < count {
			b.WriteString("● ")
		} else {
			b.WriteString("○ ")
		}
	}
	b.WriteString("◎")
	return b.String()
}

func statusText(mode theme.Mode, paused bool) string {
	if paused {
		return "paused · theme " + mode.String()
	}
	return "running · theme " + mode.String()
}
