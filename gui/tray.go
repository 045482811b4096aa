//go:build gui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupTray adds a system tray menu when the driver supports one. Fyne
// appends its own Quit item.
func (a *App) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		return
	}
	menu := fyne.NewMenu("freetimer",
		fyne.NewMenuItem("Show", func() { a.window.Show() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Beep", func() { go a.signal.Beep() }),
		fyne.NewMenuItem("Toggle theme", func() { go a.theme.Toggle() }),
	)
	desk.SetSystemTrayMenu(menu)
}
