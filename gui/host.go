//go:build gui

package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"freetimer/theme"
)

// Host implements theme.Host for a fyne app. Auto follows the system
// variant fyne reports; Toggle switches to the concrete opposite of the
// active state.
type Host struct {
	app  fyne.App
	mu   sync.Mutex
	mode theme.Mode
}

func newHost(a fyne.App) *Host {
	return &Host{app: a, mode: theme.Auto}
}

func (h *Host) IsActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeLocked()
}

func (h *Host) activeLocked() bool {
	switch h.mode {
	case theme.Dark:
		return true
	case theme.Auto:
		return h.app.Settings().ThemeVariant() == fynetheme.VariantDark
	}
	return false
}

func (h *Host) Mode() theme.Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

func (h *Host) Set(m theme.Mode) {
	h.mu.Lock()
	h.mode = m
	dark := h.activeLocked()
	h.mu.Unlock()

	fyne.Do(func() {
		h.app.Settings().SetTheme(&tokenTheme{dark: dark})
	})
}

func (h *Host) Toggle() {
	if h.IsActive() {
		h.Set(theme.Light)
	} else {
		h.Set(theme.Dark)
	}
}
