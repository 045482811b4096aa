package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Host owns the active dark/light state. How Toggle moves between modes is
// up to the host; the controller only asks for it and records the result.
type Host interface {
	IsActive() bool
	Mode() Mode
	Set(m Mode)
	Toggle()
}

// TerminalHost resolves Auto from the terminal's background color.
// Toggle switches to the concrete opposite of whatever is active now, so
// Auto collapses to Light or Dark.
type TerminalHost struct {
	mu       sync.Mutex
	mode     Mode
	autoDark bool
}

// NewTerminalHost probes the background once with detect. A nil detect uses
// lipgloss's terminal query.
func NewTerminalHost(detect func() bool) *TerminalHost {
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}
	// Probe before the first Set; applying a mode overrides what lipgloss reports.
	return &TerminalHost{mode: Auto, autoDark: detect()}
}

func (h *TerminalHost) IsActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeLocked()
}

func (h *TerminalHost) activeLocked() bool {
	switch h.mode {
	case Dark:
		return true
	case Auto:
		return h.autoDark
	}
	return false
}

// Background reports what the terminal probe found at construction. Unlike
// lipgloss.HasDarkBackground it is not affected by Set.
func (h *TerminalHost) Background() (dark bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.autoDark
}

func (h *TerminalHost) Mode() Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

// Set applies m as given. Unknown modes behave like Light.
func (h *TerminalHost) Set(m Mode) {
	h.mu.Lock()
	h.mode = m
	dark := h.activeLocked()
	h.mu.Unlock()
	lipgloss.SetHasDarkBackground(dark)
}

func (h *TerminalHost) Toggle() {
	if h.IsActive() {
		h.Set(Light)
	} else {
		h.Set(Dark)
	}
}
