package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"freetimer/beep"
	"freetimer/theme"
)

// TUI message types
type BeepCountMsg struct{ Count int }
type ThemeMsg struct {
	Mode theme.Mode
	Dark bool
}
type tickMsg time.Time

const (
	tickInterval = 100 * time.Millisecond
	barWidth     = 40
	warnWindow   = 3 * time.Second // remaining time shown in the negative color
)

type keyMap struct {
	Pause key.Binding
	Beep  key.Binding
	Theme key.Binding
	Reset key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Pause: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pause")),
	Beep:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "beep")),
	Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Beep, k.Theme, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHelp(st theme.Styles) help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = st.TextMuted
	h.Styles.ShortDesc = st.Muted
	h.Styles.ShortSeparator = st.Muted
	return h
}

type beeper interface {
	Beep()
}

type toggler interface {
	Toggle()
	Mode() theme.Mode
	Dark() bool
}

type tuiModel struct {
	interval  time.Duration
	remaining time.Duration
	paused    bool
	count     int
	rounds    int
	mode      theme.Mode
	dark      bool
	styles    theme.Styles
	help      help.Model

	signal beeper
	theme  toggler

	width, height int
}

var (
	tuiProgram *tea.Program
	tuiMu      sync.Mutex
)

func newTUIModel(interval time.Duration, signal beeper, tc toggler) tuiModel {
	styles := theme.NewStyles(theme.Colors(tc.Dark()))
	return tuiModel{
		interval:  interval,
		remaining: interval,
		signal:    signal,
		theme:     tc,
		mode:      tc.Mode(),
		dark:      tc.Dark(),
		styles:    styles,
		help:      newHelp(styles),
	}
}

func NewTUIProgram(interval time.Duration, signal *beep.Signal, tc *theme.Controller) *tea.Program {
	return tea.NewProgram(newTUIModel(interval, signal, tc), tea.WithAltScreen())
}

func tuiSend(msg tea.Msg) {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

func tuiTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Beep and Toggle notify subscribers, which send back into the program.
// They run as commands so Send is never called from inside Update.
func beepCmd(b beeper) tea.Cmd {
	return func() tea.Msg {
		b.Beep()
		return nil
	}
}

func toggleCmd(t toggler) tea.Cmd {
	return func() tea.Msg {
		t.Toggle()
		return nil
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, keys.Beep):
			return m, beepCmd(m.signal)
		case key.Matches(msg, keys.Theme):
			return m, toggleCmd(m.theme)
		case key.Matches(msg, keys.Reset):
			m.remaining = m.interval
		}

	case tickMsg:
		if m.paused {
			return m, tuiTick()
		}
		m.remaining -= tickInterval
		if m.remaining <= 0 {
			m.remaining = m.interval
			m.rounds++
			return m, tea.Batch(tuiTick(), beepCmd(m.signal))
		}
		return m, tuiTick()

	case BeepCountMsg:
		m.count = msg.Count

	case ThemeMsg:
		m.mode = msg.Mode
		m.dark = msg.Dark
		m.styles = theme.NewStyles(theme.Colors(msg.Dark))
		width := m.help.Width
		m.help = newHelp(m.styles)
		m.help.Width = width
	}
	return m, nil
}

func formatRemaining(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (m tuiModel) renderBar() string {
	done := 0
	if m.interval > 0 {
		done = int(float64(barWidth) * float64(m.interval-m.remaining) / float64(m.interval))
	}
	done = max(0, min(done, barWidth))
	return m.styles.Text.Render(strings.Repeat("█", done)) +
		m.styles.Track.Render(strings.Repeat("█", barWidth-done))
}

// renderPips shows progress through the short-short-short-long cycle.
func (m tuiModel) renderPips() string {
	var b strings.Builder
	for i := 0; i < beep.ShortBeeps; i++ {
		if i < m.count {
			b.WriteString(m.styles.Text.Render("●"))
		} else {
			b.WriteString(m.styles.Muted.Render("○"))
		}
		b.WriteString(" ")
	}
	b.WriteString(m.styles.Muted.Render("◎"))
	return b.String()
}

func (m tuiModel) View() string {
	clock := formatRemaining(m.remaining)
	if m.remaining <= warnWindow {
		clock = m.styles.Negative.Render(clock)
	} else {
		clock = m.styles.Text.Bold(true).Render(clock)
	}

	status := "running"
	if m.paused {
		status = "paused"
	}
	info := m.styles.TextMuted.Render(fmt.Sprintf("%s · round %d · every %s · theme %s", status, m.rounds, m.interval, m.mode))

	body := lipgloss.JoinVertical(lipgloss.Center,
		clock,
		"",
		m.renderBar(),
		"",
		m.renderPips(),
		"",
		info,
		m.help.View(keys),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
