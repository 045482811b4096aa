package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"freetimer/theme"
)

func newTestSession(t *testing.T, darkBackground bool) *session {
	t.Helper()
	s, err := newSession(config{test: true, interval: time.Second}, theme.NewTerminalHost(func() bool { return darkBackground }))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func drive(t *testing.T, s *session, cmds ...string) []string {
	t.Helper()
	var out bytes.Buffer
	runTestMode(s, strings.NewReader(strings.Join(cmds, "\n")+"\n"), &out)
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestTestModeBeepCycle(t *testing.T) {
	s := newTestSession(t, false)
	got := drive(t, s, "BEEP", "BEEP", "BEEP", "BEEP", "BEEP", "QUIT")
	want := []string{
		"beep short count=1 rate=2",
		"beep short count=2 rate=2",
		"beep short count=3 rate=2",
		"beep long count=0 rate=1",
		"beep short count=1 rate=2",
	}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTestModeDirectCues(t *testing.T) {
	s := newTestSession(t, false)
	got := drive(t, s, "SHORT", "LONG", "STATE")
	want := []string{"cue short rate=2", "cue long rate=1", "state count=0 mode=auto dark=false"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTestModeToggle(t *testing.T) {
	s := newTestSession(t, true)
	got := drive(t, s, "STATE", "TOGGLE", "TOGGLE")
	want := []string{
		"state count=0 mode=auto dark=true",
		"theme light dark=false",
		"theme dark dark=true",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if v, _ := s.store.Get(theme.StorageKey); v != "dark" {
		t.Errorf("stored mode = %q, want dark", v)
	}
}

func TestTestModeUnknownCommand(t *testing.T) {
	s := newTestSession(t, false)
	got := drive(t, s, "DANCE")
	if len(got) != 1 || !strings.HasPrefix(got[0], "error unknown command") {
		t.Errorf("got %q", got)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-interval", "45s", "-mute", "-sfx", "/tmp/assets"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.interval != 45*time.Second || !cfg.mute || cfg.sfxDir != "/tmp/assets" {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := parseFlags([]string{"-interval", "0s"}); err == nil {
		t.Error("expected error for zero interval")
	}
}
