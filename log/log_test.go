package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/freetimer-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/freetimer-env-log" {
		t.Errorf("got %q, want /tmp/freetimer-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv(EnvPath, "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestInitCreatesFile(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(tmp, fileName)); err != nil {
		t.Errorf("%s not created: %v", fileName, err)
	}
}

func TestBeepEvent(t *testing.T) {
	t.Cleanup(Close)
	var buf bytes.Buffer
	InitWriter(&buf)

	Beep("short", 2, 3)

	line := buf.String()
	for _, want := range []string{"beep", "cue=short", "rate=2", "count=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %q", want, line)
		}
	}
}

func TestThemeChangeEvent(t *testing.T) {
	t.Cleanup(Close)
	var buf bytes.Buffer
	InitWriter(&buf)

	ThemeChange("dark", true)

	line := buf.String()
	if !strings.Contains(line, "mode=dark") || !strings.Contains(line, "dark=true") {
		t.Errorf("unexpected theme log line: %q", line)
	}
}

func TestNoopBeforeInit(t *testing.T) {
	Close()
	Info("dropped")
	Beep("long", 1, 0)
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}
