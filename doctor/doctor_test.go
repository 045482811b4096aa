package doctor

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"freetimer/audio"
	"freetimer/beep"
	"freetimer/prefs"
	"freetimer/theme"
)

type brokenStore struct{}

func (brokenStore) Get(string) (string, bool) { return "", false }
func (brokenStore) Set(string, string) error  { return errors.New("read-only file system") }

func TestCheckPrefsPass(t *testing.T) {
	var out bytes.Buffer
	if !checkPrefs(prefs.NewMemory(), &out) {
		t.Fatalf("expected pass, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "PASS") {
		t.Errorf("missing PASS line:\n%s", out.String())
	}
}

func TestCheckPrefsFileStore(t *testing.T) {
	f, err := prefs.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if !checkPrefs(f, &out) {
		t.Fatalf("expected pass, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), f.Path()) {
		t.Errorf("file path not shown:\n%s", out.String())
	}
}

func TestCheckPrefsFail(t *testing.T) {
	var out bytes.Buffer
	if checkPrefs(brokenStore{}, &out) {
		t.Fatal("expected failure for broken store")
	}
	if checkPrefs(nil, &out) {
		t.Fatal("expected failure for nil store")
	}
}

func TestCheckAudioWithoutOutput(t *testing.T) {
	var out bytes.Buffer
	if checkAudio(Config{Output: "none"}, bufio.NewReader(strings.NewReader("")), &out) {
		t.Fatal("expected failure without output")
	}
}

func TestAffirmative(t *testing.T) {
	for _, s := range []string{"\n", "y\n", "YES\n", " Y "} {
		if !affirmative(s) {
			t.Errorf("affirmative(%q) = false", s)
		}
	}
	for _, s := range []string{"n\n", "no", "nope"} {
		if affirmative(s) {
			t.Errorf("affirmative(%q) = true", s)
		}
	}
}

func TestCheckPrefsLeavesUserFileUntouched(t *testing.T) {
	dir := t.TempDir()
	f, err := prefs.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set(theme.StorageKey, "dark"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if !checkPrefs(f, &out) {
		t.Fatalf("expected pass, output:\n%s", out.String())
	}

	reopened, err := prefs.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reopened.Get(probeKey); ok {
		t.Errorf("%s was written to the user's prefs file", probeKey)
	}
	if v, _ := reopened.Get(theme.StorageKey); v != "dark" {
		t.Errorf("stored theme = %q, want dark", v)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(f.Path()) {
			t.Errorf("scratch entry %q left behind", e.Name())
		}
	}
}

func TestCheckTerminalReportsProbedBackground(t *testing.T) {
	// The stored mode is the opposite of the terminal; the report must
	// follow the terminal.
	host := theme.NewTerminalHost(func() bool { return false })
	theme.NewController(host, prefsWith(t, theme.StorageKey, "dark"))
	if !host.IsActive() {
		t.Fatal("stored dark mode not applied")
	}

	var out bytes.Buffer
	checkTerminal(&out, true, host.Background())
	if !strings.Contains(out.String(), "light background") {
		t.Errorf("expected light background, got:\n%s", out.String())
	}

	out.Reset()
	checkTerminal(&out, true, theme.NewTerminalHost(func() bool { return true }).Background())
	if !strings.Contains(out.String(), "dark background") {
		t.Errorf("expected dark background, got:\n%s", out.String())
	}
}

func TestCheckTerminalWithoutTTY(t *testing.T) {
	var out bytes.Buffer
	checkTerminal(&out, false, true)
	if !strings.Contains(out.String(), "WARN") {
		t.Errorf("expected WARN line, got:\n%s", out.String())
	}
}

func TestCheckAudioUnmutesForTheCheck(t *testing.T) {
	ctx := audio.NewFakeContext()
	signal := beep.New(ctx.Output, beep.Options{})
	signal.SetMuted(true)

	var out bytes.Buffer
	ok := checkAudio(Config{Signal: signal, Output: "fake"}, bufio.NewReader(strings.NewReader("\ny\n")), &out)
	if !ok {
		t.Fatalf("expected pass, output:\n%s", out.String())
	}
	played := ctx.Output.Played()
	if len(played) != 2 {
		t.Fatalf("played %d cues, want 2", len(played))
	}
	if played[0].Rate != beep.ShortRate || played[1].Rate != beep.LongRate {
		t.Errorf("rates = %v, %v", played[0].Rate, played[1].Rate)
	}
	if !signal.Muted() {
		t.Error("mute not restored after the check")
	}
}

func prefsWith(t *testing.T, key, value string) prefs.Store {
	t.Helper()
	m := prefs.NewMemory()
	if err := m.Set(key, value); err != nil {
		t.Fatal(err)
	}
	return m
}
