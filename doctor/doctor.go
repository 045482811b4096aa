// Package doctor runs interactive checks for the pieces freetimer depends on:
// sound output, the preference file and the terminal.
package doctor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"freetimer/beep"
	"freetimer/prefs"
)

const probeKey = "doctor-probe"

type Config struct {
	Signal *beep.Signal
	Store  prefs.Store
	Output string // output device name, for display

	// DarkBackground is the terminal background as probed before any theme
	// mode was applied.
	DarkBackground bool
}

// Run executes interactive diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run(cfg Config) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("freetimer doctor - interactive system diagnostics")
	fmt.Println("=================================================")

	reader := bufio.NewReader(os.Stdin)
	allPass := true

	if !checkAudio(cfg, reader, os.Stdout) {
		allPass = false
	}
	if !checkPrefs(cfg.Store, os.Stdout) {
		allPass = false
	}
	checkTerminal(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())), cfg.DarkBackground)

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkAudio(cfg Config, reader *bufio.Reader, w io.Writer) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[1/3] Sound output")
	fmt.Fprintf(w, "Output: %s\n", cfg.Output)
	if cfg.Signal == nil || cfg.Output == "none" {
		fmt.Fprintln(w, "  FAIL: no audio output available")
		return false
	}

	if cfg.Signal.Muted() {
		fmt.Fprintln(w, "  (-mute is set; unmuting for this check)")
		cfg.Signal.SetMuted(false)
		defer cfg.Signal.SetMuted(true)
	}

	fmt.Fprint(w, "Press Enter to play a short then a long beep...")
	reader.ReadString('\n')

	cfg.Signal.ShortBeep()
	time.Sleep(600 * time.Millisecond)
	cfg.Signal.LongBeep()
	time.Sleep(time.Second)

	fmt.Fprint(w, "Did you hear both beeps? [Y/n] ")
	answer, _ := reader.ReadString('\n')
	if !affirmative(answer) {
		fmt.Fprintln(w, "  FAIL: beeps not heard (check -device / -setup and system volume)")
		return false
	}
	fmt.Fprintln(w, "  PASS: sound output works")
	return true
}

func affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	}
	return false
}

func checkPrefs(store prefs.Store, w io.Writer) bool {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[2/3] Preference storage")
	if store == nil {
		fmt.Fprintln(w, "  FAIL: no preference store")
		return false
	}
	want := time.Now().Format(time.RFC3339Nano)

	f, ok := store.(*prefs.File)
	if !ok {
		if err := store.Set(probeKey, want); err != nil {
			fmt.Fprintf(w, "  FAIL: cannot write preferences: %v\n", err)
			return false
		}
		if got, ok := store.Get(probeKey); !ok || got != want {
			fmt.Fprintf(w, "  FAIL: read back %q, want %q\n", got, want)
			return false
		}
		fmt.Fprintln(w, "  PASS: preferences can be saved")
		return true
	}

	// The user's file is left alone: the round trip runs against a scratch
	// file in the same directory.
	fmt.Fprintf(w, "File: %s\n", f.Path())
	scratch, err := os.MkdirTemp(filepath.Dir(f.Path()), "doctor-")
	if err != nil {
		fmt.Fprintf(w, "  FAIL: config directory is not writable: %v\n", err)
		return false
	}
	defer os.RemoveAll(scratch)

	tmp, err := prefs.Open(scratch)
	if err != nil {
		fmt.Fprintf(w, "  FAIL: %v\n", err)
		return false
	}
	if err := tmp.Set(probeKey, want); err != nil {
		fmt.Fprintf(w, "  FAIL: cannot write preferences: %v\n", err)
		return false
	}
	reread, err := prefs.Open(scratch)
	if err != nil {
		fmt.Fprintf(w, "  FAIL: %v\n", err)
		return false
	}
	if got, ok := reread.Get(probeKey); !ok || got != want {
		fmt.Fprintf(w, "  FAIL: read back %q, want %q\n", got, want)
		return false
	}
	fmt.Fprintln(w, "  PASS: preferences can be saved")
	return true
}

// checkTerminal is informational; it never fails.
func checkTerminal(w io.Writer, tty, darkBackground bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[3/3] Terminal")
	if !tty {
		fmt.Fprintln(w, "  WARN: stdout is not a terminal; the timer UI needs one")
		return
	}
	bg := "light"
	if darkBackground {
		bg = "dark"
	}
	fmt.Fprintf(w, "  PASS: terminal detected, %s background (used by theme mode auto)\n", bg)
}
