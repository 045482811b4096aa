package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"freetimer/audio"
	"freetimer/beep"
	"freetimer/doctor"
	"freetimer/log"
	"freetimer/prefs"
	"freetimer/shutdown"
	"freetimer/theme"
)

var version = "dev"

type config struct {
	interval   time.Duration
	sfxDir     string
	configPath string
	logPath    string
	device     string
	setup      bool
	mute       bool
	test       bool
	doctor     bool
	gui        bool
	version    bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("freetimer", flag.ContinueOnError)
	flags.DurationVar(&cfg.interval, "interval", 30*time.Second, "Time between beeps (e.g. 30s, 1m30s)")
	flags.StringVar(&cfg.sfxDir, "sfx", "", "Asset root containing sfx/beep-short.wav and sfx/beep-complete.wav (default: built-in)")
	flags.StringVar(&cfg.configPath, "config", "", "Preferences directory (default: OS config dir)")
	flags.StringVar(&cfg.logPath, "logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	flags.StringVar(&cfg.device, "device", "", "Play cues on the named output device")
	flags.BoolVar(&cfg.setup, "setup", false, "Select output device interactively")
	flags.BoolVar(&cfg.mute, "mute", false, "Keep counting beeps but play no sound")
	flags.BoolVar(&cfg.test, "test", false, "Test mode (headless, stdin-driven)")
	flags.BoolVar(&cfg.doctor, "doctor", false, "Run system diagnostics and exit")
	flags.BoolVar(&cfg.gui, "gui", false, "Run the desktop window (requires -tags gui build)")
	flags.BoolVar(&cfg.version, "version", false, "Print version and exit")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.interval <= 0 {
		return config{}, fmt.Errorf("interval must be positive, got %s", cfg.interval)
	}
	return cfg, nil
}

// session holds everything a front end needs: the beep signal, the theme
// controller and the resources behind them.
type session struct {
	signal   *beep.Signal
	theme    *theme.Controller
	store    prefs.Store
	audioCtx audio.Context
	output   string
}

func (s *session) Close() {
	if s.audioCtx != nil {
		s.audioCtx.Close()
	}
}

func newSession(cfg config, host theme.Host) (*session, error) {
	s := &session{}

	if cfg.test {
		s.store = prefs.NewMemory()
	} else {
		dir, err := prefs.ResolveDir(cfg.configPath)
		if err != nil {
			return nil, err
		}
		store, err := prefs.Open(dir)
		if err != nil {
			return nil, err
		}
		s.store = store
	}

	var out audio.Output
	switch {
	case cfg.test:
		s.audioCtx = audio.NewFakeContext()
		s.output = "fake"
	default:
		ctx, err := audio.NewContext()
		if err != nil {
			// No sound server is not fatal: the timer still counts.
			log.Errorf("audio context init error: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
			s.output = "none"
			break
		}
		s.audioCtx = ctx
		s.output = "system default"
	}

	if s.audioCtx != nil {
		dev := pickDevice(s.audioCtx, cfg)
		if dev != nil {
			s.output = dev.Name
		}
		o, err := s.audioCtx.NewOutput(dev)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening output: %w", err)
		}
		out = o
	}

	var assets fs.FS
	if cfg.sfxDir != "" {
		assets = os.DirFS(cfg.sfxDir)
	}
	s.signal = beep.New(out, beep.Options{Assets: assets})
	s.signal.SetMuted(cfg.mute)

	s.theme = theme.NewController(host, s.store)
	return s, nil
}

func pickDevice(ctx audio.Context, cfg config) *audio.DeviceInfo {
	if cfg.device != "" {
		dev, err := audio.FindDevice(ctx, cfg.device)
		if err != nil {
			log.Warnf("device %q: %v", cfg.device, err)
			fmt.Fprintf(os.Stderr, "Warning: %v, using default output\n", err)
			return nil
		}
		return dev
	}
	if cfg.setup {
		dev, err := audio.SelectDevice(ctx)
		if err != nil {
			log.Warnf("device selection failed: %v", err)
			fmt.Printf("Warning: device selection failed: %v\n", err)
			fmt.Println("Falling back to default device")
			return nil
		}
		return dev
	}
	return nil
}

func initLogging(cfg config) {
	logPath, err := log.ResolveDir(cfg.logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
}

var shutdownOnce sync.Once

func gracefulShutdown(s *session) {
	shutdownOnce.Do(func() {
		log.SessionEnd(s.signal.Count())
		s.Close()
		log.Close()
		tuiMu.Lock()
		p := tuiProgram
		tuiMu.Unlock()
		if p != nil {
			p.Quit()
		}
	})
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.version {
		fmt.Printf("freetimer %s\n", version)
		return
	}

	initLogging(cfg)
	defer log.Close()

	if cfg.gui {
		initGUI(cfg)
		return
	}

	if cfg.test {
		s, err := newSession(cfg, theme.NewTerminalHost(func() bool { return false }))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()
		runTestMode(s, os.Stdin, os.Stdout)
		return
	}

	host := theme.NewTerminalHost(nil)
	s, err := newSession(cfg, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.doctor {
		code := doctor.Run(doctor.Config{
			Signal:         s.signal,
			Store:          s.store,
			Output:         s.output,
			DarkBackground: host.Background(),
		})
		s.Close()
		os.Exit(code)
	}

	log.SessionStart(cfg.interval.String(), s.output)
	run(cfg, s)
}

func run(cfg config, s *session) {
	sigCh := make(chan os.Signal, 1)
	shutdown.Notify(sigCh)
	go func() {
		<-sigCh
		gracefulShutdown(s)
	}()

	p := NewTUIProgram(cfg.interval, s.signal, s.theme)
	tuiMu.Lock()
	tuiProgram = p
	tuiMu.Unlock()

	sink = tuiSink{}
	cancelCount := s.signal.OnCount(func(n int) { sink.BeepCount(n) })
	cancelDark := s.theme.OnDark(func(dark bool) { sink.ThemeChanged(s.theme.Mode(), dark) })
	defer cancelCount()
	defer cancelDark()

	if _, err := p.Run(); err != nil {
		log.Errorf("TUI error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	gracefulShutdown(s)
}
