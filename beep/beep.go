// Package beep plays the timer's audio cues: three short beeps, then one
// long beep, repeating.
package beep

import (
	"embed"
	"io/fs"
	"sync"
	"sync/atomic"

	"freetimer/audio"
	"freetimer/internal/observable"
	"freetimer/log"
)

const (
	ShortPath = "sfx/beep-short.wav"
	LongPath  = "sfx/beep-complete.wav"

	ShortRate = 2.0
	LongRate  = 1.0

	// ShortBeeps is how many short cues play before each long one.
	ShortBeeps = 3
)

//go:embed sfx/*.wav
var embedded embed.FS

// Assets returns the cue files bundled with the binary.
func Assets() fs.FS { return embedded }

// Cue is a pre-loaded sound and the rate it is played at.
type Cue struct {
	Name string
	Path string
	Rate float64
	Clip audio.Clip
}

type Options struct {
	// Assets is the asset root cue paths are resolved against.
	// Defaults to the embedded assets.
	Assets    fs.FS
	ShortPath string
	LongPath  string
}

// Signal owns both cues and the rotating beep counter.
type Signal struct {
	out   audio.Output
	short Cue
	long  Cue

	mu    sync.Mutex
	count *observable.Value[int]
	muted atomic.Bool
}

// New loads both cues. A cue that cannot be loaded is replaced by a
// synthesized tick so the signal always has something to play.
func New(out audio.Output, opts Options) *Signal {
	if opts.Assets == nil {
		opts.Assets = embedded
	}
	if opts.ShortPath == "" {
		opts.ShortPath = ShortPath
	}
	if opts.LongPath == "" {
		opts.LongPath = LongPath
	}

	return &Signal{
		out:   out,
		short: loadCue(opts.Assets, "short", opts.ShortPath, ShortRate),
		long:  loadCue(opts.Assets, "long", opts.LongPath, LongRate),
		count: observable.New(0),
	}
}

func loadCue(fsys fs.FS, name, path string, rate float64) Cue {
	cue := Cue{Name: name, Path: path, Rate: rate}
	clip, err := audio.Load(fsys, path)
	if err != nil || clip.Empty() {
		log.Warnf("cue %s: using synthesized tick (%s): %v", name, path, err)
		clip = synthesize(name)
	}
	cue.Clip = clip
	return cue
}

func (s *Signal) Short() Cue { return s.short }
func (s *Signal) Long() Cue  { return s.long }

// SetMuted stops cues from reaching the output. The counter keeps cycling.
func (s *Signal) SetMuted(muted bool) { s.muted.Store(muted) }

func (s *Signal) Muted() bool { return s.muted.Load() }

func (s *Signal) play(c Cue) {
	if s.muted.Load() || s.out == nil {
		return
	}
	s.out.Play(c.Clip, c.Rate)
}

// ShortBeep plays the short cue at double speed.
func (s *Signal) ShortBeep() {
	s.play(s.short)
}

// LongBeep plays the long cue at normal speed.
func (s *Signal) LongBeep() {
	s.play(s.long)
}

// Beep plays a short cue and advances the counter, or, once ShortBeeps short
// cues have played, plays the long cue and resets the counter to zero.
// Count subscribers run before Beep returns and must not call Beep.
func (s *Signal) Beep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.count.Get()
	cue := s.short
	if n < ShortBeeps {
		s.ShortBeep()
		n++
	} else {
		cue = s.long
		s.LongBeep()
		n = 0
	}
	s.count.Set(n)
	log.Beep(cue.Name, cue.Rate, n)
}

// Count is the number of short cues played since the last long one.
func (s *Signal) Count() int {
	return s.count.Get()
}

// OnCount calls fn with the new count every time it changes.
func (s *Signal) OnCount(fn func(int)) (cancel func()) {
	return s.count.Subscribe(fn)
}
