package audio

import "sync"

// Played is one recorded FakeOutput.Play call.
type Played struct {
	Clip Clip
	Rate float64
}

// FakeOutput records what it is asked to play instead of making sound.
type FakeOutput struct {
	mu     sync.Mutex
	played []Played
	onPlay func(Played)
}

func NewFakeOutput() *FakeOutput {
	return &FakeOutput{}
}

// OnPlay sets a hook called synchronously from Play.
func (f *FakeOutput) OnPlay(fn func(Played)) {
	f.mu.Lock()
	f.onPlay = fn
	f.mu.Unlock()
}

func (f *FakeOutput) Play(clip Clip, rate float64) {
	p := Played{Clip: clip, Rate: rate}
	f.mu.Lock()
	f.played = append(f.played, p)
	fn := f.onPlay
	f.mu.Unlock()
	if fn != nil {
		fn(p)
	}
}

// Played returns a copy of all recorded calls in order.
func (f *FakeOutput) Played() []Played {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Played, len(f.played))
	copy(out, f.played)
	return out
}

func (f *FakeOutput) Reset() {
	f.mu.Lock()
	f.played = nil
	f.mu.Unlock()
}

// FakeContext hands out a single shared FakeOutput.
type FakeContext struct {
	Output *FakeOutput
}

func NewFakeContext() *FakeContext {
	return &FakeContext{Output: NewFakeOutput()}
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{{ID: "fake", Name: "fake"}}, nil
}

func (f *FakeContext) NewOutput(_ *DeviceInfo) (Output, error) { return f.Output, nil }
func (f *FakeContext) Close()                                   {}
