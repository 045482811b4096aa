package audio

import "strings"

const WAVHeaderSize = 44

var btKeywords = []string{
	"airpods", "beats", "bose", "wh-1000", "wf-1000",
	"sony wh-", "sony wf-",
	"jabra", "galaxy buds", "pixel buds", "powerbeats",
	"jbl ", "sennheiser momentum", "plantronics",
	"tozo", "anker soundcore", "skullcandy",
	"bluetooth", " bt ", " bt)", " bt]",
}

// IsBluetooth reports whether a sink name looks like a Bluetooth headset.
// Those add noticeable latency to short cues.
func IsBluetooth(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range btKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Clip is decoded PCM audio, interleaved when Channels > 1.
type Clip struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames returns the number of sample frames in the clip.
func (c Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Empty reports whether there is nothing to play.
func (c Clip) Empty() bool {
	return len(c.Samples) == 0 || c.SampleRate <= 0 || c.Channels <= 0
}

type DeviceInfo struct {
	ID   string // opaque platform-specific identifier
	Name string
}

// Output plays clips. Play returns immediately; playback errors are logged,
// never returned. Overlapping calls may play at the same time.
type Output interface {
	Play(clip Clip, rate float64)
}

type Context interface {
	Devices() ([]DeviceInfo, error)
	NewOutput(device *DeviceInfo) (Output, error)
	Close()
}
