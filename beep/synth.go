package beep

import (
	"math"

	"freetimer/audio"
)

const (
	sampleRate = 44100

	// Short beep: high pitch, fast decay
	shortFreq   = 1200
	shortVolume = 0.5
	shortDecay  = 60
	shortDur    = 0.2

	// Long beep: lower pitch, slow decay
	longFreq   = 900
	longVolume = 0.5
	longDecay  = 8
	longDur    = 0.8
)

// synthesize builds the fallback tick for a cue name.
func synthesize(name string) audio.Clip {
	var samples []int16
	if name == "long" {
		samples = generateTick(sampleRate, longFreq, longDur, longVolume, longDecay)
	} else {
		samples = generateTick(sampleRate, shortFreq, shortDur, shortVolume, shortDecay)
	}
	return audio.Clip{SampleRate: sampleRate, Channels: 1, Samples: samples}
}

func generateTick(sampleRate int, freq float64, duration float64, volume float64, decay float64) []int16 {
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}
