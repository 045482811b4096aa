package audio

// Resample changes playback speed by picking the nearest source frame for
// each output frame. rate 2 halves the length, rate 0.5 doubles it.
// Non-positive or unit rates return the input unchanged.
func Resample(samples []int16, channels int, rate float64) []int16 {
	if rate <= 0 || rate == 1 || channels <= 0 || len(samples) == 0 {
		return samples
	}
	frames := len(samples) / channels
	outFrames := int(float64(frames) / rate)
	out := make([]int16, outFrames*channels)
	for i := 0; i < outFrames; i++ {
		src := int(float64(i) * rate)
		if src >= frames {
			src = frames - 1
		}
		copy(out[i*channels:(i+1)*channels], samples[src*channels:(src+1)*channels])
	}
	return out
}

// ToStereo duplicates mono samples into interleaved L/R pairs.
func ToStereo(c Clip) Clip {
	if c.Channels != 1 {
		return c
	}
	out := make([]int16, len(c.Samples)*2)
	for i, s := range c.Samples {
		out[i*2] = s
		out[i*2+1] = s
	}
	return Clip{SampleRate: c.SampleRate, Channels: 2, Samples: out}
}
