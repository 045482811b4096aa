//go:build linux

package audio

import (
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"

	"freetimer/log"
)

type pulseContext struct {
	client *pulse.Client
}

func NewContext() (Context, error) {
	c, err := pulse.NewClient(pulse.ClientApplicationName("freetimer"))
	if err != nil {
		return nil, fmt.Errorf("pulse: %w", err)
	}
	return &pulseContext{client: c}, nil
}

func (p *pulseContext) Devices() ([]DeviceInfo, error) {
	sinks, err := p.client.ListSinks()
	if err != nil {
		return nil, fmt.Errorf("pulse list sinks: %w", err)
	}
	var devices []DeviceInfo
	for _, s := range sinks {
		devices = append(devices, DeviceInfo{
			ID:   s.ID(),
			Name: s.Name(),
		})
	}
	return devices, nil
}

func (p *pulseContext) NewOutput(device *DeviceInfo) (Output, error) {
	out := &pulseOutput{client: p.client}
	if device != nil {
		sink, err := p.client.SinkByID(device.ID)
		if err != nil {
			return nil, fmt.Errorf("pulse sink %q: %w", device.Name, err)
		}
		out.sink = sink
	}
	return out, nil
}

func (p *pulseContext) Close() {
	p.client.Close()
}

type pulseOutput struct {
	client *pulse.Client
	sink   *pulse.Sink
}

// Play opens a stream per clip. The rate is applied by declaring a higher
// sample rate to the server, which shortens the clip and raises its pitch.
func (o *pulseOutput) Play(clip Clip, rate float64) {
	if clip.Empty() {
		return
	}
	if rate <= 0 {
		rate = 1
	}
	// Stereo to match the usual sink format.
	clip = ToStereo(clip)
	go o.play(clip, int(float64(clip.SampleRate)*rate))
}

func (o *pulseOutput) play(clip Clip, sampleRate int) {
	samples := clip.Samples
	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})

	opts := []pulse.PlaybackOption{
		pulse.PlaybackStereo,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackRawOption(func(p *proto.CreatePlaybackStream) {
			p.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm), uint32(proto.VolumeNorm)}
		}),
	}
	if o.sink != nil {
		opts = append(opts, pulse.PlaybackSink(o.sink))
	}

	stream, err := o.client.NewPlayback(reader, opts...)
	if err != nil {
		log.Errorf("pulse playback error: %v", err)
		return
	}
	stream.Start()
	stream.Drain()
	stream.Stop()
	stream.Close()
}
