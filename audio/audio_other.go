//go:build !linux

package audio

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"

	"freetimer/log"
)

type malgoContext struct {
	ctx *malgo.AllocatedContext
}

func NewContext() (Context, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, err
	}
	return &malgoContext{ctx: ctx}, nil
}

func (m *malgoContext) Devices() ([]DeviceInfo, error) {
	devices, err := m.ctx.Devices(malgo.Playback)
	if err != nil {
		return nil, fmt.Errorf("malgo devices: %w", err)
	}
	var result []DeviceInfo
	for _, d := range devices {
		result = append(result, DeviceInfo{
			ID:   hex.EncodeToString(d.ID.Pointer()[:]),
			Name: d.Name(),
		})
	}
	return result, nil
}

func (m *malgoContext) NewOutput(device *DeviceInfo) (Output, error) {
	out := &malgoOutput{ctx: m.ctx}
	if device != nil {
		idBytes, err := hex.DecodeString(device.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid device ID: %w", err)
		}
		var devID malgo.DeviceID
		copy(devID[:], idBytes)
		out.deviceID = &devID
	}
	return out, nil
}

func (m *malgoContext) Close() {
	m.ctx.Uninit()
	m.ctx.Free()
}

type malgoOutput struct {
	ctx      *malgo.AllocatedContext
	deviceID *malgo.DeviceID
}

// Play opens one device per clip so overlapping cues do not cut each other
// off. The rate is applied in software.
func (o *malgoOutput) Play(clip Clip, rate float64) {
	if clip.Empty() {
		return
	}
	samples := Resample(clip.Samples, clip.Channels, rate)
	go o.play(samples, clip.SampleRate, clip.Channels)
}

func (o *malgoOutput) play(samples []int16, sampleRate, channels int) {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = uint32(channels)
	config.SampleRate = uint32(sampleRate)
	if o.deviceID != nil {
		config.Playback.DeviceID = o.deviceID.Pointer()
	}

	var (
		mu       sync.Mutex
		pos      int
		finished = make(chan struct{})
		once     sync.Once
	)
	frameBytes := uint32(channels * 2)
	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, _ []byte, frameCount uint32) {
			mu.Lock()
			defer mu.Unlock()
			want := int(frameCount * frameBytes)
			n := copy(pOutput[:want], pcm[pos:])
			pos += n
			// Zero-fill remainder
			for i := n; i < want; i++ {
				pOutput[i] = 0
			}
			if pos >= len(pcm) {
				once.Do(func() { close(finished) })
			}
		},
	}

	device, err := malgo.InitDevice(o.ctx.Context, config, callbacks)
	if err != nil {
		log.Errorf("malgo playback error: %v", err)
		return
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		log.Errorf("malgo playback error: %v", err)
		return
	}
	<-finished
	device.Stop()
}
