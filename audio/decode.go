package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/mewkiz/flac"
)

// Load reads and decodes the clip at name in fsys. The decoder is picked by
// file extension: .wav or .flac.
func Load(fsys fs.FS, name string) (Clip, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Clip{}, err
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		return DecodeWAV(bytes.NewReader(data))
	case ".flac":
		return DecodeFLAC(bytes.NewReader(data))
	default:
		return Clip{}, fmt.Errorf("unsupported audio format: %s", name)
	}
}

// DecodeWAV decodes a 16-bit PCM RIFF/WAVE stream.
func DecodeWAV(r io.Reader) (Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Clip{}, err
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Clip{}, errors.New("not a WAVE file")
	}

	var clip Clip
	var bits int
	haveFmt := false
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		end := body + size
		if end > len(data) {
			end = len(data)
		}

		switch id {
		case "fmt ":
			if end-body < 16 {
				return Clip{}, errors.New("wav: short fmt chunk")
			}
			format := binary.LittleEndian.Uint16(data[body:])
			if format != 1 {
				return Clip{}, fmt.Errorf("wav: unsupported format tag %d", format)
			}
			clip.Channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			clip.SampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bits = int(binary.LittleEndian.Uint16(data[body+14:]))
			haveFmt = true
		case "data":
			if !haveFmt {
				return Clip{}, errors.New("wav: data chunk before fmt chunk")
			}
			if bits != 16 {
				return Clip{}, fmt.Errorf("wav: unsupported bit depth %d", bits)
			}
			pcm := data[body:end]
			clip.Samples = make([]int16, len(pcm)/2)
			for i := range clip.Samples {
				clip.Samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
			}
			return clip, nil
		}

		// chunks are word aligned
		pos = body + size + size%2
	}
	return Clip{}, errors.New("wav: no data chunk")
}

// DecodeFLAC decodes a FLAC stream into 16-bit interleaved samples.
func DecodeFLAC(r io.Reader) (Clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return Clip{}, fmt.Errorf("opening flac stream: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	clip := Clip{
		SampleRate: int(info.SampleRate),
		Channels:   int(info.NChannels),
	}
	shift := int(info.BitsPerSample) - 16

	for {
		f, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Clip{}, fmt.Errorf("parsing flac frame: %w", err)
		}
		n := len(f.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for _, sub := range f.Subframes {
				s := sub.Samples[i]
				switch {
				case shift > 0:
					s >>= uint(shift)
				case shift < 0:
					s <<= uint(-shift)
				}
				clip.Samples = append(clip.Samples, int16(s))
			}
		}
	}
	return clip, nil
}
