package audio

import "testing"

type listContext struct {
	FakeContext
	devices []DeviceInfo
}

func (l *listContext) Devices() ([]DeviceInfo, error) { return l.devices, nil }

func TestFindDevice(t *testing.T) {
	ctx := &listContext{devices: []DeviceInfo{
		{ID: "1", Name: "Built-in Speakers"},
		{ID: "2", Name: "Speakers"},
		{ID: "3", Name: "AirPods Pro"},
	}}

	d, err := FindDevice(ctx, "speakers")
	if err != nil {
		t.Fatal(err)
	}
	if d.ID != "2" {
		t.Errorf("exact match: got %q, want 2", d.ID)
	}

	d, err = FindDevice(ctx, "airpods")
	if err != nil {
		t.Fatal(err)
	}
	if d.ID != "3" {
		t.Errorf("partial match: got %q, want 3", d.ID)
	}

	if _, err := FindDevice(ctx, "hdmi"); err == nil {
		t.Error("expected error for unknown device")
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		in   []byte
		want pickerAction
	}{
		{[]byte{13}, pickConfirm},
		{[]byte{3}, pickAbort},
		{[]byte{'j'}, pickDown},
		{[]byte{'k'}, pickUp},
		{[]byte{0x1b, '[', 'A'}, pickUp},
		{[]byte{0x1b, '[', 'B'}, pickDown},
		{[]byte{'x'}, pickNone},
	}
	for _, tt := range tests {
		if got := decodeKey(tt.in); got != tt.want {
			t.Errorf("decodeKey(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsBluetooth(t *testing.T) {
	if !IsBluetooth("Sony WH-1000XM4") {
		t.Error("expected Sony WH-1000XM4 to be bluetooth")
	}
	if IsBluetooth("Built-in Output") {
		t.Error("built-in output is not bluetooth")
	}
}

func TestFakeOutputRecordsRate(t *testing.T) {
	out := NewFakeOutput()
	var hooked []float64
	out.OnPlay(func(p Played) { hooked = append(hooked, p.Rate) })

	out.Play(Clip{SampleRate: 8000, Channels: 1, Samples: []int16{1}}, 2)
	out.Play(Clip{SampleRate: 8000, Channels: 1, Samples: []int16{1}}, 1)

	played := out.Played()
	if len(played) != 2 || played[0].Rate != 2 || played[1].Rate != 1 {
		t.Fatalf("played = %+v", played)
	}
	if len(hooked) != 2 {
		t.Errorf("hook called %d times, want 2", len(hooked))
	}
	out.Reset()
	if len(out.Played()) != 0 {
		t.Error("Reset did not clear recorded calls")
	}
}
