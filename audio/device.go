package audio

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// FindDevice returns the output device whose name contains name
// (case-insensitive). An exact match wins over a partial one.
func FindDevice(ctx Context, name string) (*DeviceInfo, error) {
	devices, err := ctx.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerating devices: %w", err)
	}
	want := strings.ToLower(name)
	var partial *DeviceInfo
	for i := range devices {
		got := strings.ToLower(devices[i].Name)
		if got == want {
			return &devices[i], nil
		}
		if partial == nil && strings.Contains(got, want) {
			partial = &devices[i]
		}
	}
	if partial == nil {
		return nil, fmt.Errorf("no output device matching %q", name)
	}
	return partial, nil
}

type pickerAction int

const (
	pickNone pickerAction = iota
	pickUp
	pickDown
	pickConfirm
	pickAbort
)

// decodeKey maps a raw terminal read to a picker action.
func decodeKey(buf []byte) pickerAction {
	if len(buf) == 1 {
		switch buf[0] {
		case 13: // Enter
			return pickConfirm
		case 3: // Ctrl+C
			return pickAbort
		case 'j':
			return pickDown
		case 'k':
			return pickUp
		}
	} else if len(buf) == 3 && buf[0] == 0x1b && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return pickUp
		case 'B':
			return pickDown
		}
	}
	return pickNone
}

// SelectDevice presents an interactive output picker and returns the selected device.
// If only one device is available, it returns that device without prompting.
func SelectDevice(ctx Context) (*DeviceInfo, error) {
	devices, err := ctx.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerating devices: %w", err)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("no output devices found")
	}

	if len(devices) == 1 {
		return &devices[0], nil
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	cursor := 0
	renderList := func() {
		fmt.Print("\r\x1b[J")
		fmt.Print("Select output device (↑/↓, Enter to confirm):\r\n\r\n")
		for i, d := range devices {
			btTag := ""
			if IsBluetooth(d.Name) {
				btTag = " \x1b[33m[⚠ Higher latency]\x1b[0m"
			}
			if i == cursor {
				fmt.Printf("  \x1b[1;36m▶ %s%s\x1b[0m\r\n", d.Name, btTag)
			} else {
				fmt.Printf("    %s%s\r\n", d.Name, btTag)
			}
		}
	}

	renderList()

	buf := make([]byte, 3)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		switch decodeKey(buf[:n]) {
		case pickConfirm:
			fmt.Print("\r\n")
			return &devices[cursor], nil
		case pickAbort:
			fmt.Print("\r\n")
			term.Restore(fd, oldState)
			os.Exit(130)
		case pickUp:
			if cursor > 0 {
				cursor--
			}
		case pickDown:
			if cursor < len(devices)-1 {
				cursor++
			}
		}

		fmt.Printf("\x1b[%dA", len(devices)+2)
		renderList()
	}
}
