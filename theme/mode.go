package theme

// Mode is the user's theme preference. Auto defers to the host.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
	Auto  Mode = "auto"
)

func (m Mode) String() string { return string(m) }

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case Light, Dark, Auto:
		return true
	}
	return false
}
