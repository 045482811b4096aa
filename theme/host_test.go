package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalHostAutoFollowsBackground(t *testing.T) {
	dark := NewTerminalHost(func() bool { return true })
	dark.Set(Auto)
	assert.True(t, dark.IsActive())

	light := NewTerminalHost(func() bool { return false })
	light.Set(Auto)
	assert.False(t, light.IsActive())
}

func TestTerminalHostToggleCollapsesAuto(t *testing.T) {
	h := NewTerminalHost(func() bool { return true })
	h.Set(Auto)

	h.Toggle()
	assert.Equal(t, Light, h.Mode())
	assert.False(t, h.IsActive())

	h.Toggle()
	assert.Equal(t, Dark, h.Mode())
	assert.True(t, h.IsActive())
}

func TestTerminalHostAutoOnLightBackgroundTogglesToDark(t *testing.T) {
	h := NewTerminalHost(func() bool { return false })
	h.Set(Auto)
	h.Toggle()
	assert.Equal(t, Dark, h.Mode())
}

func TestTerminalHostUnknownModeIsLight(t *testing.T) {
	h := NewTerminalHost(func() bool { return true })
	h.Set("sepia")
	assert.Equal(t, Mode("sepia"), h.Mode())
	assert.False(t, h.IsActive())
	assert.False(t, h.Mode().Valid())
}

func TestTerminalHostBackgroundIgnoresSet(t *testing.T) {
	h := NewTerminalHost(func() bool { return true })
	h.Set(Light)
	assert.True(t, h.Background())
	assert.False(t, h.IsActive())
}
