package theme

import (
	"freetimer/internal/observable"
	"freetimer/log"
	"freetimer/prefs"
)

// StorageKey is where the theme mode is persisted.
const StorageKey = "freetimer-dark"

// Controller applies the persisted theme mode on start and persists every
// toggle.
type Controller struct {
	host  Host
	store prefs.Store
	dark  *observable.Value[bool]
}

// NewController applies the stored mode to host, or Auto if nothing was
// stored. Stored values are applied verbatim.
func NewController(host Host, store prefs.Store) *Controller {
	if stored, ok := store.Get(StorageKey); ok {
		if !Mode(stored).Valid() {
			log.Warnf("unknown theme mode %q stored under %s", stored, StorageKey)
		}
		host.Set(Mode(stored))
	} else {
		host.Set(Auto)
	}
	return &Controller{
		host:  host,
		store: store,
		dark:  observable.New(host.IsActive()),
	}
}

// Toggle flips the host's mode and writes the resulting mode back under
// StorageKey. A failed write is logged, not returned.
func (c *Controller) Toggle() {
	c.host.Toggle()
	mode := c.host.Mode()
	if err := c.store.Set(StorageKey, mode.String()); err != nil {
		log.Warnf("saving theme mode: %v", err)
	}
	c.Refresh()
	log.ThemeChange(mode.String(), c.Dark())
}

// Refresh re-reads the host's active flag, for hosts whose Auto resolution
// can change on its own.
func (c *Controller) Refresh() {
	c.dark.Set(c.host.IsActive())
}

func (c *Controller) Dark() bool { return c.dark.Get() }

func (c *Controller) OnDark(fn func(bool)) (cancel func()) {
	return c.dark.Subscribe(fn)
}

func (c *Controller) Mode() Mode { return c.host.Mode() }

// Tokens returns the color tokens for the current dark flag.
func (c *Controller) Tokens() Tokens { return Colors(c.Dark()) }
