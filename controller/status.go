// ABOUTME: Transient status line and the persisted dark-mode flag.
package controller

import (
	"strconv"

	"github.com/2389-research/quill/store"
)

// SetStatus shows msg and schedules a revert to the idle text. Earlier
// reverts still fire and may clear a newer message.
func (c *Controller) SetStatus(msg string) {
	c.state.Status = msg
	c.host.ShowStatus(msg)

	c.sched.After(c.settings.StatusDelay, func() {
		c.state.Status = c.settings.IdleStatus
		c.host.ShowStatus(c.settings.IdleStatus)
	})
}

// ToggleDark flips the theme flag, applies it, and persists it.
func (c *Controller) ToggleDark() {
	c.state.Dark = !c.state.Dark
	c.host.SetDark(c.state.Dark)

	if err := c.slots.Set(store.KeyDark, strconv.FormatBool(c.state.Dark)); err != nil {
		c.storeFailed("theme", store.KeyDark, err)
	}
}
