// Package editmode decides whether the log can be edited and which controls
// are visible as a result.
package editmode

// Mode is the edit state of the log.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}

	return "viewing"
}

// Visibility describes which groups of controls the view should show.
type Visibility struct {
	Creation bool
	Delete   bool
	ClearAll bool
}

// minClearAll is the smallest log for which clearing everything is offered.
const minClearAll = 2

// VisibilityFor computes control visibility from the mode and log size.
func VisibilityFor(mode Mode, size int) Visibility {
	if mode == Editing {
		return Visibility{
			Creation: false,
			Delete:   true,
			ClearAll: size >= minClearAll,
		}
	}

	return Visibility{
		Creation: true,
	}
}

// Controller tracks the edit mode. Editing is only possible while the log
// has at least one record.
type Controller struct {
	mode Mode
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Editing() bool {
	return c.mode == Editing
}

// Toggle flips between viewing and editing. It refuses, returning false,
// when the log is empty.
func (c *Controller) Toggle(size int) bool {
	if size == 0 {
		return false
	}

	if c.mode == Editing {
		c.mode = Viewing
	} else {
		c.mode = Editing
	}

	return true
}

// Sync forces viewing mode once the log becomes empty.
func (c *Controller) Sync(size int) {
	if size == 0 {
		c.mode = Viewing
	}
}

// Reset returns to viewing mode unconditionally.
func (c *Controller) Reset() {
	c.mode = Viewing
}

// Visibility returns the control visibility for the current mode.
func (c *Controller) Visibility(size int) Visibility {
	return VisibilityFor(c.mode, size)
}
