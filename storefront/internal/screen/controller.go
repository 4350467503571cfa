package screen

import (
	"sync"
	"time"

	"golden-fork/storefront/internal/domain"
)

// DefaultTransitionDelay matches the CSS slide animation duration.
const DefaultTransitionDelay = 300 * time.Millisecond

// Listener receives the two phases of a screen transition.
type Listener interface {
	TransitionStarted(from, to domain.Screen)
	ScreenChanged(active domain.Screen, navVisible bool)
}

// Controller switches between the fixed set of screens. Show schedules the
// swap after the transition delay; a second Show during the window replaces
// the pending target and restarts the timer (last call wins). A delay of
// zero or less completes synchronously.
type Controller struct {
	mu       sync.Mutex
	delay    time.Duration
	current  domain.Screen
	pending  domain.Screen
	timer    *time.Timer
	listener Listener
}

func NewController(delay time.Duration, listener Listener) *Controller {
	return &Controller{
		delay:    delay,
		current:  domain.ScreenMenu,
		listener: listener,
	}
}

func (c *Controller) Show(target domain.Screen) {
	c.mu.Lock()
	if !target.Valid() || target == c.current {
		c.mu.Unlock()
		return
	}

	from := c.current
	c.pending = target

	if c.delay <= 0 {
		active, navVisible := c.completeLocked()
		c.mu.Unlock()
		if c.listener != nil {
			c.listener.TransitionStarted(from, target)
			c.listener.ScreenChanged(active, navVisible)
		}
		return
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.complete)
	c.mu.Unlock()

	if c.listener != nil {
		c.listener.TransitionStarted(from, target)
	}
}

func (c *Controller) complete() {
	c.mu.Lock()
	if c.pending == "" {
		c.mu.Unlock()
		return
	}
	active, navVisible := c.completeLocked()
	c.mu.Unlock()

	if c.listener != nil {
		c.listener.ScreenChanged(active, navVisible)
	}
}

// completeLocked finalizes the pending transition. Caller holds the mutex.
func (c *Controller) completeLocked() (domain.Screen, bool) {
	c.current = c.pending
	c.pending = ""
	c.timer = nil
	// The bottom nav is hidden only on the terminal success screen.
	return c.current, c.current != domain.ScreenSuccess
}

func (c *Controller) Current() domain.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) InTransition() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != ""
}
