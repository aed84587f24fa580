package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// GameClock is scaled, pausable simulated time measured from Start
// Now = (wall elapsed - paused) * scale, in milliseconds
type GameClock struct {
	mu       sync.RWMutex
	provider TimeProvider
	scale    float64

	origin      time.Time
	isPaused    atomic.Bool
	pauseStart  time.Time
	pausedTotal time.Duration
}

func NewGameClock(provider TimeProvider, scale float64) *GameClock {
	c := &GameClock{provider: provider, scale: scale}
	c.origin = provider.Now()
	return c
}

// Start resets the origin to the current wall time and clears pause accounting
func (c *GameClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.origin = c.provider.Now()
	c.pausedTotal = 0
	c.pauseStart = time.Time{}
	c.isPaused.Store(false)
}

// NowMs returns simulated milliseconds since Start
func (c *GameClock) NowMs() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ref := c.provider.Now()
	if c.isPaused.Load() {
		ref = c.pauseStart
	}
	elapsed := ref.Sub(c.origin) - c.pausedTotal
	if elapsed < 0 {
		return 0
	}
	return int64(float64(elapsed) / float64(time.Millisecond) * c.scale)
}

// Pause freezes simulated time
func (c *GameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isPaused.CompareAndSwap(false, true) {
		c.pauseStart = c.provider.Now()
	}
}

// Resume continues simulated time from where it froze
func (c *GameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isPaused.CompareAndSwap(true, false) {
		c.pausedTotal += c.provider.Now().Sub(c.pauseStart)
		c.pauseStart = time.Time{}
	}
}

func (c *GameClock) IsPaused() bool {
	return c.isPaused.Load()
}

// Scale returns the simulated-to-wall time ratio
func (c *GameClock) Scale() float64 {
	return c.scale
}
