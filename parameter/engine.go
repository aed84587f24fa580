package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the interactive game logic update interval (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval
	FrameUpdateInterval = 33 * time.Millisecond

	// DefaultTimeScale is the ratio of simulated time to wall time
	DefaultTimeScale = 1.0

	// MaxChainedTransitions bounds completion events re-dispatched within one update
	// A well-formed transition table settles in a handful of steps
	MaxChainedTransitions = 16
)

// Input Queue Limits
const (
	// CommandQueueSize is the fixed capacity of the command ring buffer
	CommandQueueSize = 1024

	// CommandBufferMask is the bitmask for fast modulo operations (1024 - 1)
	CommandBufferMask = 1023
)
