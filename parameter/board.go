package parameter

// Board geometry defaults for the standard 8x8 set
const (
	DefaultBoardCells = 8

	// DefaultCellPixels is the rendered cell edge in pixels
	DefaultCellPixels = 64

	// DefaultCellUnits is the real-world cell edge used by physics (metres)
	DefaultCellUnits = 1.0
)

// Physics defaults applied when a state config omits them
const (
	// DefaultMoveSpeed is the motion speed in units per second
	DefaultMoveSpeed = 1.0

	// DefaultRestDurationMs is the cooldown of a rest state
	DefaultRestDurationMs = 3000

	// DefaultJumpDurationMs is the airborne time of a jump
	DefaultJumpDurationMs = 1000
)

// Presentation defaults
const (
	DefaultSpriteFPS = 6.0
)
