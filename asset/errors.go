package asset

import "github.com/pkg/errors"

var (
	// ErrMissingFrames rejects a piece whose idle state has nothing to draw
	ErrMissingFrames = errors.New("idle state has no frames")

	// ErrUnknownPiece rejects a layout naming a type with no definition file
	ErrUnknownPiece = errors.New("unknown piece type")
)
