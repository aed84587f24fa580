package render

import "github.com/gdamore/tcell/v2"

// Board and piece palette
var (
	RgbBackground  = tcell.NewRGBColor(16, 16, 24)
	RgbLightSquare = tcell.NewRGBColor(118, 104, 86)
	RgbDarkSquare  = tcell.NewRGBColor(74, 60, 48)
	RgbWhitePiece  = tcell.NewRGBColor(250, 246, 230)
	RgbBlackPiece  = tcell.NewRGBColor(20, 20, 20)
	RgbRestPiece   = tcell.NewRGBColor(140, 140, 140)
	RgbLabel       = tcell.NewRGBColor(160, 160, 170)
	RgbStatus      = tcell.NewRGBColor(0, 255, 255)
	RgbWinner      = tcell.NewRGBColor(255, 215, 0)
)

// RgbCursors holds per-player cursor colors, indexed by player
var RgbCursors = []tcell.Color{
	tcell.NewRGBColor(80, 200, 255),
	tcell.NewRGBColor(255, 110, 90),
}
