// Package sprite is the per-state presentation model: a cycle of glyph frames
// advanced by simulated time. The renderer draws Frame()
package sprite

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/parameter"
)

// ErrNoFrames is returned when an animation has nothing to draw
var ErrNoFrames = errors.New("sprite: no frames")

// Animation cycles frames at fps since the last Reset
// Frames are shared between clones; playback position is per instance
type Animation struct {
	frames          []string
	frameDurationMs float64
	loop            bool

	startMs int64
	cur     int
}

// New builds an animation; fps <= 0 selects the default rate
func New(frames []string, fps float64, loop bool) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if fps <= 0 {
		fps = parameter.DefaultSpriteFPS
	}
	return &Animation{
		frames:          frames,
		frameDurationMs: 1000 / fps,
		loop:            loop,
	}, nil
}

// Clone returns an instance with its own playback position
func (a *Animation) Clone() *Animation {
	c := *a
	c.startMs, c.cur = 0, 0
	return &c
}

// Reset restarts playback at the command's timestamp
func (a *Animation) Reset(cmd core.Command) {
	a.startMs = cmd.TimestampMs
	a.cur = 0
}

// Update selects the frame for nowMs
func (a *Animation) Update(nowMs int64) {
	elapsed := nowMs - a.startMs
	if elapsed < 0 {
		elapsed = 0
	}
	passed := int(float64(elapsed) / a.frameDurationMs)
	if a.loop {
		a.cur = passed % len(a.frames)
	} else {
		a.cur = min(passed, len(a.frames)-1)
	}
}

// Frame returns the glyph currently shown
func (a *Animation) Frame() string {
	return a.frames[a.cur]
}

// Index returns the current frame number
func (a *Animation) Index() int { return a.cur }

// Len returns the number of frames
func (a *Animation) Len() int { return len(a.frames) }
