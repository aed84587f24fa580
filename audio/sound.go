// Package audio plays procedural sound effects for game notices
package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/kungfu-chess/event"
	"github.com/lixenwraith/kungfu-chess/parameter"
)

// Sound identifies one effect
type Sound int

const (
	SoundNone Sound = iota
	SoundMove
	SoundReject
	SoundCapture
	SoundWin
)

var soundNames = map[Sound]string{
	SoundNone:    "none",
	SoundMove:    "move",
	SoundReject:  "reject",
	SoundCapture: "capture",
	SoundWin:     "win",
}

func (s Sound) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// SoundFor maps a notice to its effect
func SoundFor(n event.Notice) Sound {
	switch n.Type {
	case event.NoticeMoveStarted:
		return SoundMove
	case event.NoticeRejected, event.NoticeViolation:
		return SoundReject
	case event.NoticeCapture:
		return SoundCapture
	case event.NoticeWin:
		return SoundWin
	}
	return SoundNone
}

// Streamer builds a finite streamer for the sound, nil for SoundNone
func (s Sound) Streamer(sr beep.SampleRate, seed int64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundMove:
		st = beep.Take(sr.N(parameter.MoveSoundDuration), NewWhooshGenerator(sr, parameter.MoveSoundDuration))
	case SoundReject:
		st = beep.Take(sr.N(parameter.RejectSoundDuration), NewBuzzGenerator(sr, parameter.RejectSoundFrequency))
	case SoundCapture:
		st = beep.Take(sr.N(parameter.CaptureSoundDuration), NewClashGenerator(sr, seed))
	case SoundWin:
		st = NewFanfareGenerator(sr, parameter.WinSoundNoteDuration)
	default:
		return nil
	}
	return &volume{Streamer: st, gain: parameter.MasterVolume}
}

// volume scales samples by a constant gain
type volume struct {
	beep.Streamer
	gain float64
}

func (v *volume) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= v.gain
		samples[i][1] *= v.gain
	}
	return n, ok
}
