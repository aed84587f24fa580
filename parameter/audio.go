package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effect lengths
const (
	MoveSoundDuration    = 180 * time.Millisecond
	RejectSoundDuration  = 150 * time.Millisecond
	CaptureSoundDuration = 300 * time.Millisecond
	WinSoundNoteDuration = 160 * time.Millisecond
)

// RejectSoundFrequency is the fundamental of the reject buzz in Hz
const RejectSoundFrequency = 120.0

// MasterVolume scales every generated sample
const MasterVolume = 0.8
