package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/kungfu-chess/engine"
	"github.com/lixenwraith/kungfu-chess/event"
	"github.com/lixenwraith/kungfu-chess/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes notice sounds onto the speaker
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[Sound]int
}

func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		played: make(map[Sound]int),
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetMuted toggles output without releasing the speaker
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Play queues a sound, returning false when it was not sent to the speaker
func (p *Player) Play(s Sound) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	st := s.Streamer(sampleRate, time.Now().UnixNano())
	if st == nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	p.played[s]++
	return true
}

// Played returns how many times a sound reached the mixer
func (p *Player) Played(s Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// HandleNotice implements event.Handler
func (p *Player) HandleNotice(_ *engine.Snapshot, n event.Notice) {
	s := SoundFor(n)
	if s == SoundNone {
		return
	}
	if p.Play(s) {
		log.Printf("audio: %s for %s", s, n.Type)
	}
}

// NoticeTypes implements event.Handler
func (p *Player) NoticeTypes() []event.NoticeType {
	return []event.NoticeType{
		event.NoticeMoveStarted,
		event.NoticeRejected,
		event.NoticeViolation,
		event.NoticeCapture,
		event.NoticeWin,
	}
}

var _ event.Handler[*engine.Snapshot] = (*Player)(nil)
