package engine

import (
	"time"

	"github.com/lixenwraith/kungfu-chess/event"
	"github.com/lixenwraith/kungfu-chess/parameter"
	"github.com/lixenwraith/kungfu-chess/status"
)

// ViolationHandler decides whether a contract violation stops Run
// Returning nil keeps the loop running
type ViolationHandler func(err error) error

type options struct {
	timeScale    float64
	provider     TimeProvider
	tickInterval time.Duration
	handlers     []event.Handler[*Snapshot]
	onViolation  ViolationHandler
	stats        *status.Registry
}

func defaultOptions() options {
	return options{
		timeScale:    parameter.DefaultTimeScale,
		provider:     NewMonotonicTimeProvider(),
		tickInterval: parameter.TickInterval,
		onViolation:  func(err error) error { return err },
	}
}

// Option configures a Game
type Option func(*options)

// WithTimeScale accelerates (>1) or slows (<1) simulated time
func WithTimeScale(scale float64) Option {
	return func(o *options) { o.timeScale = scale }
}

// WithTimeProvider replaces the wall clock, e.g. with a MockTimeProvider
func WithTimeProvider(p TimeProvider) Option {
	return func(o *options) { o.provider = p }
}

// WithTickInterval sets the pacing of Run; zero runs ticks back to back
func WithTickInterval(d time.Duration) Option {
	return func(o *options) { o.tickInterval = d }
}

// WithHandler registers a notice handler
func WithHandler(h event.Handler[*Snapshot]) Option {
	return func(o *options) { o.handlers = append(o.handlers, h) }
}

// WithViolationHandler overrides the default of stopping Run on a contract violation
func WithViolationHandler(fn ViolationHandler) Option {
	return func(o *options) { o.onViolation = fn }
}

// WithStats shares a metrics registry with the caller
func WithStats(r *status.Registry) Option {
	return func(o *options) { o.stats = r }
}
