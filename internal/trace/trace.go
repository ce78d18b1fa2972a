// Package trace is the engine's optional structured diagnostics hook. The
// engine owns emission policy (per-type sampling and throttling); consumers
// own storage, filtering and display. When tracing is disabled no records are
// constructed at all.
package trace

import (
	"math/rand"
	"sync"
	"time"
)

// Type categorizes a trace record.
type Type string

const (
	TypeMinuteContext     Type = "minute_context"
	TypeEventProbability  Type = "event_probability"
	TypeChanceEvaluation  Type = "chance_evaluation"
	TypeSubCandidate      Type = "sub_candidate"
	TypeSubExecuted       Type = "sub_executed"
	TypeEnergyTick        Type = "energy_tick"
	TypePostureAdjustment Type = "posture_adjustment"
)

// Record is one structured diagnostic emission.
type Record struct {
	Type     Type
	Team     string
	Minute   int
	Severity string
	Inputs   map[string]float64
	Computed map[string]float64
	Outcome  string
	Tags     []string
}

// Sink receives records that survive sampling and throttling.
type Sink interface {
	Write(Record)
}

// Config controls emission policy. A missing sampling entry means keep
// everything of that type; a missing throttle entry means no rate limit.
type Config struct {
	// Sampling maps a record type to the probability (0-1] of keeping each
	// record of that type.
	Sampling map[Type]float64
	// Throttle maps a record type to the minimum interval between emissions
	// of that type.
	Throttle map[Type]time.Duration
	// SampleSeed seeds the sampling roll; zero means time-seeded. Sampling
	// uses its own random stream so it never perturbs simulation randomness.
	SampleSeed int64
}

// Emitter applies Config policy in front of a Sink. A nil *Emitter is a
// valid, fully disabled emitter.
type Emitter struct {
	sink Sink
	cfg  Config

	mu   sync.Mutex
	rng  *rand.Rand
	last map[Type]time.Time
	now  func() time.Time
}

// NewEmitter builds an emitter for the sink. A nil sink yields a nil
// (disabled) emitter.
func NewEmitter(sink Sink, cfg Config) *Emitter {
	if sink == nil {
		return nil
	}
	seed := cfg.SampleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Emitter{
		sink: sink,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		last: make(map[Type]time.Time),
		now:  time.Now,
	}
}

// Enabled reports whether records of the given type can possibly be emitted.
// Callers guard record construction with this so a disabled emitter costs no
// allocation.
func (e *Emitter) Enabled(t Type) bool {
	if e == nil {
		return false
	}
	if rate, ok := e.cfg.Sampling[t]; ok && rate <= 0 {
		return false
	}
	return true
}

// Emit applies sampling and throttling and forwards the record to the sink.
func (e *Emitter) Emit(r Record) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if rate, ok := e.cfg.Sampling[r.Type]; ok {
		if rate <= 0 || e.rng.Float64() >= rate {
			return
		}
	}
	if window, ok := e.cfg.Throttle[r.Type]; ok && window > 0 {
		now := e.now()
		if prev, seen := e.last[r.Type]; seen && now.Sub(prev) < window {
			return
		}
		e.last[r.Type] = now
	}
	e.sink.Write(r)
}
