// Package meter turns a stream of input edits into rendered strength
// feedback. It owns all UI-side state (pending text, debounce timer) so
// the evaluator itself stays pure.
package meter

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fernandezvara/passmeter"
)

// DefaultDebounce is the quiet period after the last edit before scoring.
const DefaultDebounce = 300 * time.Millisecond

// Scorer evaluates a password, locally or remotely.
type Scorer interface {
	Evaluate(ctx context.Context, password string) (passmeter.Result, error)
}

// Renderer paints meter state. Calls are serialized by the Meter.
type Renderer interface {
	// Analyzing is called before a non-empty password is scored.
	Analyzing()
	// Render shows a result. Empty input renders the prompt result.
	Render(passmeter.Result)
	// Error reports a scoring failure; a fallback Render may follow.
	Error(error)
}

// Local adapts an Evaluator to Scorer.
type Local struct {
	Evaluator *passmeter.Evaluator
}

// Evaluate never fails.
func (l Local) Evaluate(_ context.Context, password string) (passmeter.Result, error) {
	e := l.Evaluator
	if e == nil {
		e = passmeter.NewEvaluator()
	}
	return e.Evaluate(password), nil
}

// Option customises a Meter.
type Option func(*Meter)

// WithDebounce sets the quiet period. Zero or negative scores every
// update synchronously.
func WithDebounce(d time.Duration) Option {
	return func(m *Meter) { m.delay = d }
}

// WithFallback renders a local evaluation when the scorer fails.
func WithFallback(e *passmeter.Evaluator) Option {
	return func(m *Meter) { m.fallback = e }
}

// WithLogger sets the logger used for scorer failures.
func WithLogger(log *zap.Logger) Option {
	return func(m *Meter) { m.log = log }
}

// Meter debounces updates and forwards the latest text to a Scorer.
type Meter struct {
	scorer   Scorer
	renderer Renderer
	delay    time.Duration
	fallback *passmeter.Evaluator
	log      *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	dirty   bool
	gen     uint64
	closed  bool

	renderMu sync.Mutex
}

// New creates a Meter. It renders the prompt result immediately so the
// UI starts in its default state.
func New(s Scorer, r Renderer, opts ...Option) *Meter {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Meter{
		scorer:   s,
		renderer: r,
		delay:    DefaultDebounce,
		log:      zap.NewNop(),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.renderMu.Lock()
	m.renderer.Render(passmeter.Evaluate(""))
	m.renderMu.Unlock()
	return m
}

// Update records the current input text. Scoring happens once the input
// has been quiet for the debounce period (trailing edge).
func (m *Meter) Update(text string) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.gen++
	gen := m.gen
	m.pending = text
	m.dirty = true
	if m.timer != nil {
		m.timer.Stop()
	}
	if m.delay <= 0 {
		m.dirty = false
		m.mu.Unlock()
		m.evaluate(gen, text)
		return
	}
	m.timer = time.AfterFunc(m.delay, func() { m.fire(gen) })
	m.mu.Unlock()
}

// Flush scores any pending text now instead of waiting for the timer.
func (m *Meter) Flush() {
	m.mu.Lock()
	if m.closed || !m.dirty {
		m.mu.Unlock()
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	gen, text := m.gen, m.pending
	m.dirty = false
	m.mu.Unlock()

	m.evaluate(gen, text)
}

// Close stops pending work. Scoring already in flight is cancelled and its
// result discarded.
func (m *Meter) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
	}
	m.cancel()
}

func (m *Meter) fire(gen uint64) {
	m.mu.Lock()
	if m.closed || gen != m.gen || !m.dirty {
		m.mu.Unlock()
		return
	}
	text := m.pending
	m.dirty = false
	m.mu.Unlock()

	m.evaluate(gen, text)
}

// current reports whether gen is still the latest update.
func (m *Meter) current(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed && gen == m.gen
}

func (m *Meter) evaluate(gen uint64, text string) {
	m.renderMu.Lock()
	defer m.renderMu.Unlock()

	if !m.current(gen) {
		return
	}

	if strings.TrimSpace(text) == "" {
		m.renderer.Render(passmeter.Evaluate(""))
		return
	}

	m.renderer.Analyzing()
	result, err := m.scorer.Evaluate(m.ctx, text)
	if !m.current(gen) {
		return
	}
	if err != nil {
		m.log.Warn("scoring failed", zap.Error(err))
		m.renderer.Error(err)
		if m.fallback == nil {
			return
		}
		result = m.fallback.Evaluate(text)
	}
	m.renderer.Render(result)
}
