package quiz

import (
	"sync"
	"time"

	"github.com/verte-zerg/kanaquiz/internal/model"
)

// Controller drives an Engine for a presentation layer. It owns the timed
// advance: after a submission in auto mode it schedules Advance, and any later
// transition (manual advance, restart, reset) cancels the pending call so it
// never fires into a different question or session.
type Controller struct {
	mu sync.Mutex

	engine *Engine
	sched  Scheduler
	mode   model.AdvanceMode
	delays Delays

	pending Timer
	epoch   uint64

	onAutoAdvance func(sessionID string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// WithDelays sets the auto-advance delays.
func WithDelays(d Delays) Option {
	return func(c *Controller) {
		c.delays = d
	}
}

// WithAdvanceMode selects timed or user-triggered advancing.
func WithAdvanceMode(mode model.AdvanceMode) Option {
	return func(c *Controller) {
		c.mode = mode
	}
}

// NewController wraps engine. The default is auto mode with DefaultDelays.
func NewController(engine *Engine, opts ...Option) *Controller {
	c := &Controller{
		engine: engine,
		sched:  clockScheduler{},
		mode:   model.AdvanceAuto,
		delays: DefaultDelays,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnAutoAdvance registers f to run after a scheduled advance has been applied.
// f receives the ID of the session that advanced and runs on the timer
// goroutine, after the controller lock is released.
func (c *Controller) OnAutoAdvance(f func(sessionID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAutoAdvance = f
}

// Mode returns the advance mode.
func (c *Controller) Mode() model.AdvanceMode {
	return c.mode
}

// Start cancels any pending advance and begins a new session.
func (c *Controller) Start(pool []model.Question) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.engine.Start(pool); err != nil {
		return err
	}
	c.cancelLocked()
	return nil
}

// Submit judges an answer and, in auto mode, schedules the advance.
func (c *Controller) Submit(answer string) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	outcome, err := c.engine.Submit(answer)
	if err != nil {
		return outcome, err
	}
	if c.mode == model.AdvanceAuto {
		c.scheduleLocked(c.delays.forOutcome(outcome))
	}
	return outcome, nil
}

// Advance moves past the displayed result immediately.
func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.engine.Advance(); err != nil {
		return err
	}
	c.cancelLocked()
	return nil
}

// Reset cancels any pending advance and discards the session.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.engine.Reset()
}

// Close stops any pending advance without changing the session.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Status returns the engine status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Status()
}

// Pending reports whether an automatic advance is scheduled.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

func (c *Controller) scheduleLocked(delay time.Duration) {
	c.cancelLocked()
	epoch := c.epoch
	c.pending = c.sched.AfterFunc(delay, func() {
		c.fire(epoch)
	})
}

// cancelLocked stops the pending timer and bumps the epoch so a callback that
// already started running becomes a no-op.
func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.epoch++
}

func (c *Controller) fire(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	err := c.engine.Advance()
	sessionID := c.engine.sessionID
	notify := c.onAutoAdvance
	c.mu.Unlock()
	if err == nil && notify != nil {
		notify(sessionID)
	}
}
