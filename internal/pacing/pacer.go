// Package pacing produces the WindowFrame cadence. Each window owns one
// Pacer whose goroutine either blocks on a platform vblank wait or, where
// that primitive is missing or unreliable, sleeps on a software timer at
// the display's refresh rate. The goroutine never touches window state; it
// only raises a pending-tick flag that the owning thread consumes during
// pump.
package pacing

import (
	"sync/atomic"
	"time"
)

// DefaultRefresh is assumed when the platform cannot report a rate.
const DefaultRefresh = 60.0

// Config selects the pacing strategy for one window.
type Config struct {
	// WaitVBlank blocks until the next compositor vblank and reports
	// whether the wait actually happened. Nil or a false return falls
	// back to the timer for that cycle.
	WaitVBlank func() bool

	// RefreshRate reports the current display refresh rate in Hz. It is
	// consulted at start and again whenever NotifyDisplayChange fires.
	// Nil or non-positive results use DefaultRefresh.
	RefreshRate func() float64

	// ForceTimer disables WaitVBlank even when available. Set from the
	// config override for remote/virtualized displays whose present
	// notifications are unreliable.
	ForceTimer bool
}

// Pacer emits one tick per pacing interval until stopped.
type Pacer struct {
	cfg Config

	pending       atomic.Bool
	displayChange atomic.Bool

	stop chan struct{}
	done chan struct{}
}

// Start launches the pacing goroutine.
func Start(cfg Config) *Pacer {
	p := &Pacer{
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	p.displayChange.Store(true)
	go p.run()
	return p
}

// TakeTick consumes the pending-tick flag. The owning thread calls it once
// per pump; ticks raised while the caller was away coalesce into one.
func (p *Pacer) TakeTick() bool {
	return p.pending.Swap(false)
}

// NotifyDisplayChange makes the next cycle re-query the refresh rate. Call
// it when the window moved to another monitor or the display mode changed.
func (p *Pacer) NotifyDisplayChange() {
	p.displayChange.Store(true)
}

// Stop interrupts the pacing wait and joins the goroutine. It must return
// before the native window is released so no late tick lands on a
// destroyed window. Idempotent.
func (p *Pacer) Stop() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
	<-p.done
}

func (p *Pacer) run() {
	defer close(p.done)

	interval := p.interval()
	next := time.Now().Add(interval)

	for {
		select {
		case <-p.stop:
			return
		default:
		}

		if p.displayChange.Swap(false) {
			interval = p.interval()
		}

		if p.cfg.WaitVBlank != nil && !p.cfg.ForceTimer && p.cfg.WaitVBlank() {
			next = time.Now().Add(interval)
		} else if !p.sleepUntil(&next, interval) {
			return
		}

		p.pending.Store(true)
	}
}

// sleepUntil waits for the next timer deadline, keeping the cadence steady
// when cycles overrun. It returns false when the pacer was stopped.
func (p *Pacer) sleepUntil(next *time.Time, interval time.Duration) bool {
	now := time.Now()
	wait := next.Sub(now)
	if deadline := next.Add(interval); deadline.After(now) {
		*next = deadline
	} else {
		*next = now.Add(interval)
	}
	if wait <= 0 {
		return true
	}

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-p.stop:
		return false
	}
}

func (p *Pacer) interval() time.Duration {
	rate := 0.0
	if p.cfg.RefreshRate != nil {
		rate = p.cfg.RefreshRate()
	}
	if rate <= 0 {
		rate = DefaultRefresh
	}
	return time.Duration(float64(time.Second) / rate)
}
