package pacing

import (
	"sync/atomic"
	"testing"
	"time"
)

// collectTicks polls TakeTick for the duration, counting raised ticks.
func collectTicks(p *Pacer, d time.Duration) int {
	ticks := 0
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if p.TakeTick() {
			ticks++
		}
		time.Sleep(time.Millisecond)
	}
	return ticks
}

func TestTimerModeTicks(t *testing.T) {
	p := Start(Config{
		RefreshRate: func() float64 { return 200 },
		ForceTimer:  true,
	})
	defer p.Stop()

	ticks := collectTicks(p, 300*time.Millisecond)
	// 200 Hz over 300ms is nominally 60 ticks; the bounds are generous
	// because CI schedulers stall.
	if ticks < 10 {
		t.Errorf("got %d ticks in 300ms at 200 Hz, want at least 10", ticks)
	}
}

func TestVBlankWaitDrivesTicks(t *testing.T) {
	var waits atomic.Int32
	p := Start(Config{
		WaitVBlank: func() bool {
			waits.Add(1)
			time.Sleep(5 * time.Millisecond)
			return true
		},
		RefreshRate: func() float64 { return 60 },
	})
	defer p.Stop()

	ticks := collectTicks(p, 200*time.Millisecond)
	if ticks < 5 {
		t.Errorf("got %d ticks from vblank wait, want at least 5", ticks)
	}
	if waits.Load() == 0 {
		t.Error("WaitVBlank was never consulted")
	}
}

func TestForceTimerSkipsVBlank(t *testing.T) {
	var waits atomic.Int32
	p := Start(Config{
		WaitVBlank: func() bool {
			waits.Add(1)
			return true
		},
		RefreshRate: func() float64 { return 100 },
		ForceTimer:  true,
	})

	collectTicks(p, 100*time.Millisecond)
	p.Stop()
	if waits.Load() != 0 {
		t.Errorf("ForceTimer still consulted WaitVBlank %d times", waits.Load())
	}
}

func TestFailedVBlankFallsBackToTimer(t *testing.T) {
	p := Start(Config{
		WaitVBlank:  func() bool { return false },
		RefreshRate: func() float64 { return 200 },
	})
	defer p.Stop()

	if ticks := collectTicks(p, 200*time.Millisecond); ticks < 5 {
		t.Errorf("got %d ticks with failing vblank, want timer fallback", ticks)
	}
}

func TestTicksCoalesce(t *testing.T) {
	p := Start(Config{
		RefreshRate: func() float64 { return 500 },
		ForceTimer:  true,
	})
	defer p.Stop()

	// Stay away for many intervals; exactly one pending tick survives.
	time.Sleep(100 * time.Millisecond)
	if !p.TakeTick() {
		t.Fatal("expected a pending tick after 100ms at 500 Hz")
	}
	if p.TakeTick() {
		t.Error("second TakeTick immediately after should be false")
	}
}

func TestDisplayChangeRequeriesRate(t *testing.T) {
	var queries atomic.Int32
	p := Start(Config{
		RefreshRate: func() float64 {
			queries.Add(1)
			return 200
		},
		ForceTimer: true,
	})
	defer p.Stop()

	time.Sleep(20 * time.Millisecond)
	before := queries.Load()
	if before == 0 {
		t.Fatal("rate never queried at start")
	}

	p.NotifyDisplayChange()
	time.Sleep(50 * time.Millisecond)
	if queries.Load() <= before {
		t.Error("NotifyDisplayChange did not trigger a rate re-query")
	}
}

func TestStopJoins(t *testing.T) {
	p := Start(Config{
		RefreshRate: func() float64 { return 60 },
		ForceTimer:  true,
	})

	done := make(chan struct{})
	go func() {
		p.Stop()
		p.Stop() // idempotent
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestDefaultRateWhenUnknown(t *testing.T) {
	// A nil RefreshRate must not panic and must still tick at the default.
	p := Start(Config{ForceTimer: true})
	defer p.Stop()

	if ticks := collectTicks(p, 150*time.Millisecond); ticks < 2 {
		t.Errorf("got %d ticks at the default rate, want at least 2", ticks)
	}
}
