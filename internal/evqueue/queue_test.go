package evqueue

import (
	"testing"

	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

func TestPreservesArrivalOrder(t *testing.T) {
	q := New()
	q.Push(event.MouseDown{Button: event.ButtonLeft})
	q.Push(event.KeyDown{Key: event.KeyA, Text: "a"})
	q.Push(event.MouseUp{Button: event.ButtonLeft})

	out := q.Drain()
	if len(out) != 3 {
		t.Fatalf("drained %d events, want 3", len(out))
	}
	if _, ok := out[0].(event.MouseDown); !ok {
		t.Errorf("out[0] = %T, want MouseDown", out[0])
	}
	if _, ok := out[1].(event.KeyDown); !ok {
		t.Errorf("out[1] = %T, want KeyDown", out[1])
	}
	if _, ok := out[2].(event.MouseUp); !ok {
		t.Errorf("out[2] = %T, want MouseUp", out[2])
	}
}

func TestConsecutiveMouseMovesCollapse(t *testing.T) {
	q := New()
	q.Push(event.MouseMove{Pos: geom.Point{X: 1}, Entered: true})
	q.Push(event.MouseMove{Pos: geom.Point{X: 2}, Entered: true})
	q.Push(event.MouseMove{Pos: geom.Point{X: 3}, Entered: true})

	out := q.Drain()
	if len(out) != 1 {
		t.Fatalf("drained %d events, want 1", len(out))
	}
	if mv := out[0].(event.MouseMove); mv.Pos.X != 3 {
		t.Errorf("collapsed move has X=%v, want the latest (3)", mv.Pos.X)
	}
}

func TestInterleavedMouseMovesDoNotCollapse(t *testing.T) {
	q := New()
	q.Push(event.MouseMove{Pos: geom.Point{X: 1}, Entered: true})
	q.Push(event.MouseDown{Button: event.ButtonLeft, Pos: geom.Point{X: 1}})
	q.Push(event.MouseMove{Pos: geom.Point{X: 2}, Entered: true})

	out := q.Drain()
	if len(out) != 3 {
		t.Fatalf("drained %d events, want 3; a click between moves must keep both moves", len(out))
	}
}

func TestResizeCollapsesToFinalSize(t *testing.T) {
	q := New()
	q.Push(event.KeyDown{Key: event.KeyA})
	q.Push(event.WindowResize{Size: geom.Size{Width: 100, Height: 100}})
	q.Push(event.KeyUp{Key: event.KeyA})
	q.Push(event.WindowResize{Size: geom.Size{Width: 200, Height: 150}})
	q.Push(event.WindowResize{Size: geom.Size{Width: 300, Height: 200}})

	out := q.Drain()
	if len(out) != 3 {
		t.Fatalf("drained %d events, want 3", len(out))
	}
	// The resize keeps its first arrival position but carries the final
	// size.
	rz, ok := out[1].(event.WindowResize)
	if !ok {
		t.Fatalf("out[1] = %T, want WindowResize", out[1])
	}
	if rz.Size != (geom.Size{Width: 300, Height: 200}) {
		t.Errorf("resize size = %+v, want the final 300x200", rz.Size)
	}
}

func TestMoveCollapsesToFinalPosition(t *testing.T) {
	q := New()
	q.Push(event.WindowMove{Pos: geom.Point{X: 10, Y: 10}})
	q.Push(event.WindowMove{Pos: geom.Point{X: 20, Y: 20}})

	out := q.Drain()
	if len(out) != 1 {
		t.Fatalf("drained %d events, want 1", len(out))
	}
	if mv := out[0].(event.WindowMove); mv.Pos != (geom.Point{X: 20, Y: 20}) {
		t.Errorf("move pos = %+v, want the final (20,20)", mv.Pos)
	}
}

func TestSingleFramePerDrain(t *testing.T) {
	q := New()
	q.Push(event.WindowFrame{})
	q.Push(event.KeyDown{Key: event.KeyA})
	q.Push(event.WindowFrame{})

	out := q.Drain()
	frames := 0
	for _, ev := range out {
		if _, ok := ev.(event.WindowFrame); ok {
			frames++
		}
	}
	if frames != 1 {
		t.Errorf("drained %d frames, want 1", frames)
	}
}

func TestDrainResetsCoalescing(t *testing.T) {
	q := New()
	q.Push(event.WindowResize{Size: geom.Size{Width: 100, Height: 100}})
	q.Push(event.WindowFrame{})
	q.Drain()

	// After a drain, the next resize and frame are fresh events.
	q.Push(event.WindowResize{Size: geom.Size{Width: 200, Height: 200}})
	q.Push(event.WindowFrame{})
	out := q.Drain()
	if len(out) != 2 {
		t.Fatalf("drained %d events after reset, want 2", len(out))
	}
	if rz := out[0].(event.WindowResize); rz.Size.Width != 200 {
		t.Errorf("resize after reset = %+v", rz.Size)
	}
}

func TestDrainEmpty(t *testing.T) {
	q := New()
	if out := q.Drain(); out != nil {
		t.Errorf("empty drain = %v, want nil", out)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}
