package backend

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrPlatformInit, ErrWindowCreate, ErrUnsupported,
		ErrHandleClosed, ErrGLUnavailable,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v", a, b)
			}
		}
	}
}

func TestWrappedSentinelMatches(t *testing.T) {
	err := fmt.Errorf("%w: no pixel format for 8/8/8/8 rgba", ErrGLUnavailable)
	if !errors.Is(err, ErrGLUnavailable) {
		t.Error("wrapped error should match its sentinel")
	}
	if errors.Is(err, ErrWindowCreate) {
		t.Error("wrapped error should not match another sentinel")
	}

	// Double wrapping, as the root package layers over a backend.
	outer := fmt.Errorf("create: %w", err)
	if !errors.Is(outer, ErrGLUnavailable) {
		t.Error("double-wrapped error should still match its sentinel")
	}
}
