//go:build !linux && !windows && !darwin

package picoview

import (
	"fmt"
	"runtime"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
)

func connect(*config.Config, *logging.Logger) (backend.Backend, error) {
	return nil, fmt.Errorf("%w: no backend for %s", backend.ErrPlatformInit, runtime.GOOS)
}
