//go:build windows

package picoview

import (
	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
	"github.com/1broseidon/picoview/internal/win32"
)

func connect(cfg *config.Config, log *logging.Logger) (backend.Backend, error) {
	return win32.Connect(cfg, log)
}
