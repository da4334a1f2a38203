//go:build linux

package picoview

import (
	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
	"github.com/1broseidon/picoview/internal/x11"
)

func connect(cfg *config.Config, log *logging.Logger) (backend.Backend, error) {
	return x11.Connect(cfg, log)
}
