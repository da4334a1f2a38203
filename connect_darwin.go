//go:build darwin

package picoview

import (
	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/internal/cocoa"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
)

func connect(cfg *config.Config, log *logging.Logger) (backend.Backend, error) {
	return cocoa.Connect(cfg, log)
}
