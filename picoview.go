package picoview

import (
	"fmt"
	"sync"

	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/internal/config"
	"github.com/1broseidon/picoview/internal/logging"
)

// Error kinds, re-exported so callers need not import backend to match
// them with errors.Is.
var (
	ErrPlatformInit  = backend.ErrPlatformInit
	ErrWindowCreate  = backend.ErrWindowCreate
	ErrUnsupported   = backend.ErrUnsupported
	ErrHandleClosed  = backend.ErrHandleClosed
	ErrGLUnavailable = backend.ErrGLUnavailable
)

// Connection is the process-wide link to the display system. All windows
// hang off it and belong to the goroutine that connected.
type Connection struct {
	backend backend.Backend
	log     *logging.Logger
	cfg     *config.Config
	closed  bool
}

var (
	connMu sync.Mutex
	conn   *Connection
)

// Connect establishes the platform connection, loading the optional
// config file first. Idempotent: a second call returns the existing
// connection until it is closed.
func Connect() (*Connection, error) {
	connMu.Lock()
	defer connMu.Unlock()
	if conn != nil {
		return conn, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Config{
		Enabled:   cfg.Log.Enabled,
		Level:     logging.ParseLevel(cfg.Log.Level),
		FilePath:  cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrPlatformInit, err)
	}

	b, err := connect(cfg, log)
	if err != nil {
		log.Close()
		return nil, err
	}

	conn = &Connection{backend: b, log: log, cfg: cfg}
	return conn, nil
}

// CreateWindow opens a native window for the descriptor. The returned
// handle starts in StateCreated and belongs to the connecting goroutine.
func (c *Connection) CreateWindow(desc backend.Descriptor) (*Window, error) {
	if c.closed {
		return nil, fmt.Errorf("%w: connection is closed", backend.ErrWindowCreate)
	}
	nw, err := c.backend.CreateWindow(desc)
	if err != nil {
		return nil, err
	}
	return newWindow(c, nw), nil
}

// Scale reports the display scale factor detected at connect time.
func (c *Connection) Scale() float32 {
	return c.backend.Scale()
}

// RefreshRate reports the display refresh rate in Hz, or 0 when the
// platform cannot tell.
func (c *Connection) RefreshRate() float64 {
	return c.backend.RefreshRate()
}

// Close tears down the connection and every window still open on it.
// After Close, Connect establishes a fresh connection.
func (c *Connection) Close() error {
	connMu.Lock()
	defer connMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.backend.Close()
	c.log.Close()
	if conn == c {
		conn = nil
	}
	return err
}
