package backend

import "errors"

// The closed error taxonomy. Native error codes are mapped onto these
// sentinels at the backend boundary; nothing below it leaks raw platform
// errors to callers. Match with errors.Is.
var (
	// ErrPlatformInit means the native connection could not be acquired
	// (no display server, no session). Fatal to the backend; retrying
	// without OS-level remediation will not help.
	ErrPlatformInit = errors.New("platform connection unavailable")

	// ErrWindowCreate means native window creation failed (bad parent
	// handle, resource exhaustion). Retry with an adjusted descriptor.
	ErrWindowCreate = errors.New("window creation failed")

	// ErrUnsupported means the operation is not implemented on this
	// platform. Branch on the capability matrix; this is an expected
	// outcome, not a transient fault.
	ErrUnsupported = errors.New("operation not supported on this platform")

	// ErrHandleClosed means the operation hit a destroyed window. This
	// is a programmer error and is never retried.
	ErrHandleClosed = errors.New("window handle is closed")

	// ErrGLUnavailable means no pixel format matched the GL request.
	// Retry with relaxed requirements.
	ErrGLUnavailable = errors.New("no matching OpenGL pixel format")
)
