// Package picoview opens native windows and hands their input and frame
// timing to the caller through a non-blocking pump. It does no drawing of
// its own: a window exposes its native handle and an optional OpenGL
// surface, and everything else is the caller's business.
//
// The model is pull-based. The thread that called Connect owns every
// window; it calls Pump whenever it wants the events that accumulated
// since the last call, and Pump never blocks. Frame ticks (WindowFrame)
// arrive through the same pump, paced per window from the platform's
// vblank source or a refresh-rate timer.
//
// Coordinates are physical pixels with a top-left origin on every
// platform. The display scale factor is process-wide and read through
// geom.ScaleFactor.
package picoview
