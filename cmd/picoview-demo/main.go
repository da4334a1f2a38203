// Command picoview-demo opens a window, clears it to a slowly shifting
// color on every frame tick, and prints the events it pumps. It doubles as
// a capability report: -caps prints the support matrix and exits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"golang.org/x/term"

	"github.com/1broseidon/picoview"
	"github.com/1broseidon/picoview/backend"
	"github.com/1broseidon/picoview/event"
	"github.com/1broseidon/picoview/geom"
)

func init() {
	// The window system requires every call on the connecting thread.
	runtime.LockOSThread()
}

func main() {
	var (
		caps     = flag.Bool("caps", false, "print the capability matrix and exit")
		title    = flag.String("title", "picoview demo", "window title")
		size     = flag.String("size", "800x600", "window size as WIDTHxHEIGHT in physical pixels")
		duration = flag.Duration("duration", 0, "exit after this long (0 = until closed)")
		parent   = flag.Uint64("embed", 0, "native parent handle to embed into (0 = top-level)")
		useGL    = flag.Bool("gl", true, "create a GL surface and clear on each frame")
		quiet    = flag.Bool("quiet", false, "do not print pumped events")
	)
	flag.Parse()

	if *caps {
		printCapabilities()
		return
	}

	if err := run(*title, *size, *duration, uintptr(*parent), *useGL, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "picoview-demo:", err)
		os.Exit(1)
	}
}

func printCapabilities() {
	// Plain rows when piped, an aligned table on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, p := range backend.Platforms() {
			for _, f := range backend.Features() {
				fmt.Printf("%s %s %s\n", p, f, backend.Lookup(p, f))
			}
		}
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "feature")
	for _, p := range backend.Platforms() {
		fmt.Fprintf(tw, "\t%s", p)
	}
	fmt.Fprintln(tw)
	for _, f := range backend.Features() {
		fmt.Fprintf(tw, "%s", f)
		for _, p := range backend.Platforms() {
			fmt.Fprintf(tw, "\t%s", backend.Lookup(p, f))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func parseSize(s string) (geom.Size, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return geom.Size{}, fmt.Errorf("size %q is not WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseUint(ws, 10, 32)
	if err != nil {
		return geom.Size{}, fmt.Errorf("bad width in %q: %w", s, err)
	}
	h, err := strconv.ParseUint(hs, 10, 32)
	if err != nil {
		return geom.Size{}, fmt.Errorf("bad height in %q: %w", s, err)
	}
	return geom.Size{Width: uint32(w), Height: uint32(h)}, nil
}

func run(title, sizeSpec string, duration time.Duration, parent uintptr, useGL, quiet bool) error {
	size, err := parseSize(sizeSpec)
	if err != nil {
		return err
	}

	conn, err := picoview.Connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("scale %.2f, refresh %.1f Hz\n", conn.Scale(), conn.RefreshRate())

	win, err := conn.CreateWindow(backend.Descriptor{
		Title:     title,
		Size:      size,
		Decorated: true,
		Resizable: true,
		Parent:    parent,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	var surface backend.Surface
	if useGL {
		surface, err = win.GLSurface(backend.DefaultGLConfig())
		if err != nil {
			return fmt.Errorf("gl surface: %w", err)
		}
		if err := surface.MakeCurrent(true); err != nil {
			return err
		}
		if err := gl.Init(); err != nil {
			return fmt.Errorf("gl init: %w", err)
		}
	}

	deadline := time.Time{}
	if duration > 0 {
		deadline = time.Now().Add(duration)
	}

	frames := 0
	for win.State() != picoview.StateClosing {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		for _, ev := range win.Pump() {
			switch ev := ev.(type) {
			case event.WindowFrame:
				if surface != nil {
					drawFrame(frames)
					if err := surface.SwapBuffers(); err != nil {
						return err
					}
				}
				frames++
			default:
				if !quiet {
					fmt.Printf("%T%+v\n", ev, ev)
				}
			}
		}

		// Pull-based model: nothing blocks in Pump, so the loop paces
		// itself with a short sleep.
		time.Sleep(time.Millisecond)
	}

	fmt.Printf("%d frames\n", frames)
	return nil
}

func drawFrame(frame int) {
	t := float32(frame%240) / 240
	gl.ClearColor(0.2, 0.3, t, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
