// facet - Terminal 3D Model Viewer
// View shaded text-format and GLB models in your terminal.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	R           - Reset rotation
//	W           - Toggle wireframe overlay
//	P           - Toggle vertex visibility dots
//	Q/Esc       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/facetview/facet/pkg/models"
	"github.com/facetview/facet/pkg/render"
)

const defaultModelPath = "object.txt"

var (
	bgColor   = flag.String("bg", "255,255,255", "Background color (R,G,B)")
	wireframe = flag.Bool("wire", true, "Draw the black wireframe overlay")
	showDots  = flag.Bool("dots", true, "Mark visible vertices with blue dots")
	output    = flag.String("o", "", "Render a single frame to a PNG file and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "facet - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet [options] [model.txt|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate model\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  W           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  P           - Toggle vertex dots\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc       - Quit\n")
	}
	flag.Parse()

	modelPath := defaultModelPath
	if flag.NArg() > 0 {
		modelPath = flag.Arg(0)
	}

	if err := run(modelPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadModel(path string) (*models.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return models.LoadGLTF(path)
	default:
		return models.LoadObject(path)
	}
}

func parseBG(s string) render.Color {
	var r, g, b uint8 = 255, 255, 255
	fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b)
	return render.RGB(r, g, b)
}

// renderToFile draws one frame at the default viewport size and writes it
// out as a PNG. No terminal is touched.
func renderToFile(viewer *render.Viewer, bg render.Color, path string) error {
	vp := render.Viewport{Width: render.DefaultWidth, Height: render.DefaultHeight}
	painter := render.NewPainter(vp)
	painter.Wireframe = *wireframe
	painter.Dots = *showDots

	cmds, err := viewer.Frame(painter)
	if err != nil {
		return err
	}
	fb := render.NewFramebuffer(vp.Width, vp.Height)
	fb.Clear(bg)
	fb.Execute(cmds)
	return fb.SavePNG(path)
}

func run(modelPath string) error {
	bg := parseBG(*bgColor)

	// Load and validate the model before taking over the terminal, so
	// errors print on a normal screen.
	mesh, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	viewer, err := render.NewViewer(mesh)
	if err != nil {
		return fmt.Errorf("prepare model: %w", err)
	}

	if *output != "" {
		return renderToFile(viewer, bg, *output)
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	painter := render.NewPainter(render.Viewport{Width: fbWidth, Height: fbHeight})
	painter.Wireframe = *wireframe
	painter.Dots = *showDots

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	redraw := func() error {
		cmds, err := viewer.Frame(painter)
		if err != nil {
			return err
		}
		fb.Clear(bg)
		fb.Execute(cmds)
		termRenderer.Render(fb)
		return termRenderer.Flush()
	}

	if err := redraw(); err != nil {
		cleanup()
		return fmt.Errorf("render: %w", err)
	}

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event loop. Input is handled serially on this goroutine: the view
	// only changes in response to events, so a frame is drawn after each
	// state change rather than on a timer.
	events := term.Events()
	for {
		var ev uv.Event
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		case ev = <-events:
		}

		dirty := false

		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			termRenderer = render.NewTerminalRenderer(term, width, height)
			fbWidth, fbHeight = termRenderer.FramebufferSize()
			fb = render.NewFramebuffer(fbWidth, fbHeight)
			painter.Viewport = render.Viewport{Width: fbWidth, Height: fbHeight}
			dirty = true

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
				cleanup()
				return nil
			case ev.MatchString("r"):
				viewer.Reset()
				dirty = true
			case ev.MatchString("w"):
				painter.Wireframe = !painter.Wireframe
				dirty = true
			case ev.MatchString("p"):
				painter.Dots = !painter.Dots
				dirty = true
			}

		case uv.MouseClickEvent:
			mouseDown = true
			lastMouseX, lastMouseY = ev.X, ev.Y

		case uv.MouseReleaseEvent:
			mouseDown = false

		case uv.MouseMotionEvent:
			if mouseDown {
				dx := ev.X - lastMouseX
				dy := ev.Y - lastMouseY
				if dx != 0 || dy != 0 {
					viewer.Drag(dx, dy)
					dirty = true
				}
				lastMouseX, lastMouseY = ev.X, ev.Y
			}
		}

		if dirty {
			if err := redraw(); err != nil {
				cleanup()
				return fmt.Errorf("render: %w", err)
			}
		}
	}
}
