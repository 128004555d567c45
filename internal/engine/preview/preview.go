// Package preview runs the interactive mesh viewer loop.
package preview

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/engine/camera"
	"github.com/Faultbox/meshgen/internal/engine/input"
	"github.com/Faultbox/meshgen/internal/engine/renderer"
	"github.com/Faultbox/meshgen/internal/engine/screenshot"
	"github.com/Faultbox/meshgen/internal/engine/window"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/pkg/math"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

// fovY is the vertical field of view.
const fovY = math32.Pi / 4

// Config holds preview configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Wireframe  bool
	Background [3]float32

	// ScreenshotDir receives captures taken with P, encoded as
	// ScreenshotFormat (png or bmp).
	ScreenshotDir    string
	ScreenshotFormat string

	// Open loads the file picked with O. Nil disables the file dialog.
	Open func(path string) ([]mesh.Part, error)
}

// Preview owns the window, renderer and camera.
type Preview struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	capture  *screenshot.Capture
	log      *zap.Logger

	// pending carries a path picked in the file dialog to the render loop.
	pending chan string

	lo, hi math.Vec3
}

// New opens the window and uploads parts.
func New(cfg Config, parts []mesh.Part) (*Preview, error) {
	p := &Preview{
		config:  cfg,
		log:     logger.Named("preview"),
		input:   input.New(),
		camera:  camera.NewOrbitCamera(),
		pending: make(chan string, 1),
	}

	var err error
	p.capture, err = screenshot.New(cfg.ScreenshotDir, "meshview", cfg.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	p.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist
	width, height := p.window.DrawableSize()
	p.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: cfg.Background,
		Wireframe:  cfg.Wireframe,
	})
	if err != nil {
		p.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := p.show(parts); err != nil {
		p.Close()
		return nil, err
	}

	p.log.Info("preview ready", zap.Int("parts", len(parts)))
	return p, nil
}

// show uploads parts and frames them.
func (p *Preview) show(parts []mesh.Part) error {
	if err := p.renderer.Upload(parts); err != nil {
		return err
	}
	p.lo, p.hi = SceneBounds(parts)
	p.camera.FitToBounds(p.lo, p.hi, fovY)
	return nil
}

// Run starts the render loop and returns when the window is closed.
//
// Controls: left drag orbits, wheel zooms, W toggles wireframe, F refits
// the camera, P saves a screenshot, O opens a file, Escape quits.
func (p *Preview) Run() error {
	p.running = true

	frameCount := 0
	fpsTimer := time.Now()

	for p.running {
		if p.input.Update() {
			break
		}
		p.handleEvents()

		select {
		case path := <-p.pending:
			p.open(path)
		default:
		}

		view := p.camera.ViewMatrix()
		projection := math.Perspective(fovY, p.renderer.Aspect(), p.camera.Distance*0.01, p.camera.Distance*100)
		p.renderer.Draw(view, projection)
		p.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			p.window.SetTitle(fmt.Sprintf("%s (%d fps)", p.config.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (p *Preview) handleEvents() {
	for _, event := range p.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			p.renderer.Resize(p.window.DrawableSize())
		case input.EventMouseDrag:
			p.camera.HandleDrag(event.DX, event.DY)
		case input.EventMouseWheel:
			p.camera.HandleZoom(event.DY)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				p.running = false
			case sdl.SCANCODE_W:
				p.renderer.ToggleWireframe()
			case sdl.SCANCODE_F:
				p.camera.FitToBounds(p.lo, p.hi, fovY)
			case sdl.SCANCODE_P:
				p.screenshot()
			case sdl.SCANCODE_O:
				p.openFileDialog()
			}
		}
	}
}

func (p *Preview) screenshot() {
	pixels, width, height := p.renderer.ReadPixels()
	path, err := p.capture.SaveRGBA(pixels, width, height)
	if err != nil {
		p.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	p.log.Info("screenshot saved", zap.String("path", path))
}

// openFileDialog shows a native file dialog without blocking the loop.
// GL calls must stay on the main thread, so the choice is handed back over
// pending and loaded by Run.
func (p *Preview) openFileDialog() {
	if p.config.Open == nil {
		return
	}
	go func() {
		filename, err := dialog.File().
			Filter("Meshes and recipes", "yaml", "yml", "pmsh", "gltf", "glb").
			Filter("All Files", "*").
			Title("Open mesh").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				p.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case p.pending <- filename:
		default:
			// A previous pick has not been loaded yet
		}
	}()
}

func (p *Preview) open(path string) {
	parts, err := p.config.Open(path)
	if err == nil {
		err = p.show(parts)
	}
	if err != nil {
		p.log.Warn("failed to open file", zap.String("path", path), zap.Error(err))
		return
	}
	p.config.Title = "meshview - " + path
	p.window.SetTitle(p.config.Title)
	p.log.Info("opened", zap.String("path", path), zap.Int("parts", len(parts)))
}

// Close releases GPU resources and the window.
func (p *Preview) Close() {
	p.log.Info("closing preview")

	if p.renderer != nil {
		p.renderer.Close()
	}
	if p.window != nil {
		p.window.Close()
	}
}

// SceneBounds returns the bounding box of all parts. Empty input yields a
// unit box at the origin.
func SceneBounds(parts []mesh.Part) (lo, hi math.Vec3) {
	first := true
	for _, part := range parts {
		if part.Buffer.VertexCount() == 0 {
			continue
		}
		plo, phi := part.Buffer.Bounds()
		if first {
			lo, hi = plo, phi
			first = false
			continue
		}
		lo = lo.Min(plo)
		hi = hi.Max(phi)
	}
	if first {
		return math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	}
	return lo, hi
}
