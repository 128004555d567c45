// Package renderer draws mesh buffers with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshgen/internal/engine/lighting"
	"github.com/Faultbox/meshgen/internal/engine/shader"
	"github.com/Faultbox/meshgen/internal/engine/shaders"
	"github.com/Faultbox/meshgen/internal/logger"
	"github.com/Faultbox/meshgen/pkg/math"
	"github.com/Faultbox/meshgen/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
	Wireframe  bool
}

// Renderer owns the mesh shader and the uploaded parts.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  []*gpuMesh
	log     *zap.Logger

	// LightDir is the world-space direction light travels in.
	LightDir math.Vec3
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		LightDir: lighting.DefaultSun.Direction(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)

	var err error
	r.program, err = shader.New(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload replaces the drawn parts. Buffers are copied to the GPU and not
// referenced afterwards.
func (r *Renderer) Upload(parts []mesh.Part) error {
	r.releaseMeshes()

	for _, p := range parts {
		m, err := uploadMesh(p)
		if err != nil {
			r.releaseMeshes()
			return fmt.Errorf("uploading %q: %w", p.Name, err)
		}
		r.meshes = append(r.meshes, m)
		r.log.Debug("mesh uploaded",
			zap.String("part", p.Name),
			zap.Uint32("vao", m.vao),
			zap.Int32("indices", m.indexCount),
		)
	}
	return nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// ToggleWireframe switches between filled and line rendering.
func (r *Renderer) ToggleWireframe() {
	r.config.Wireframe = !r.config.Wireframe
	r.log.Debug("wireframe", zap.Bool("enabled", r.config.Wireframe))
}

// Draw renders one frame of every uploaded part.
func (r *Renderer) Draw(view, projection math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	mode := uint32(gl.FILL)
	if r.config.Wireframe {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)

	r.program.Use()
	r.program.SetMat4("uModel", math.Identity())
	r.program.SetMat4("uViewProjection", projection.Mul(view))
	r.program.SetVec3("uLightDir", r.LightDir)
	r.program.SetFloat("uAmbient", 0.25)

	checker := float32(1)
	if r.config.Wireframe {
		checker = 0
	}
	r.program.SetFloat("uChecker", checker)

	for i, m := range r.meshes {
		r.program.SetVec3("uColor", partColor(i))
		m.draw()
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMeshes()
	if r.program != nil {
		r.program.Delete()
	}
}

func (r *Renderer) releaseMeshes() {
	for _, m := range r.meshes {
		m.release()
	}
	r.meshes = r.meshes[:0]
}

var palette = []math.Vec3{
	{X: 0.85, Y: 0.65, Z: 0.45},
	{X: 0.55, Y: 0.70, Z: 0.85},
	{X: 0.70, Y: 0.80, Z: 0.55},
	{X: 0.85, Y: 0.55, Z: 0.60},
	{X: 0.75, Y: 0.65, Z: 0.85},
	{X: 0.90, Y: 0.85, Z: 0.55},
}

// partColor gives neighbouring parts distinct colors.
func partColor(i int) math.Vec3 {
	return palette[i%len(palette)]
}
