// Package app wires the window, renderer and viewer state into the main loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heightmaps/internal/assets"
	"github.com/Faultbox/heightmaps/internal/config"
	"github.com/Faultbox/heightmaps/internal/engine/camera"
	"github.com/Faultbox/heightmaps/internal/engine/debug"
	"github.com/Faultbox/heightmaps/internal/engine/input"
	"github.com/Faultbox/heightmaps/internal/engine/renderer"
	"github.com/Faultbox/heightmaps/internal/engine/renderer/shaders"
	"github.com/Faultbox/heightmaps/internal/engine/shader"
	"github.com/Faultbox/heightmaps/internal/engine/texture"
	"github.com/Faultbox/heightmaps/internal/engine/window"
	"github.com/Faultbox/heightmaps/internal/logger"
	"github.com/Faultbox/heightmaps/internal/viewer"
)

// App is the running viewer.
type App struct {
	config *config.Config
	log    *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	assets   *assets.Manager
	state    *viewer.State
	capture  *debug.ScreenshotCapture
	stats    viewer.FrameStats
}

// New creates the window and GL resources and loads the terrain assets.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
		assets: assets.NewManager(),
	}

	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("resolution", cfg.Terrain.Resolution),
	)

	for _, dir := range cfg.Assets.Paths {
		if err := a.assets.AddDir(dir); err != nil {
			a.log.Warn("skipping asset path", zap.String("path", dir), zap.Error(err))
		}
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Fullscreen:    cfg.Window.Fullscreen,
		VSync:         cfg.Window.VSync,
		CaptureCursor: cfg.Window.CaptureCursor,
	})
	if err != nil {
		a.assets.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := a.initGraphics(); err != nil {
		a.Close()
		return nil, err
	}

	a.state = viewer.New(viewer.Options{
		Resolution:   viewer.Resolution(cfg.Terrain.Resolution),
		RepeatFrames: cfg.Controls.RepeatFrames,
		Camera: camera.Settings{
			MoveSpeed:        cfg.Camera.MoveSpeed,
			MouseSensitivity: cfg.Camera.MouseSensitivity,
		},
		Logger: logger.Named("viewer"),
	})
	a.state.SetViewport(a.window.DrawableSize())

	a.capture = debug.NewScreenshotCapture(cfg.Screenshots.Dir, cfg.Screenshots.Prefix)

	a.log.Info("viewer initialized successfully")
	return a, nil
}

// initGraphics loads GL, compiles the terrain program and uploads textures.
// Must be called AFTER the window exists.
func (a *App) initGraphics() error {
	if err := renderer.Init(); err != nil {
		return err
	}

	program, err := a.loadProgram()
	if err != nil {
		return fmt.Errorf("failed to build terrain shader: %w", err)
	}

	width, height := a.window.DrawableSize()
	a.renderer = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		ClearColor:  a.config.Terrain.ClearColorRGB(),
		ModelScale:  a.config.Terrain.Scale,
		HeightScale: a.config.Terrain.HeightScale,
		Tiling:      a.config.Terrain.Tiling,
	}, program)

	a.loadTextures()
	return nil
}

func (a *App) loadProgram() (*shader.Program, error) {
	if a.config.Shaders.Custom() {
		a.log.Info("loading shaders",
			zap.String("vertex", a.config.Shaders.Vertex),
			zap.String("fragment", a.config.Shaders.Fragment),
		)
		return shader.Load(a.assets, a.config.Shaders.Vertex, a.config.Shaders.Fragment)
	}
	return shader.Compile(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
}

// loadTextures uploads the terrain textures. A texture that fails to load is
// replaced by its unit's fallback so the viewer still starts.
func (a *App) loadTextures() {
	layers := []struct {
		unit renderer.TextureUnit
		path string
	}{
		{renderer.UnitGrass, a.config.Textures.Grass},
		{renderer.UnitRock, a.config.Textures.Rock},
		{renderer.UnitSnow, a.config.Textures.Snow},
		{renderer.UnitHeightMap, a.config.Textures.HeightMap},
	}

	for _, layer := range layers {
		unit, path := layer.unit, layer.path
		img, err := texture.Load(a.assets, path)
		if err != nil {
			a.log.Warn("failed to load texture, using fallback",
				zap.String("sampler", unit.Sampler()),
				zap.Error(err),
			)
			img = unit.Fallback()
		} else {
			a.log.Debug("texture loaded",
				zap.String("path", path),
				zap.Int("width", img.Width()),
				zap.Int("height", img.Height()),
			)
		}
		a.renderer.SetTexture(unit, renderer.UploadTexture(img, unit.Clamped()))
	}
}

// Run starts the main loop. It returns when the window is closed, Escape is
// pressed or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	lastTime := time.Now()
	keyboard := window.Keyboard{}

	a.log.Info("starting render loop")

	for !a.state.ShouldQuit() {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown requested", zap.Error(context.Cause(ctx)))
			return nil
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		for _, event := range a.window.PollEvents() {
			a.state.HandleEvent(event)
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(event.Width, event.Height)
			}
		}

		// 2. Update viewer state
		a.state.Step(keyboard, dt)

		// 3. Render
		a.render()

		if a.state.TakeScreenshot() {
			a.screenshot()
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		if fps, ok := a.stats.Tick(now); ok {
			a.log.Debug("fps", zap.Float64("fps", fps), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			if a.config.Window.ShowStats {
				a.window.SetTitle(a.state.Title(a.config.Window.Title, fps))
			}
		}
	}

	return nil
}

func (a *App) render() {
	if mesh := a.state.TakeMesh(); mesh != nil {
		a.renderer.UploadMesh(mesh)
	}

	view, projection := a.state.Matrices()
	a.renderer.SetViewProjection(view, projection)

	a.renderer.Begin()
	a.renderer.Draw(a.renderer.IndexCount())
}

func (a *App) screenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.capture.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources, then the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}

	hits, misses := a.assets.Stats()
	a.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
	a.assets.Close()
}
