// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/heightmaps/internal/engine/input"
	"github.com/Faultbox/heightmaps/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	CaptureCursor bool
}

// Window wraps SDL2 window and OpenGL context.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	// Virtual cursor accumulated from relative motion.
	cursorX, cursorY float32
	events           []input.Event
}

// New creates a new window with OpenGL context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config:  cfg,
		cursorX: float32(cfg.Width) / 2,
		cursorY: float32(cfg.Height) / 2,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	if cfg.CaptureCursor {
		sdl.SetRelativeMouseMode(true)
	}

	width, height := w.DrawableSize()
	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", width),
		zap.Int("drawable_height", height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}

	sdl.Quit()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// DrawableSize returns the framebuffer size in pixels, which differs from
// the window size on HiDPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
