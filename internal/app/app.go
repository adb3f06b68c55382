// Package app wires the window, input, simulation and renderer into
// the viewer main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/andrepology/pond/internal/config"
	"github.com/andrepology/pond/internal/engine/camera"
	"github.com/andrepology/pond/internal/engine/input"
	"github.com/andrepology/pond/internal/engine/motion"
	"github.com/andrepology/pond/internal/engine/renderer"
	"github.com/andrepology/pond/internal/engine/window"
	"github.com/andrepology/pond/internal/logger"
	"github.com/andrepology/pond/pkg/math"
	"github.com/andrepology/pond/pkg/tube"
)

const maxFrameDt = 0.1 // seconds, cap after stalls so the sim never jumps

// App is the viewer application.
type App struct {
	cfg *config.Config

	window   *window.Window
	input    *input.Input
	renderer *renderer.Renderer
	camera   *camera.OrbitCamera
	mover    *motion.Mover
	tube     *tube.Tube

	dragging   bool
	lastMouseX int
	lastMouseY int

	running bool
}

// New creates the application and all its subsystems. The window and
// GL context are created here, so New must run on the main thread.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	win, err := window.New(window.Config{
		Title:      "Pond",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	a.window = win

	rend, err := renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}
	a.renderer = rend
	rend.Resize(win.Size())

	a.input = input.New()
	a.camera = camera.New()

	a.mover = motion.New(motion.Config{
		PointCount:     cfg.Motion.PointCount,
		Spacing:        cfg.Motion.Spacing,
		Speed:          cfg.Motion.Speed,
		TurnRate:       cfg.Motion.TurnRate,
		WanderStrength: cfg.Motion.WanderStrength,
		Bounds:         cfg.Motion.Bounds,
	})

	a.tube = tube.New(tube.Config{
		SamplesPerSegment: cfg.Tube.SamplesPerSegment,
		RingSegments:      cfg.Tube.RingSegments,
		MaxRadius:         cfg.Tube.MaxRadius,
		HeadRoundness:     cfg.Tube.HeadRoundness,
		TailSharpness:     cfg.Tube.TailSharpness,
		BellyAmount:       cfg.Tube.BellyAmount,
		BellyFrequency:    cfg.Tube.BellyFrequency,
		AttachmentStep:    cfg.Tube.AttachmentStep,
	})

	logger.Info("application initialized",
		zap.Int("controlPoints", cfg.Motion.PointCount),
		zap.Int("ringSegments", cfg.Tube.RingSegments),
	)

	return a, nil
}

// Run executes the main loop until quit.
func (a *App) Run() {
	a.running = true

	last := time.Now()
	frames := 0
	fpsTimer := time.Now()

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		a.mover.Step(dt)
		a.tube.Update(a.mover.Points(), a.mover.Head(), a.mover.HeadDirection())

		a.camera.Follow(a.mover.Head(), dt)

		a.renderer.Begin()
		a.renderer.UploadMesh(a.tube.Positions(), a.tube.Normals(), a.tube.UVs(), a.tube.Indices())

		proj := math.Perspective(0.959931, a.renderer.Aspect(), 0.1, 200.0) // 55 degrees FOV
		mvp := proj.Mul(a.camera.ViewMatrix())
		a.renderer.Draw(mvp)

		a.window.SwapBuffers()

		frames++
		if a.cfg.Graphics.ShowFPS && time.Since(fpsTimer) >= time.Second {
			logger.Info("frame rate", zap.Int("fps", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}
}

func (a *App) handleEvents() {
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventQuit:
			a.running = false

		case input.EventKeyDown:
			if ev.Key == sdl.SCANCODE_ESCAPE {
				a.running = false
			}

		case input.EventWindowResize:
			a.renderer.Resize(ev.Width, ev.Height)

		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				a.dragging = true
				a.lastMouseX = ev.MouseX
				a.lastMouseY = ev.MouseY
			}

		case input.EventMouseUp:
			if ev.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				delta := math.Vec2{
					X: float32(ev.MouseX - a.lastMouseX),
					Y: float32(ev.MouseY - a.lastMouseY),
				}
				a.camera.HandleDrag(delta)
				a.lastMouseX = ev.MouseX
				a.lastMouseY = ev.MouseY
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(ev.WheelY)
		}
	}
}

// Close shuts down all subsystems in reverse creation order.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	logger.Info("application closed")
}
