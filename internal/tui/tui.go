// Package tui is the interactive terminal viewer: the scene rendered on
// a braille canvas with an orbiting camera and a live status panel.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/photonsphere/internal/config"
	"github.com/san-kum/photonsphere/internal/scene"
	"github.com/san-kum/photonsphere/internal/viz"
)

const (
	canvasWidth  = 80
	canvasHeight = 28
	rotateStep   = 5 * math.Pi / 180
)

type TickMsg time.Time

// Model drives the animation loop and the camera.
type Model struct {
	scene      *scene.Scene
	cam        *viz.Camera
	canvas     *viz.Canvas
	frame      int
	frames     int
	playing    bool
	autoRotate bool
	degPerTick float64
	showHelp   bool
	home       config.CameraConfig
}

func NewModel(cfg *config.Config, s *scene.Scene) Model {
	cam := viz.NewCamera(cfg.PlotLimit)
	cam.Azimuth = cfg.Camera.Azimuth * math.Pi / 180
	cam.Elevation = cfg.Camera.Elevation * math.Pi / 180
	if cfg.Camera.Zoom > 0 {
		cam.Zoom = cfg.Camera.Zoom
	}

	frames := cfg.Animation.Frames
	if frames < 2 {
		frames = config.DefaultFrames
	}
	return Model{
		scene:      s,
		cam:        cam,
		canvas:     viz.NewCanvas(canvasWidth, canvasHeight),
		frames:     frames,
		playing:    true,
		autoRotate: cfg.Animation.AutoRotate,
		degPerTick: cfg.Animation.DegPerFrame,
		home:       cfg.Camera,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "a":
			m.autoRotate = !m.autoRotate
		case "r":
			m.frame = 0
			m.cam.Azimuth = m.home.Azimuth * math.Pi / 180
			m.cam.Elevation = m.home.Elevation * math.Pi / 180
			m.cam.Zoom = m.home.Zoom
		case "left", "h":
			m.cam.Rotate(-rotateStep, 0)
		case "right", "l":
			m.cam.Rotate(rotateStep, 0)
		case "up", "k":
			m.cam.Rotate(0, rotateStep)
		case "down", "j":
			m.cam.Rotate(0, -rotateStep)
		case "+", "=":
			m.cam.ZoomIn()
		case "-", "_":
			m.cam.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.playing {
			m.frame = (m.frame + 1) % m.frames
		}
		if m.autoRotate {
			m.cam.Rotate(m.degPerTick*math.Pi/180, 0)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// Progress is the animation position in [0, 1].
func (m Model) Progress() float64 {
	return float64(m.frame) / float64(m.frames-1)
}

func (m Model) View() string {
	m.canvas.Clear()
	viz.RenderCanvas(m.scene.Frame(m.Progress()), m.cam, m.canvas)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("PHOTON SPHERE") + "\n")
	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}
	if m.autoRotate {
		status += " · ROTATE"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", m.frame+1, m.frames)) + "\n")
	s.WriteString(labelStyle.Render("Horizon rs") + valueStyle.Render(fmt.Sprintf("%.2f", m.scene.BlackHole.SchwarzschildRadius)) + "\n")
	s.WriteString(labelStyle.Render("Azimuth") + valueStyle.Render(fmt.Sprintf("%.0f°", m.cam.Azimuth*180/math.Pi)) + "\n")
	s.WriteString(labelStyle.Render("Elevation") + valueStyle.Render(fmt.Sprintf("%.0f°", m.cam.Elevation*180/math.Pi)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.cam.Zoom)) + "\n")

	s.WriteString("\nRAYS\n")
	for _, ray := range m.scene.Rays {
		traj := ray.Trajectory
		line := fmt.Sprintf("b=%-5.2f %-9s rmin=%.2f", traj.ImpactParameter, traj.Outcome, traj.MinRadius)
		s.WriteString("  " + outcomeStyle(traj.Outcome.String()).Render(line) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause A:Rotate R:Reset Q:Quit\n←→↑↓:Orbit +/-:Zoom ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  A        - Toggle auto-rotate       ║
║  R        - Reset view and playback  ║
║  Arrows   - Orbit the camera         ║
║  + / -    - Zoom in / out            ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run traces the configured scene and starts the viewer.
func Run(cfg *config.Config) error {
	s, err := scene.New(cfg)
	if err != nil {
		return err
	}
	return tea.NewProgram(NewModel(cfg, s), tea.WithAltScreen()).Start()
}
