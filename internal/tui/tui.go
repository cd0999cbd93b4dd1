// Package tui is the interactive host: it owns a curve, advances and resets
// it on key presses and redraws it in the terminal.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"honnef.co/go/koch"
	"honnef.co/go/koch/render"
)

// Config holds the host's settings.
type Config struct {
	// MaxLevel is the highest level Advance is allowed to reach.
	MaxLevel int
	// Output is the PNG file written by the save key.
	Output string
	// ImageWidth and ImageHeight are the size of saved images in pixels.
	ImageWidth, ImageHeight int
	// LineWidth is the stroke width of saved images.
	LineWidth float64
	Logger    *slog.Logger
}

// DefaultMaxLevel keeps the segment count of the default seed below 200k.
const DefaultMaxLevel = 8

var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Model is a bubbletea model around a [koch.Curve].
type Model struct {
	curve  *koch.Curve
	cfg    Config
	logger *slog.Logger

	width  int
	height int

	helpVisible bool
	status      string
	failed      bool
}

// New returns a model that drives c.
func New(c *koch.Curve, cfg Config) Model {
	if cfg.MaxLevel <= 0 {
		cfg.MaxLevel = DefaultMaxLevel
	}
	if cfg.Output == "" {
		cfg.Output = "koch.png"
	}
	if cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0 {
		cfg.ImageWidth, cfg.ImageHeight = 600, 600
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = render.DefaultLineWidth
	}
	logger := cfg.Logger
	if logger == nil {
		logger = koch.NopLogger()
	}
	return Model{
		curve:       c,
		cfg:         cfg,
		logger:      logger,
		helpVisible: true,
		status:      "ready",
	}
}

// Curve returns the curve driven by the model.
func (m Model) Curve() *koch.Curve { return m.curve }

// Status returns the current status message.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ", "space", "enter", "a":
			m = m.advance()
		case "r":
			m.curve.Reset()
			m.setStatus("reset to seed")
		case "s":
			m = m.save()
		case "h":
			m.helpVisible = !m.helpVisible
		}
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.failed = true
	m.logger.Error("command failed", "err", err)
}

func (m Model) advance() Model {
	if m.curve.Level() >= m.cfg.MaxLevel {
		m.setStatus(fmt.Sprintf("level %d is the maximum", m.cfg.MaxLevel))
		return m
	}
	m.curve.Advance()
	m.setStatus(fmt.Sprintf("advanced to level %d", m.curve.Level()))
	return m
}

func (m Model) save() Model {
	cv, err := render.NewCanvas(m.cfg.ImageWidth, m.cfg.ImageHeight,
		render.WithLineWidth(m.cfg.LineWidth),
		render.WithLogger(m.logger))
	if err != nil {
		m.setError(err)
		return m
	}
	defer cv.Close()
	if err := cv.Render(m.curve); err != nil {
		m.setError(err)
		return m
	}
	if err := cv.SavePNG(m.cfg.Output); err != nil {
		m.setError(err)
		return m
	}
	m.setStatus("saved " + m.cfg.Output)
	return m
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	const headerHeight, footerHeight = 1, 2
	canvasHeight := max(4, m.height-headerHeight-footerHeight)
	canvasWidth := max(10, m.width)

	header := titleStyle.Render(" koch ─ snowflake ")

	b := render.NewBraille(canvasWidth, canvasHeight)
	var body string
	if err := b.Render(m.curve); err != nil {
		body = errStyle.Render(err.Error())
	} else {
		body = b.Colorize(paint)
	}
	body = lipgloss.NewStyle().Width(canvasWidth).Height(canvasHeight).Render(body)

	status := fmt.Sprintf(" level %d · %d segments · %s ", m.curve.Level(), m.curve.Len(), m.status)
	if m.failed {
		status = errStyle.Render(status)
	} else {
		status = dimStyle.Render(status)
	}
	footer := status
	if m.helpVisible {
		footer = lipgloss.JoinVertical(lipgloss.Left, status, dimStyle.Render(" "+help()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func help() string {
	return strings.Join([]string{
		"space/a: advance",
		"r: reset",
		"s: save png",
		"h: help",
		"q: quit",
	}, " · ")
}

func paint(cell string, c koch.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).Render(cell)
}
