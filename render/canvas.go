package render

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/koch"
)

const (
	// DefaultLineWidth is the stroke width in pixels.
	DefaultLineWidth = 3
	// DefaultMargin is the space kept free around a fitted curve, in pixels.
	DefaultMargin = 20
	// DefaultFontSize is the size of the instructions text, in points.
	DefaultFontSize = 14
)

// White is the default background.
var White = koch.RGB(255, 255, 255)

// CanvasOption configures a [Canvas].
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	lineWidth    float64
	background   koch.Color
	margin       float64
	fontSize     float64
	instructions []string
	transform    *koch.Affine
	logger       *slog.Logger
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		lineWidth:    DefaultLineWidth,
		background:   White,
		margin:       DefaultMargin,
		fontSize:     DefaultFontSize,
		instructions: DefaultInstructions,
	}
}

// WithLineWidth sets the stroke width in pixels.
func WithLineWidth(w float64) CanvasOption {
	return func(o *canvasOptions) {
		o.lineWidth = w
	}
}

// WithBackground sets the color [Canvas.Render] clears the image to.
func WithBackground(c koch.Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithMargin sets the free space around a fitted curve.
func WithMargin(m float64) CanvasOption {
	return func(o *canvasOptions) {
		o.margin = m
	}
}

// WithInstructions replaces the help text. Passing no lines disables it.
func WithInstructions(lines ...string) CanvasOption {
	return func(o *canvasOptions) {
		o.instructions = lines
	}
}

// WithTransform draws curves with a fixed transform instead of fitting them
// to the canvas.
func WithTransform(aff koch.Affine) CanvasOption {
	return func(o *canvasOptions) {
		o.transform = &aff
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) CanvasOption {
	return func(o *canvasOptions) {
		o.logger = l
	}
}

// Canvas is a raster [Drawable] backed by a gg context.
type Canvas struct {
	dc        *gg.Context
	opts      canvasOptions
	transform koch.Affine
	font      *text.FontSource
	face      text.Face
}

// NewCanvas returns a canvas of the given size in pixels, cleared to the
// background color.
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d", width, height)
	}
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = koch.NopLogger()
	}
	c := &Canvas{
		dc:        gg.NewContext(width, height),
		opts:      o,
		transform: koch.Identity,
	}
	if o.transform != nil {
		c.transform = *o.transform
	}
	if len(o.instructions) > 0 {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: loading font: %w", err)
		}
		c.font = src
		c.face = src.Face(o.fontSize)
		c.dc.SetFont(c.face)
	}
	c.dc.SetLineWidth(o.lineWidth)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.clear()
	return c, nil
}

func (c *Canvas) clear() {
	r, g, b, a := c.opts.background.Float()
	c.dc.ClearWithColor(gg.RGBA2(r, g, b, a))
}

// Width returns the width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Transform returns the transform applied to points before drawing.
func (c *Canvas) Transform() koch.Affine { return c.transform }

// SetTransform sets the transform applied to points before drawing. Stroke
// width is not affected by it.
func (c *Canvas) SetTransform(aff koch.Affine) { c.transform = aff }

// Viewport returns the area curves are fitted into: the canvas minus the
// margin, and minus the text block at the top when instructions are drawn.
func (c *Canvas) Viewport() koch.Rect {
	m := c.opts.margin
	top := m
	if c.face != nil {
		_, lh := c.dc.MeasureString("Mg")
		top += float64(len(c.opts.instructions)+1) * lh
	}
	return koch.Rect{
		X0: m,
		Y0: top,
		X1: float64(c.Width()) - m,
		Y1: float64(c.Height()) - m,
	}
}

// DrawSegments strokes segs with the current transform. Consecutive
// segments of the same color that share an end point are stroked as one
// path so their joins are round. It fails without drawing anything if a
// segment has a non-finite coordinate.
func (c *Canvas) DrawSegments(segs []koch.Segment) error {
	if err := validateSegments(segs); err != nil {
		return err
	}
	var (
		open bool
		col  koch.Color
		cur  koch.Point
	)
	for _, s := range segs {
		s = s.Transform(c.transform)
		if open && (s.Color != col || s.P0 != cur) {
			if err := c.dc.Stroke(); err != nil {
				return fmt.Errorf("render: stroke: %w", err)
			}
			open = false
		}
		if !open {
			r, g, b, a := s.Color.Float()
			c.dc.SetRGBA(r, g, b, a)
			c.dc.MoveTo(s.P0.X, s.P0.Y)
			col = s.Color
			open = true
		}
		c.dc.LineTo(s.P1.X, s.P1.Y)
		cur = s.P1
	}
	if open {
		if err := c.dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke: %w", err)
		}
	}
	return nil
}

// DrawPolyline strokes the path through pts in color col.
func (c *Canvas) DrawPolyline(pts []koch.Point, col koch.Color) error {
	if err := validatePoints(pts); err != nil {
		return err
	}
	return c.DrawSegments(polylineSegments(pts, col))
}

// DrawText draws lines of text at the top left, inside the margin.
func (c *Canvas) DrawText(col koch.Color, lines ...string) {
	if c.face == nil {
		return
	}
	r, g, b, a := col.Float()
	c.dc.SetRGBA(r, g, b, a)
	_, lh := c.dc.MeasureString("Mg")
	y := c.opts.margin + lh
	for _, l := range lines {
		c.dc.DrawString(l, c.opts.margin, y)
		y += lh
	}
}

// Render clears the canvas and draws cv fitted into [Canvas.Viewport], or
// with the fixed transform given by [WithTransform], followed by the
// instructions and a status line.
func (c *Canvas) Render(cv *koch.Curve) error {
	c.clear()
	if c.opts.transform == nil {
		// Keep the round caps of the outermost strokes inside the viewport.
		vp := c.Viewport().Inflate(-c.opts.lineWidth/2, -c.opts.lineWidth/2)
		c.transform = koch.Fit(cv.BoundingBox(), vp)
	}
	segs := cv.Segments()
	if err := c.DrawSegments(segs); err != nil {
		return err
	}
	if len(c.opts.instructions) > 0 {
		lines := append(append([]string{}, c.opts.instructions...), status(cv))
		c.DrawText(koch.Black, lines...)
	}
	c.opts.logger.Debug("rendered curve",
		"level", cv.Level(),
		"segments", len(segs),
		"width", c.Width(),
		"height", c.Height())
	return nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the image to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the image to the named file as PNG.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: saving %s: %w", path, err)
	}
	c.opts.logger.Info("saved image", "path", path)
	return nil
}

// Close releases the font and the drawing context.
func (c *Canvas) Close() error {
	var err error
	if c.font != nil {
		err = c.font.Close()
	}
	if cerr := c.dc.Close(); err == nil {
		err = cerr
	}
	return err
}
