// Package canvas provides a raster geonym.Surface backed by gogpu/gg.
package canvas

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/geonym"
)

// Canvas is a square raster surface.
//
// Circles are filled, then stroked when a border is given. The border line
// width is three device pixels per logical unit of radius, so large discs get
// proportionally heavier outlines.
type Canvas struct {
	dc         *gg.Context
	mapper     geonym.Mapper
	background gg.RGBA
}

var (
	_ geonym.Surface   = (*Canvas)(nil)
	_ geonym.Captioner = (*Canvas)(nil)
)

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background gg.RGBA
}

func defaultOptions() options {
	return options{background: gg.White}
}

// WithBackground sets the color Clear fills the canvas with.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// New creates a canvas of size×size pixels, cleared to its background.
func New(size int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		dc:         gg.NewContext(size, size),
		mapper:     geonym.Mapper{Size: float64(size)},
		background: o.background,
	}
	c.Clear()
	return c
}

// Mapper returns the coordinate mapper of the canvas.
func (c *Canvas) Mapper() geonym.Mapper { return c.mapper }

// Size returns the side length of the canvas in pixels.
func (c *Canvas) Size() int { return c.dc.Width() }

// Clear fills the canvas with its background.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.background)
}

// DrawCircle fills a circle and optionally strokes its border.
func (c *Canvas) DrawCircle(center geonym.Coord, radius float64, fill, border gg.RGBA) error {
	p := c.mapper.Calibrate(center)
	c.dc.DrawCircle(p.X, p.Y, c.mapper.Scale(radius))
	c.setColor(fill)
	if border.A == 0 {
		return c.dc.Fill()
	}
	if err := c.dc.FillPreserve(); err != nil {
		return err
	}
	c.dc.SetLineWidth(radius * 3)
	c.setColor(border)
	return c.dc.Stroke()
}

func (c *Canvas) setColor(col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

// DrawLine strokes a one pixel line.
func (c *Canvas) DrawLine(from, to geonym.Coord, col gg.RGBA) error {
	a := c.mapper.Calibrate(from)
	b := c.mapper.Calibrate(to)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.SetLineWidth(1)
	c.setColor(col)
	return c.dc.Stroke()
}

var captionFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Caption writes the title in the top-left corner, title-cased.
func (c *Canvas) Caption(title string) error {
	if title == "" {
		return nil
	}
	src, err := captionFont()
	if err != nil {
		return fmt.Errorf("caption font: %w", err)
	}
	size := float64(c.Size())
	c.dc.SetFont(src.Face(size / 32))
	c.setColor(geonym.Ink)
	c.dc.DrawStringAnchored(cases.Title(language.English).String(title), size/64, size/64, 0, 1)
	return nil
}

// Image returns a copy of the rendered image.
func (c *Canvas) Image() image.Image {
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	_ = c.dc.FlushGPU()
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
