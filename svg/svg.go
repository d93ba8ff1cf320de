// Package svg provides a vector geonym.Surface that emits SVG 1.1 documents.
//
// Drawing calls are captured with a gg recording.Recorder and played back
// into the recording backend registered as "svg" when the document is
// written.
package svg

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/geonym"
)

// Document is a square SVG surface. Shapes are recorded in drawing order and
// played back by WriteTo.
type Document struct {
	size       int
	mapper     geonym.Mapper
	background gg.RGBA
	rec        *recording.Recorder
}

var (
	_ geonym.Surface   = (*Document)(nil)
	_ geonym.Captioner = (*Document)(nil)
)

// New creates an empty document of size×size user units with a white
// background.
func New(size int) *Document {
	return NewWithBackground(size, gg.White)
}

// NewWithBackground creates an empty document with the given background.
func NewWithBackground(size int, bg gg.RGBA) *Document {
	d := &Document{size: size, mapper: geonym.Mapper{Size: float64(size)}, background: bg}
	d.Clear()
	return d
}

// Mapper returns the coordinate mapper of the document.
func (d *Document) Mapper() geonym.Mapper { return d.mapper }

// Clear drops every recorded shape and paints the background.
func (d *Document) Clear() {
	d.rec = recording.NewRecorder(d.size, d.size)
	if d.background.A > 0 {
		d.rec.ClearWithColor(d.background)
	}
}

// DrawCircle records a filled circle, stroked when border is visible.
func (d *Document) DrawCircle(center geonym.Coord, radius float64, fill, border gg.RGBA) error {
	p := d.mapper.Calibrate(center)
	d.rec.SetFillRGBA(fill.R, fill.G, fill.B, fill.A)
	d.rec.DrawCircle(p.X, p.Y, d.mapper.Scale(radius))
	if border.A == 0 {
		d.rec.Fill()
		return nil
	}
	d.rec.FillPreserve()
	d.rec.SetStrokeRGBA(border.R, border.G, border.B, border.A)
	d.rec.SetLineWidth(radius * 3)
	d.rec.Stroke()
	return nil
}

// DrawLine records a one unit wide line.
func (d *Document) DrawLine(from, to geonym.Coord, col gg.RGBA) error {
	a := d.mapper.Calibrate(from)
	b := d.mapper.Calibrate(to)
	d.rec.SetStrokeRGBA(col.R, col.G, col.B, col.A)
	d.rec.SetLineWidth(1)
	d.rec.DrawLine(a.X, a.Y, b.X, b.Y)
	d.rec.Stroke()
	return nil
}

// Caption records the title-cased title in the top-left corner.
func (d *Document) Caption(title string) error {
	if title == "" {
		return nil
	}
	size := d.mapper.Size
	d.rec.SetFillRGBA(geonym.Ink.R, geonym.Ink.G, geonym.Ink.B, geonym.Ink.A)
	d.rec.SetFontSize(size / 32)
	d.rec.DrawString(cases.Title(language.English).String(title), size/64, size/64+size/32)
	return nil
}

// Recording returns the shapes recorded so far.
func (d *Document) Recording() *recording.Recording {
	return d.rec.FinishRecording()
}

// WriteTo plays the recording into the "svg" backend and writes the
// resulting document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	backend, err := recording.NewBackend(BackendName)
	if err != nil {
		return 0, err
	}
	out, ok := backend.(recording.WriterBackend)
	if !ok {
		return 0, fmt.Errorf("svg: backend %T cannot write to a stream", backend)
	}
	if err := d.Recording().Playback(out); err != nil {
		return 0, fmt.Errorf("svg playback: %w", err)
	}
	return out.WriteTo(w)
}
