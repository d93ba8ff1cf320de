package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// BackendName is the recording backend name used for SVG export.
const BackendName = "svg"

func init() {
	// A dedicated SVG backend imported elsewhere in the binary takes precedence.
	if !recording.IsRegistered(BackendName) {
		recording.Register(BackendName, func() recording.Backend {
			return NewBackend()
		})
	}
}

// Backend plays gg recordings back as SVG 1.1 elements.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
//
// Path, rectangle and text coordinates arrive already transformed by the
// recorder, so SetTransform only tracks state. Text has no font face during
// playback and is written at FontSize, which defaults to one thirty-second of
// the document height.
type Backend struct {
	width, height int
	body          bytes.Buffer
	done          bool

	// FontSize overrides the text size when positive.
	FontSize float64

	clipID int
	state  backendState
	stack  []backendState
}

type backendState struct {
	transform recording.Matrix
	// groups counts <g> elements opened by clips in this state.
	groups int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend. Begin must be called before drawing.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin resets the backend for a width×height document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid document size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.done = false
	b.clipID = 0
	b.state = backendState{transform: recording.Identity()}
	b.stack = b.stack[:0]
	return nil
}

// End closes every open group.
func (b *Backend) End() error {
	for {
		b.closeGroups()
		if len(b.stack) == 0 {
			break
		}
		b.pop()
	}
	b.done = true
	return nil
}

// Save pushes the current state.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.state)
	b.state.groups = 0
}

// Restore closes the clips opened since the matching Save and pops the state.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.closeGroups()
	b.pop()
}

func (b *Backend) pop() {
	b.state = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Backend) closeGroups() {
	for ; b.state.groups > 0; b.state.groups-- {
		b.body.WriteString("</g>\n")
	}
}

// SetTransform records the current transform.
func (b *Backend) SetTransform(m recording.Matrix) {
	b.state.transform = m
}

// SetClip opens a group clipped to path.
func (b *Backend) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	b.clipID++
	id := "clip" + strconv.Itoa(b.clipID)
	fmt.Fprintf(&b.body, `<clipPath id="%s"><path d="%s"%s/></clipPath>`+"\n",
		id, pathData(path), clipRule(rule))
	fmt.Fprintf(&b.body, `<g clip-path="url(#%s)">`+"\n", id)
	b.state.groups++
}

// ClearClip closes the clips of the current state.
func (b *Backend) ClearClip() {
	b.closeGroups()
}

// FillPath appends a filled path element.
func (b *Backend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil || path.NumVerbs() == 0 {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s"%s%s/>`+"\n", pathData(path), paint("fill", brushColor(brush)), fillRule(rule))
}

// StrokePath appends a stroked path element.
func (b *Backend) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil || path.NumVerbs() == 0 {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s" fill="none"%s%s/>`+"\n",
		pathData(path), paint("stroke", brushColor(brush)), strokeAttrs(stroke))
}

// FillRect appends a rect element.
func (b *Backend) FillRect(rect recording.Rect, brush recording.Brush) {
	fmt.Fprintf(&b.body, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(rect.MinX), num(rect.MinY), num(rect.Width()), num(rect.Height()), paint("fill", brushColor(brush)))
}

// DrawImage embeds img as a PNG data URI. The source rectangle is ignored.
func (b *Backend) DrawImage(img image.Image, _, dst recording.Rect, opts recording.ImageOptions) {
	if img == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return
	}
	opacity := ""
	if opts.Alpha > 0 && opts.Alpha < 1 {
		opacity = fmt.Sprintf(` opacity="%s"`, num(opts.Alpha))
	}
	fmt.Fprintf(&b.body, `<image x="%s" y="%s" width="%s" height="%s"%s href="data:image/png;base64,%s"/>`+"\n",
		num(dst.MinX), num(dst.MinY), num(dst.Width()), num(dst.Height()), opacity,
		base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// DrawText appends a text element with its baseline at (x, y).
func (b *Backend) DrawText(s string, x, y float64, _ text.Face, brush recording.Brush) {
	if s == "" {
		return
	}
	size := b.FontSize
	if size <= 0 {
		size = float64(b.height) / 32
	}
	fmt.Fprintf(&b.body, `<text x="%s" y="%s" font-family="Go, sans-serif" font-size="%s"%s>`,
		num(x), num(y), num(size), paint("fill", brushColor(brush)))
	_ = xml.EscapeText(&b.body, []byte(s))
	b.body.WriteString("</text>\n")
}

// WriteTo writes the complete document to w. It must follow End.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, fmt.Errorf("svg: WriteTo before End")
	}
	var buf bytes.Buffer
	width, height := strconv.Itoa(b.width), strconv.Itoa(b.height)
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		width, height, width, height)
	buf.Write(b.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.WriteTo(w)
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// pathData converts a path into SVG path data.
func pathData(p *gg.Path) string {
	var sb strings.Builder
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch verb {
		case gg.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", num(c[0]), num(c[1]))
		case gg.LineTo:
			fmt.Fprintf(&sb, "L%s %s", num(c[0]), num(c[1]))
		case gg.QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s", num(c[0]), num(c[1]), num(c[2]), num(c[3]))
		case gg.CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s", num(c[0]), num(c[1]), num(c[2]), num(c[3]), num(c[4]), num(c[5]))
		case gg.Close:
			sb.WriteByte('Z')
		}
	})
	return sb.String()
}

// brushColor flattens a brush to one color. Gradients use their first stop.
func brushColor(br recording.Brush) gg.RGBA {
	switch br := br.(type) {
	case recording.SolidBrush:
		return br.Color
	case *recording.SolidBrush:
		return br.Color
	case *recording.LinearGradientBrush:
		if len(br.Stops) > 0 {
			return br.Stops[0].Color
		}
	}
	return gg.Black
}

func fillRule(r recording.FillRule) string {
	if r == recording.FillRuleEvenOdd {
		return ` fill-rule="evenodd"`
	}
	return ""
}

func clipRule(r recording.FillRule) string {
	if r == recording.FillRuleEvenOdd {
		return ` clip-rule="evenodd"`
	}
	return ""
}

func strokeAttrs(s recording.Stroke) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ` stroke-width="%s"`, num(s.Width))
	switch s.Cap {
	case recording.LineCapRound:
		sb.WriteString(` stroke-linecap="round"`)
	case recording.LineCapSquare:
		sb.WriteString(` stroke-linecap="square"`)
	}
	switch s.Join {
	case recording.LineJoinRound:
		sb.WriteString(` stroke-linejoin="round"`)
	case recording.LineJoinBevel:
		sb.WriteString(` stroke-linejoin="bevel"`)
	default:
		if s.MiterLimit > 0 && s.MiterLimit != 4 {
			fmt.Fprintf(&sb, ` stroke-miterlimit="%s"`, num(s.MiterLimit))
		}
	}
	if len(s.DashPattern) > 0 {
		parts := make([]string, len(s.DashPattern))
		for i, d := range s.DashPattern {
			parts[i] = num(d)
		}
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
		if s.DashOffset != 0 {
			fmt.Fprintf(&sb, ` stroke-dashoffset="%s"`, num(s.DashOffset))
		}
	}
	return sb.String()
}

// paint formats a color attribute, adding an opacity attribute for
// translucent colors.
func paint(attr string, c gg.RGBA) string {
	s := fmt.Sprintf(` %s="%s"`, attr, hex(c))
	if c.A < 1 {
		s += fmt.Sprintf(` %s-opacity="%s"`, attr, num(c.A))
	}
	return s
}

func hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// num formats a number with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
