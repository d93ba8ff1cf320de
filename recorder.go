package geonym

import "github.com/gogpu/gg"

// OpKind identifies a recorded drawing primitive.
type OpKind int

// Recorded primitives.
const (
	OpClear OpKind = iota
	OpCircle
	OpLine
)

// String returns the primitive name.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call.
// For circles, At is the center; for lines, At and To are the endpoints.
type Op struct {
	Kind   OpKind
	At     Coord
	To     Coord
	Radius float64
	Fill   gg.RGBA
	Border gg.RGBA
}

// Recorder is a Surface that remembers every call instead of drawing.
// It is useful for inspecting what a space draws without rasterizing.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

// Clear records a clear. Earlier operations are kept.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

// DrawCircle records a circle.
func (r *Recorder) DrawCircle(center Coord, radius float64, fill, border gg.RGBA) error {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, At: center, Radius: radius, Fill: fill, Border: border})
	return nil
}

// DrawLine records a line.
func (r *Recorder) DrawLine(from, to Coord, col gg.RGBA) error {
	r.Ops = append(r.Ops, Op{Kind: OpLine, At: from, To: to, Fill: col})
	return nil
}

// Count returns how many operations of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Circles returns the recorded circles in drawing order.
func (r *Recorder) Circles() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpCircle {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
