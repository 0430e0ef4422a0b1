// Package render turns element collections into draw commands, one
// renderer per layer family. Renderers emit into a DrawList owned by
// the compositor and reused every frame; in the steady state a frame
// performs no allocation.
package render

import "image/color"

// Op identifies a draw command kind.
type Op uint8

const (
	// OpFillCircle fills a circle of radius R at (X, Y).
	OpFillCircle Op = iota
	// OpStrokeCircle strokes a circle outline of radius R at (X, Y).
	OpStrokeCircle
	// OpFillRect fills the rectangle (X, Y, W, H).
	OpFillRect
	// OpLine strokes a segment from (X, Y) to (X2, Y2).
	OpLine
	// OpPolyline strokes the point run [PtOff, PtOff+PtLen) of the list.
	OpPolyline
	// OpFlash fills the whole surface; used by the discharge layer.
	OpFlash
)

// Point is one polyline vertex.
type Point struct {
	X, Y float64
}

// Command is a single draw primitive. Which fields are meaningful
// depends on Op; unused fields stay zero.
type Command struct {
	Op Op

	X, Y   float64
	X2, Y2 float64
	R      float64
	W, H   float64
	Width  float64

	PtOff, PtLen int

	Color   color.RGBA
	Opacity float64
}

// DrawList is a reusable buffer of draw commands plus a point arena for
// polylines. Reset keeps the backing arrays so refilling a list of
// similar size allocates nothing.
type DrawList struct {
	cmds []Command
	pts  []Point
}

// Reset empties the list for the next frame, keeping capacity.
func (l *DrawList) Reset() {
	l.cmds = l.cmds[:0]
	l.pts = l.pts[:0]
}

// Len returns the number of buffered commands.
func (l *DrawList) Len() int {
	return len(l.cmds)
}

// Commands returns the buffered commands. The slice is valid until the
// next Reset.
func (l *DrawList) Commands() []Command {
	return l.cmds
}

// Points resolves a polyline command's vertex run.
func (l *DrawList) Points(c Command) []Point {
	return l.pts[c.PtOff : c.PtOff+c.PtLen]
}

// FillCircle appends a filled circle.
func (l *DrawList) FillCircle(x, y, r float64, clr color.RGBA, opacity float64) {
	if r <= 0 || opacity <= 0 {
		return
	}
	l.cmds = append(l.cmds, Command{Op: OpFillCircle, X: x, Y: y, R: r, Color: clr, Opacity: opacity})
}

// StrokeCircle appends a circle outline.
func (l *DrawList) StrokeCircle(x, y, r, width float64, clr color.RGBA, opacity float64) {
	if r <= 0 || opacity <= 0 {
		return
	}
	l.cmds = append(l.cmds, Command{Op: OpStrokeCircle, X: x, Y: y, R: r, Width: width, Color: clr, Opacity: opacity})
}

// FillRect appends a filled rectangle.
func (l *DrawList) FillRect(x, y, w, h float64, clr color.RGBA, opacity float64) {
	if w <= 0 || h <= 0 || opacity <= 0 {
		return
	}
	l.cmds = append(l.cmds, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: clr, Opacity: opacity})
}

// Line appends a stroked segment.
func (l *DrawList) Line(x1, y1, x2, y2, width float64, clr color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	l.cmds = append(l.cmds, Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width, Color: clr, Opacity: opacity})
}

// MarkPoints opens a polyline: the caller appends vertices with AddPoint
// and seals them with Polyline.
func (l *DrawList) MarkPoints() int {
	return len(l.pts)
}

// AddPoint appends a vertex to the open polyline run.
func (l *DrawList) AddPoint(x, y float64) {
	l.pts = append(l.pts, Point{X: x, Y: y})
}

// Polyline seals the vertex run opened at mark into a stroke command.
// Runs of fewer than two points are dropped.
func (l *DrawList) Polyline(mark int, width float64, clr color.RGBA, opacity float64) {
	n := len(l.pts) - mark
	if n < 2 || opacity <= 0 {
		l.pts = l.pts[:mark]
		return
	}
	l.cmds = append(l.cmds, Command{Op: OpPolyline, PtOff: mark, PtLen: n, Width: width, Color: clr, Opacity: opacity})
}

// Flash appends a full-surface fill.
func (l *DrawList) Flash(clr color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	l.cmds = append(l.cmds, Command{Op: OpFlash, Color: clr, Opacity: opacity})
}
