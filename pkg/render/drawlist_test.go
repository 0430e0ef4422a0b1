package render

import (
	"image/color"
	"testing"
)

var testColor = color.RGBA{R: 0xb7, G: 0xcd, B: 0xe4, A: 0xff}

func TestDrawListAppend(t *testing.T) {
	var l DrawList
	l.FillCircle(10, 20, 5, testColor, 0.8)
	l.StrokeCircle(10, 20, 7, 1.5, testColor, 0.4)
	l.FillRect(0, 0, 4, 4, testColor, 1)
	l.Line(0, 0, 10, 10, 2, testColor, 0.5)
	l.Flash(testColor, 0.2)
	if l.Len() != 5 {
		t.Fatalf("Expected 5 commands, got %d", l.Len())
	}
	want := []Op{OpFillCircle, OpStrokeCircle, OpFillRect, OpLine, OpFlash}
	for i, c := range l.Commands() {
		if c.Op != want[i] {
			t.Errorf("command %d: op %v, want %v", i, c.Op, want[i])
		}
	}
}

// TestDrawListDropsInvisible verifies degenerate primitives never reach
// the backend.
func TestDrawListDropsInvisible(t *testing.T) {
	var l DrawList
	l.FillCircle(1, 1, 0, testColor, 1)
	l.FillCircle(1, 1, 5, testColor, 0)
	l.StrokeCircle(1, 1, -2, 1, testColor, 1)
	l.FillRect(0, 0, 0, 5, testColor, 1)
	l.Line(0, 0, 1, 1, 1, testColor, -0.1)
	l.Flash(testColor, 0)
	if l.Len() != 0 {
		t.Fatalf("Expected all commands dropped, got %d", l.Len())
	}
}

func TestDrawListPolyline(t *testing.T) {
	var l DrawList
	mark := l.MarkPoints()
	l.AddPoint(0, 0)
	l.AddPoint(5, 8)
	l.AddPoint(10, 3)
	l.Polyline(mark, 2, testColor, 0.7)

	if l.Len() != 1 {
		t.Fatalf("Expected 1 command, got %d", l.Len())
	}
	pts := l.Points(l.Commands()[0])
	if len(pts) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(pts))
	}
	if pts[1] != (Point{X: 5, Y: 8}) {
		t.Errorf("point 1 = %+v", pts[1])
	}
}

// TestDrawListPolylineShortRun verifies a run of fewer than two points
// is dropped and its vertices reclaimed.
func TestDrawListPolylineShortRun(t *testing.T) {
	var l DrawList
	mark := l.MarkPoints()
	l.AddPoint(3, 4)
	l.Polyline(mark, 1, testColor, 1)
	if l.Len() != 0 {
		t.Error("single-point run should emit no command")
	}
	if l.MarkPoints() != 0 {
		t.Error("dropped run should release its vertices")
	}
}

func TestDrawListTwoPolylines(t *testing.T) {
	var l DrawList
	m1 := l.MarkPoints()
	l.AddPoint(0, 0)
	l.AddPoint(1, 1)
	l.Polyline(m1, 1, testColor, 1)

	m2 := l.MarkPoints()
	l.AddPoint(10, 10)
	l.AddPoint(11, 12)
	l.AddPoint(12, 14)
	l.Polyline(m2, 1, testColor, 1)

	cmds := l.Commands()
	if len(cmds) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(cmds))
	}
	if got := l.Points(cmds[0]); len(got) != 2 {
		t.Errorf("first run has %d points", len(got))
	}
	if got := l.Points(cmds[1]); len(got) != 3 || got[0] != (Point{X: 10, Y: 10}) {
		t.Errorf("second run = %+v", got)
	}
}

// TestDrawListResetKeepsCapacity verifies refilling a reset list of the
// same shape does not grow the backing arrays.
func TestDrawListResetKeepsCapacity(t *testing.T) {
	var l DrawList
	fill := func() {
		for i := 0; i < 64; i++ {
			l.FillCircle(float64(i), float64(i), 3, testColor, 0.5)
		}
		mark := l.MarkPoints()
		for i := 0; i < 16; i++ {
			l.AddPoint(float64(i), 0)
		}
		l.Polyline(mark, 1, testColor, 1)
	}

	fill()
	l.Reset()
	if l.Len() != 0 {
		t.Fatal("Reset left commands behind")
	}
	capCmds, capPts := cap(l.cmds), cap(l.pts)
	fill()
	if cap(l.cmds) != capCmds || cap(l.pts) != capPts {
		t.Errorf("refill grew buffers: cmds %d->%d, pts %d->%d",
			capCmds, cap(l.cmds), capPts, cap(l.pts))
	}
}
