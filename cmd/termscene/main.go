// Command termscene renders the atmospheric scene in a terminal. It
// replays the same draw lists the ebiten front end consumes, rasterized
// onto a character grid and colored through termenv, which proves the
// animation core is display-backend agnostic.
//
// Usage:
//
//	termscene -scene rain -intensity heavy -night
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/gonewx/skyscene/pkg/compositor"
	"github.com/gonewx/skyscene/pkg/config"
	"github.com/gonewx/skyscene/pkg/render"
	"github.com/gonewx/skyscene/pkg/types"
)

// One terminal cell covers cellW x cellH pseudo-pixels, so the layer
// parameter tables keep their pixel tuning at terminal resolution.
const (
	cellW = 8.0
	cellH = 16.0
	fps   = 20
)

type cell struct {
	ch    rune
	color termenv.Color
}

// grid is the reusable character frame buffer.
type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	return &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = cell{}
	}
}

func (g *grid) set(col, row int, ch rune, clr termenv.Color) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = cell{ch: ch, color: clr}
}

// rasterize replays a draw list onto the grid. Opacity below a floor is
// dropped; there is no blending in a character cell, only overwrite.
func rasterize(g *grid, list *render.DrawList, profile termenv.Profile) {
	for _, cmd := range list.Commands() {
		if cmd.Opacity < 0.08 {
			continue
		}
		clr := profile.Color(hexColor(cmd))
		switch cmd.Op {
		case render.OpFillCircle:
			plotCircle(g, cmd.X, cmd.Y, cmd.R, circleRune(cmd.R), clr, true)
		case render.OpStrokeCircle:
			plotCircle(g, cmd.X, cmd.Y, cmd.R, '·', clr, false)
		case render.OpFillRect:
			plotRect(g, cmd, clr)
		case render.OpLine:
			plotLine(g, cmd.X, cmd.Y, cmd.X2, cmd.Y2, clr)
		case render.OpPolyline:
			pts := list.Points(cmd)
			for i := 0; i < len(pts)-1; i++ {
				plotLine(g, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, clr)
			}
		case render.OpFlash:
			// Sparse overlay in place of a real brightness flash.
			for i := 0; i < len(g.cells); i += 3 {
				if g.cells[i].ch == 0 {
					g.cells[i] = cell{ch: '░', color: clr}
				}
			}
		}
	}
}

func circleRune(r float64) rune {
	switch {
	case r < 3:
		return '·'
	case r < 10:
		return '•'
	default:
		return '▒'
	}
}

func plotCircle(g *grid, x, y, r float64, ch rune, clr termenv.Color, fill bool) {
	cx, cy := x/cellW, y/cellH
	rx, ry := r/cellW, r/cellH
	if rx < 0.5 && ry < 0.5 {
		g.set(int(cx), int(cy), ch, clr)
		return
	}
	if !fill {
		for a := 0.0; a < 2*math.Pi; a += 0.35 {
			g.set(int(cx+math.Cos(a)*rx), int(cy+math.Sin(a)*ry), ch, clr)
		}
		return
	}
	for row := int(cy - ry); row <= int(cy+ry); row++ {
		for col := int(cx - rx); col <= int(cx+rx); col++ {
			dx := (float64(col) - cx) / math.Max(rx, 0.01)
			dy := (float64(row) - cy) / math.Max(ry, 0.01)
			if dx*dx+dy*dy <= 1 {
				g.set(col, row, ch, clr)
			}
		}
	}
}

func plotRect(g *grid, cmd render.Command, clr termenv.Color) {
	for row := int(cmd.Y / cellH); row < int((cmd.Y+cmd.H)/cellH); row++ {
		for col := int(cmd.X / cellW); col < int((cmd.X+cmd.W)/cellW); col++ {
			g.set(col, row, '▒', clr)
		}
	}
}

func plotLine(g *grid, x1, y1, x2, y2 float64, clr termenv.Color) {
	c1, r1 := x1/cellW, y1/cellH
	c2, r2 := x2/cellW, y2/cellH
	dx, dy := c2-c1, r2-r1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	ch := lineRune(dx, dy)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		g.set(int(c1+dx*f), int(r1+dy*f), ch, clr)
	}
}

func lineRune(dx, dy float64) rune {
	switch {
	case math.Abs(dy) > 2*math.Abs(dx):
		return '|'
	case math.Abs(dx) > 2*math.Abs(dy):
		return '─'
	case dx*dy > 0:
		return '\\'
	default:
		return '/'
	}
}

func hexColor(cmd render.Command) string {
	return fmt.Sprintf("#%02x%02x%02x", cmd.Color.R, cmd.Color.G, cmd.Color.B)
}

func main() {
	var (
		sceneName  string
		tierName   string
		night      bool
		cols, rows int
	)
	flag.StringVar(&sceneName, "scene", "rain", "classification (clear, partly-cloudy, overcast, rain, snow, thunderstorm, fog)")
	flag.StringVar(&tierName, "intensity", "moderate", "intensity tier (light, moderate, heavy)")
	flag.BoolVar(&night, "night", false, "render the night variant")
	flag.IntVar(&cols, "cols", 100, "grid columns")
	flag.IntVar(&rows, "rows", 30, "grid rows")
	flag.Parse()

	class, err := types.ParseClassification(sceneName)
	if err != nil {
		log.Fatalf("[TermScene] %v", err)
	}
	intensity, err := types.ParseIntensity(tierName)
	if err != nil {
		log.Fatalf("[TermScene] %v", err)
	}

	selector := compositor.NewSceneSelector(config.MustLoad(), time.Now().UnixNano())
	selector.SetScene(class, !night, intensity, float64(cols)*cellW, float64(rows)*cellH)

	out := termenv.NewOutput(os.Stdout)
	out.AltScreen()
	out.HideCursor()
	restore := func() {
		out.ExitAltScreen()
		out.ShowCursor()
	}
	defer restore()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	g := newGrid(cols, rows)
	var sb strings.Builder
	start := time.Now()
	ticker := time.NewTicker(time.Second / fps)
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			restore()
			return
		case <-ticker.C:
			t := time.Since(start).Seconds()
			g.clear()
			rasterize(g, selector.RenderFrame(t), out.Profile)

			sb.Reset()
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					c := g.cells[row*g.cols+col]
					if c.ch == 0 {
						sb.WriteByte(' ')
						continue
					}
					sb.WriteString(out.String(string(c.ch)).Foreground(c.color).String())
				}
				sb.WriteByte('\n')
			}
			out.MoveCursor(1, 1)
			fmt.Fprint(out, sb.String())
		}
	}
}
