package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw replays a DrawList onto an ebiten image. This is the only place
// the core touches the display library; the terminal front end replays
// the same commands through its own rasterizer.
func Draw(dst *ebiten.Image, list *DrawList) {
	bounds := dst.Bounds()
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())

	for _, cmd := range list.Commands() {
		clr := scaleAlpha(cmd.Color, cmd.Opacity)
		switch cmd.Op {
		case OpFillCircle:
			vector.DrawFilledCircle(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.R), clr, true)
		case OpStrokeCircle:
			vector.StrokeCircle(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.R), float32(cmd.Width), clr, true)
		case OpFillRect:
			vector.DrawFilledRect(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.W), float32(cmd.H), clr, true)
		case OpLine:
			vector.StrokeLine(dst, float32(cmd.X), float32(cmd.Y), float32(cmd.X2), float32(cmd.Y2), float32(cmd.Width), clr, true)
		case OpPolyline:
			pts := list.Points(cmd)
			for i := 0; i < len(pts)-1; i++ {
				vector.StrokeLine(dst,
					float32(pts[i].X), float32(pts[i].Y),
					float32(pts[i+1].X), float32(pts[i+1].Y),
					float32(cmd.Width), clr, true)
			}
		case OpFlash:
			vector.DrawFilledRect(dst, 0, 0, w, h, clr, false)
		}
	}
}

// scaleAlpha folds a command opacity into an alpha-premultiplied RGBA.
func scaleAlpha(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
