package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"ballsim/physics"
)

const (
	accelScale = 20 // pixels per unit of force/mass
	velScale   = 10 // pixels per unit of velocity
)

var (
	backgroundColor = color.RGBA{0x0D, 0x0D, 0x10, 0xFF}
	outlineColor    = color.Black
	activeColor     = color.RGBA{0xFF, 0xFF, 0x66, 0xFF}
	accelColor      = color.RGBA{0x00, 0xC0, 0x00, 0xFF}
	velColor        = color.White
	labelColor      = color.White
)

func drawBody(dst *ebiten.Image, b *physics.Body, active bool) {
	x, y, r := float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius())
	vector.DrawFilledCircle(dst, x, y, r, b.Color, true)
	vector.StrokeCircle(dst, x, y, r, 1, outlineColor, true)
	if active {
		vector.StrokeCircle(dst, x, y, r+3, 1.5, activeColor, true)
	}

	drawIndicator(dst, b.Pos, b.Acceleration(), accelScale, accelColor)
	drawIndicator(dst, b.Pos, b.Vel, velScale, velColor)
}

// drawIndicator draws v from start, scaled by n, labelled with |v|.
func drawIndicator(dst *ebiten.Image, start, v physics.Vec2, n float64, col color.Color) {
	end := start.Add(v.Mul(n))
	vector.StrokeLine(dst, float32(start.X), float32(start.Y), float32(end.X), float32(end.Y), 1.5, col, true)
	text.Draw(dst, vectorLabel(v), basicfont.Face7x13, int(end.X)+5, int(end.Y)-5, labelColor)
}

func vectorLabel(v physics.Vec2) string {
	return fmt.Sprintf("%.2f", v.Len())
}
