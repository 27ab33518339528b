package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var arrowKeys = []ebiten.Key{
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
}

// digitKeys[i] selects body i-1; Digit0 selects nothing.
var digitKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// pollKeys turns this frame's key transitions into discrete events.
func (g *Game) pollKeys() {
	for _, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.handleKey(k, true)
		}
		if inpututil.IsKeyJustReleased(k) {
			g.handleKey(k, false)
		}
	}
	for _, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.handleKey(k, true)
		}
	}
}

// handleKey applies one key event: arrows set or clear a direction, digits
// pick the active body.
func (g *Game) handleKey(k ebiten.Key, down bool) {
	switch k {
	case ebiten.KeyArrowLeft:
		g.controls.Left = down
	case ebiten.KeyArrowRight:
		g.controls.Right = down
	case ebiten.KeyArrowUp:
		g.controls.Up = down
	case ebiten.KeyArrowDown:
		g.controls.Down = down
	default:
		if !down {
			return
		}
		for d, dk := range digitKeys {
			if k != dk {
				continue
			}
			if g.world.Select(d - 1) {
				log.Printf("selected body %d", d-1)
			}
			return
		}
	}
}
