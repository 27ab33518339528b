package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"ballsim/physics"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(defaultScene(), 640, 480, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestHandleKeyArrows(t *testing.T) {
	g := newTestGame(t)

	g.handleKey(ebiten.KeyArrowLeft, true)
	g.handleKey(ebiten.KeyArrowDown, true)
	want := physics.Controls{Left: true, Down: true}
	if g.controls != want {
		t.Fatalf("controls = %+v, want %+v", g.controls, want)
	}

	g.handleKey(ebiten.KeyArrowLeft, false)
	want.Left = false
	if g.controls != want {
		t.Errorf("controls after release = %+v, want %+v", g.controls, want)
	}
}

func TestHandleKeySelection(t *testing.T) {
	g := newTestGame(t)

	tests := []struct {
		key  ebiten.Key
		want int
	}{
		{ebiten.KeyDigit2, 1},
		{ebiten.KeyDigit9, 1}, // only three bodies
		{ebiten.KeyDigit0, 1},
		{ebiten.KeyDigit3, 2},
		{ebiten.KeyDigit1, 0},
	}
	for _, tt := range tests {
		g.handleKey(tt.key, true)
		if got := g.world.Active(); got != tt.want {
			t.Errorf("after %v Active() = %d, want %d", tt.key, got, tt.want)
		}
	}

	// releasing a digit does nothing
	g.handleKey(ebiten.KeyDigit3, false)
	if got := g.world.Active(); got != 0 {
		t.Errorf("after digit release Active() = %d, want 0", got)
	}
}

func TestTickReportsContactOnsetOnce(t *testing.T) {
	g := newTestGame(t)

	// the built-in scene starts without overlaps
	if started := g.tick(); len(started) != 0 {
		t.Fatalf("first tick started contacts %v", started)
	}

	red, _ := g.world.Body(0)
	blue, _ := g.world.Body(1)
	aqua, _ := g.world.Body(2)
	aqua.Pos = physics.Vec2{X: 500, Y: 400}
	red.Pos = blue.Pos.Sub(physics.Vec2{X: 50})

	started := g.tick()
	if len(started) != 1 || started[0] != (physics.Contact{I: 0, J: 1}) {
		t.Fatalf("started = %v, want [{0 1}]", started)
	}

	// resolved to exactly touching, which still counts as overlapping
	if again := g.tick(); len(again) != 0 {
		t.Errorf("contact reported twice: %v", again)
	}
}

func TestTickDrivesActiveBody(t *testing.T) {
	g := newTestGame(t)
	g.handleKey(ebiten.KeyDigit3, true)
	g.handleKey(ebiten.KeyArrowRight, true)

	aqua, _ := g.world.Body(2)
	x0 := aqua.Pos.X
	g.tick()
	if aqua.Pos.X <= x0 {
		t.Errorf("active body did not move right: %v -> %v", x0, aqua.Pos.X)
	}
}

func TestLayoutResizesWorld(t *testing.T) {
	g := newTestGame(t)
	if w, h := g.Layout(320, 200); w != 320 || h != 200 {
		t.Fatalf("Layout = %d,%d, want 320,200", w, h)
	}
	if g.world.Bounds != (physics.Vec2{X: 320, Y: 200}) {
		t.Errorf("Bounds = %v, want {320 200}", g.world.Bounds)
	}
}

func TestVectorLabel(t *testing.T) {
	if got := vectorLabel(physics.Vec2{X: 3, Y: 4}); got != "5.00" {
		t.Errorf("vectorLabel = %q, want %q", got, "5.00")
	}
}
