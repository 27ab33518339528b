package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ballsim/physics"
)

var (
	sceneFlag   = flag.String("scene", "", "path to a JSON scene file (built-in scene if empty)")
	widthFlag   = flag.Int("width", 640, "window width in pixels")
	heightFlag  = flag.Int("height", 480, "window height in pixels")
	elasticFlag = flag.Bool("elastic", false, "exchange velocity on contact instead of only separating")
	muteFlag    = flag.Bool("mute", false, "disable contact sounds")
	debugFlag   = flag.Bool("debug", false, "write a debug log to logs/")
)

// Game holds the entire app state.
type Game struct {
	W, H int

	name     string
	world    *physics.World
	controls physics.Controls

	// pairs that were overlapping at the end of the previous tick
	touching map[physics.Contact]bool

	sound *contactSound
}

func NewGame(s sceneConfig, w, h int, sound *contactSound) (*Game, error) {
	world, err := s.build(physics.Vec2{X: float64(w), Y: float64(h)})
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	log.Printf("scene %q: %d bodies, elastic=%v", s.Name, world.Len(), world.Elastic)
	return &Game{
		W: w, H: h,
		name:     s.Name,
		world:    world,
		touching: make(map[physics.Contact]bool),
		sound:    sound,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollKeys()
	g.tick()
	return nil
}

// tick advances the world one step and knocks for every pair that started
// touching this step.
func (g *Game) tick() []physics.Contact {
	contacts := g.world.Step(g.controls)

	now := make(map[physics.Contact]bool, len(contacts))
	var started []physics.Contact
	for _, c := range contacts {
		now[c] = true
		if g.touching[c] {
			continue
		}
		started = append(started, c)
		a, _ := g.world.Body(c.I)
		b, _ := g.world.Body(c.J)
		log.Printf("contact %d-%d at %.1f,%.1f", c.I, c.J, a.Pos.X, a.Pos.Y)
		g.sound.play(knockFor(a.Radius(), b.Radius()))
	}
	g.touching = now
	return started
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i, b := range g.world.Bodies() {
		drawBody(screen, b, i == g.world.Active())
	}

	msg := fmt.Sprintf("%s  body %d/%d\n", g.name, g.world.Active()+1, g.world.Len())
	msg += "Arrows: push  1-9: select  ESC: quit"
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.W || outsideHeight != g.H {
		g.W, g.H = outsideWidth, outsideHeight
		g.world.SetBounds(physics.Vec2{X: float64(g.W), Y: float64(g.H)})
	}
	return g.W, g.H
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	scene := defaultScene()
	if *sceneFlag != "" {
		s, err := loadScene(*sceneFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
			os.Exit(1)
		}
		scene = s
	}
	scene.Elastic = scene.Elastic || *elasticFlag

	var sound *contactSound
	if !*muteFlag {
		sound = newContactSound()
	}

	game, err := NewGame(scene, *widthFlag, *heightFlag, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(game.W, game.H)
	ebiten.SetWindowTitle("ballsim")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
