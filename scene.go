package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"

	"ballsim/physics"
)

// sceneConfig is the on-disk description of a world.
type sceneConfig struct {
	Name      string            `json:"name"`
	Elastic   bool              `json:"elastic,omitempty"`
	Constants physics.Constants `json:"constants"`
	Bodies    []bodyConfig      `json:"bodies"`
}

type bodyConfig struct {
	Pos    [2]float64 `json:"pos"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"` // "#rrggbb" or an SVG colour name
}

var errEmptyScene = errors.New("scene has no bodies")

// defaultScene is three balls, the first one selected.
func defaultScene() sceneConfig {
	return sceneConfig{
		Name:      "default",
		Constants: physics.DefaultConstants(),
		Bodies: []bodyConfig{
			{Pos: [2]float64{100, 100}, Radius: 20, Color: "red"},
			{Pos: [2]float64{150, 150}, Radius: 40, Color: "blue"},
			{Pos: [2]float64{200, 200}, Radius: 30, Color: "aqua"},
		},
	}
}

// loadScene reads a JSON scene. Constants missing from the file keep their
// default values.
func loadScene(path string) (sceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sceneConfig{}, fmt.Errorf("read scene: %w", err)
	}
	s := sceneConfig{Constants: physics.DefaultConstants()}
	if err := json.Unmarshal(data, &s); err != nil {
		return sceneConfig{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return s, nil
}

// build creates the world, spawning bodies in file order.
func (s sceneConfig) build(bounds physics.Vec2) (*physics.World, error) {
	if len(s.Bodies) == 0 {
		return nil, errEmptyScene
	}
	if err := s.Constants.Validate(); err != nil {
		return nil, err
	}
	w := physics.NewWorld(s.Constants, bounds)
	w.Elastic = s.Elastic
	for i, b := range s.Bodies {
		pos := physics.Vec2{X: b.Pos[0], Y: b.Pos[1]}
		if _, err := w.Spawn(pos, b.Radius, parseColor(b.Color)); err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
	}
	return w, nil
}

var fallbackColor = color.RGBA{200, 200, 255, 255}

func parseColor(s string) color.RGBA {
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 && len(s) == 7 {
			return color.RGBA{r, g, b, 255}
		}
		return fallbackColor
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c
	}
	return fallbackColor
}

