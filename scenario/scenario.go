// Package scenario builds the initial state of a bounce space: a grid of
// randomized balls inside a rectangle of walls, plus any explicitly listed
// bodies and walls. Configurations are plain structs that can be loaded from
// YAML.
package scenario

import (
	"math"
	"math/rand"
	"os"

	"github.com/jakecoffman/bounce"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes an initial world.
type Config struct {
	// Width and Height of the canvas; the bounding walls sit on its edges.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Box adds the four bounding walls.
	Box bool `yaml:"box"`

	// Grid of random balls: Cols x Rows centers starting at Origin, Spacing apart.
	Cols    int           `yaml:"cols"`
	Rows    int           `yaml:"rows"`
	Origin  bounce.Vector `yaml:"origin"`
	Spacing float64       `yaml:"spacing"`

	// Radii are drawn from [MinRadius, MaxRadius) in whole units; mass is radius squared.
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	// Each velocity component is a whole number in [-MaxSpeed, MaxSpeed].
	MaxSpeed float64 `yaml:"max_speed"`
	Seed     int64   `yaml:"seed"`

	Bodies []BodyConfig `yaml:"bodies,omitempty"`
	Walls  []WallConfig `yaml:"walls,omitempty"`

	RebaseInterval float64 `yaml:"rebase_interval"`
	RebaseMargin   float64 `yaml:"rebase_margin"`
}

// BodyConfig places one body explicitly. A zero Mass means radius squared.
type BodyConfig struct {
	Radius   float64       `yaml:"radius"`
	Mass     float64       `yaml:"mass,omitempty"`
	Position bounce.Vector `yaml:"position"`
	Velocity bounce.Vector `yaml:"velocity"`
}

type WallConfig struct {
	Anchor bounce.Vector `yaml:"anchor"`
	Normal bounce.Vector `yaml:"normal"`
}

// Default is fifty balls on a 10x5 grid in a 1280x800 box.
func Default() Config {
	return Config{
		Width:          1280,
		Height:         800,
		Box:            true,
		Cols:           10,
		Rows:           5,
		Origin:         bounce.Vector{X: 128, Y: 128},
		Spacing:        96,
		MinRadius:      16,
		MaxRadius:      48,
		MaxSpeed:       256,
		Seed:           1,
		RebaseInterval: bounce.DefaultRebaseInterval,
		RebaseMargin:   bounce.DefaultRebaseMargin,
	}
}

// Parse reads YAML on top of Default, so missing keys keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse scenario")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads a scenario file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrapf(err, "read scenario %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, errors.Wrapf(err, "load scenario %s", path)
	}
	return cfg, nil
}

// Validate rejects configurations that would start with bodies overlapping
// each other or the bounding box.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("canvas %vx%v must be positive", cfg.Width, cfg.Height)
	}
	if cfg.Cols < 0 || cfg.Rows < 0 {
		return errors.Errorf("grid %dx%d must not be negative", cfg.Cols, cfg.Rows)
	}
	if cfg.MaxSpeed < 0 {
		return errors.Errorf("max speed %v must not be negative", cfg.MaxSpeed)
	}
	if cfg.RebaseInterval <= 0 || cfg.RebaseMargin < 0 {
		return errors.Errorf("rebase interval %v / margin %v out of range", cfg.RebaseInterval, cfg.RebaseMargin)
	}

	if cfg.Cols*cfg.Rows > 0 {
		if cfg.MinRadius <= 0 || cfg.MaxRadius <= cfg.MinRadius {
			return errors.Errorf("radius range [%v, %v) is empty", cfg.MinRadius, cfg.MaxRadius)
		}
		if cfg.Cols*cfg.Rows > 1 && cfg.Spacing < 2*cfg.MaxRadius {
			return errors.Errorf("spacing %v is less than the largest diameter %v", cfg.Spacing, 2*cfg.MaxRadius)
		}
		if cfg.Box {
			lo := cfg.Origin
			hi := cfg.Origin.Add(bounce.Vector{
				X: cfg.Spacing * float64(cfg.Cols-1),
				Y: cfg.Spacing * float64(cfg.Rows-1),
			})
			r := cfg.MaxRadius
			if lo.X < r || lo.Y < r || hi.X > cfg.Width-r || hi.Y > cfg.Height-r {
				return errors.Errorf("grid %v..%v does not fit in %vx%v", lo, hi, cfg.Width, cfg.Height)
			}
		}
	}

	for i, b := range cfg.Bodies {
		if b.Radius <= 0 || b.Mass < 0 {
			return errors.Errorf("body %d: radius %v mass %v", i, b.Radius, b.Mass)
		}
	}
	for i, w := range cfg.Walls {
		if w.Normal.LengthSq() == 0 {
			return errors.Wrapf(bounce.ErrInvalidNormal, "wall %d", i)
		}
	}
	return nil
}

// Build creates a space populated from cfg. The same config always yields
// the same space.
func Build(cfg Config) (*bounce.Space, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	space := bounce.NewSpace()
	space.RebaseInterval = cfg.RebaseInterval
	space.RebaseMargin = cfg.RebaseMargin

	if cfg.Box {
		for _, w := range boxWalls(cfg.Width, cfg.Height) {
			if err := addWall(space, w); err != nil {
				return nil, err
			}
		}
	}
	for _, w := range cfg.Walls {
		if err := addWall(space, w); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	steps := int(math.Ceil(cfg.MaxRadius - cfg.MinRadius))
	speed := int(cfg.MaxSpeed)
	for i := 0; i < cfg.Cols; i++ {
		for j := 0; j < cfg.Rows; j++ {
			r := cfg.MinRadius + float64(rng.Intn(steps))
			body, err := bounce.NewBall(r)
			if err != nil {
				return nil, errors.Wrapf(err, "grid ball %d,%d", i, j)
			}
			body.SetPosition(cfg.Origin.Add(bounce.Vector{X: cfg.Spacing * float64(i), Y: cfg.Spacing * float64(j)}))
			body.SetVelocity(bounce.Vector{
				X: float64(rng.Intn(2*speed+1) - speed),
				Y: float64(rng.Intn(2*speed+1) - speed),
			})
			space.AddBody(body)
		}
	}

	for i, b := range cfg.Bodies {
		mass := b.Mass
		if mass == 0 {
			mass = b.Radius * b.Radius
		}
		body, err := bounce.NewBody(b.Radius, mass)
		if err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		body.SetPosition(b.Position)
		body.SetVelocity(b.Velocity)
		if err := place(space, body, cfg); err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		space.AddBody(body)
	}

	return space, nil
}

// place rejects a listed body that starts outside the box or on top of a
// body already in the space.
func place(space *bounce.Space, body *bounce.Body, cfg Config) error {
	bb := body.BB(0)
	if cfg.Box && !bounce.NewBB(0, 0, cfg.Width, cfg.Height).Contains(bb) {
		return errors.Errorf("%v at %v is outside the %vx%v box", body, body.Position(), cfg.Width, cfg.Height)
	}
	for _, other := range space.Bodies() {
		if other.BB(0).Intersects(bb) && bounce.Separation(other, body, 0) < 0 {
			return errors.Errorf("overlaps %v", other)
		}
	}
	return nil
}

func boxWalls(w, h float64) []WallConfig {
	return []WallConfig{
		{Anchor: bounce.Vector{}, Normal: bounce.Vector{X: 1}},
		{Anchor: bounce.Vector{}, Normal: bounce.Vector{Y: 1}},
		{Anchor: bounce.Vector{X: w}, Normal: bounce.Vector{X: -1}},
		{Anchor: bounce.Vector{Y: h}, Normal: bounce.Vector{Y: -1}},
	}
}

func addWall(space *bounce.Space, w WallConfig) error {
	wall, err := bounce.NewWall(w.Anchor, w.Normal)
	if err != nil {
		return err
	}
	space.AddWall(wall)
	return nil
}
