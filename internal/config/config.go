package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/springbox/internal/geom"
	"github.com/san-kum/springbox/internal/physics"
	"github.com/san-kum/springbox/internal/world"
)

const (
	DefaultBallMass   = 1.0
	DefaultBallRadius = 20.0
	DefaultWall       = 20.0
	DefaultRoomK      = 10000.0
	DefaultRoomQ      = 10.0
	DefaultFriction   = 0.5
	DefaultHandK      = 100.0
	DefaultHandQ      = 2.0
)

type Config struct {
	Scenario   string     `yaml:"scenario"`
	MaxElapsed float64    `yaml:"max_elapsed"`
	Ball       BallConfig `yaml:"ball"`
	Room       RoomConfig `yaml:"room"`
	Hand       HandConfig `yaml:"hand"`
}

type BallConfig struct {
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
}

type RoomConfig struct {
	Wall     float64 `yaml:"wall"`
	K        float64 `yaml:"k"`
	QFactor  float64 `yaml:"q_factor"`
	Friction float64 `yaml:"friction"`
}

type HandConfig struct {
	K       float64 `yaml:"k"`
	QFactor float64 `yaml:"q_factor"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:   "drop",
		MaxElapsed: physics.DefaultMaxElapsed,
		Ball: BallConfig{
			Mass:   DefaultBallMass,
			Radius: DefaultBallRadius,
			VX:     300,
			VY:     0,
		},
		Room: RoomConfig{
			Wall:     DefaultWall,
			K:        DefaultRoomK,
			QFactor:  DefaultRoomQ,
			Friction: DefaultFriction,
		},
		Hand: HandConfig{
			K:       DefaultHandK,
			QFactor: DefaultHandQ,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects tuning that would divide by zero or feed NaN into the
// force model. Degenerate configuration is fatal at startup; nothing tries
// to recover from it mid-simulation.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		val  float64
		ok   bool
	}{
		{"ball.mass", c.Ball.Mass, c.Ball.Mass > 0},
		{"ball.radius", c.Ball.Radius, c.Ball.Radius > 0},
		{"room.wall", c.Room.Wall, c.Room.Wall >= 0},
		{"room.k", c.Room.K, c.Room.K >= 0},
		{"room.q_factor", c.Room.QFactor, c.Room.QFactor > 0},
		{"room.friction", c.Room.Friction, c.Room.Friction >= 0},
		{"hand.k", c.Hand.K, c.Hand.K >= 0},
		{"hand.q_factor", c.Hand.QFactor, c.Hand.QFactor > 0},
		{"max_elapsed", c.MaxElapsed, c.MaxElapsed > 0},
	}
	for _, ch := range checks {
		if math.IsNaN(ch.val) || math.IsInf(ch.val, 0) || !ch.ok {
			return fmt.Errorf("config: %s out of range: %v", ch.name, ch.val)
		}
	}
	if math.IsNaN(c.Ball.VX) || math.IsNaN(c.Ball.VY) ||
		math.IsInf(c.Ball.VX, 0) || math.IsInf(c.Ball.VY, 0) {
		return fmt.Errorf("config: ball velocity is non-finite")
	}
	return nil
}

// NewState builds the initial world: ball at the origin with the
// configured velocity and gravity as its starting acceleration. Room and
// hand geometry stay zero until the first input sample arrives.
func (c *Config) NewState() world.State {
	return world.State{
		Ball: world.Ball{
			Mass:   c.Ball.Mass,
			Radius: c.Ball.Radius,
			Vel:    geom.Vec{X: c.Ball.VX, Y: c.Ball.VY},
			Acc:    world.Gravity,
		},
		Room: world.Room{
			Wall:     c.Room.Wall,
			K:        c.Room.K,
			QFactor:  c.Room.QFactor,
			Friction: c.Room.Friction,
		},
		Hand: world.Hand{
			K:       c.Hand.K,
			QFactor: c.Hand.QFactor,
		},
	}
}
