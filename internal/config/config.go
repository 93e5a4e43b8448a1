// Package config provides YAML-based configuration loading for the brick breaker.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the brick breaker game.
type Config struct {
	Playfield  Playfield  `yaml:"playfield"`
	Ball       Ball       `yaml:"ball"`
	Paddle     Paddle     `yaml:"paddle"`
	Bricks     Bricks     `yaml:"bricks"`
	Gameplay   Gameplay   `yaml:"gameplay"`
	Scoring    Scoring    `yaml:"scoring"`
	Text       Text       `yaml:"text"`
	Background Background `yaml:"background"`
}

// Playfield defines the size of the game area in playfield units.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Ball defines the ball geometry, motion and color cycle.
type Ball struct {
	Radius     float64  `yaml:"radius"`
	Speed      float64  `yaml:"speed"`
	SpawnY     float64  `yaml:"spawn_y"`     // Ball center height when docked
	Colors     []string `yaml:"colors"`      // Cycled fill colors
	ColorEvery int      `yaml:"color_every"` // Updates between color changes
}

// Paddle defines paddle geometry and movement.
type Paddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Step   float64 `yaml:"step"` // Offset applied per key press
	Color  string  `yaml:"color"`
}

// Bricks defines the brick grid.
type Bricks struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Margin float64    `yaml:"margin"` // Horizontal gap kept free at both sides
	Rows   []BrickRow `yaml:"rows"`
}

// BrickRow is one horizontal line of bricks.
type BrickRow struct {
	Y         float64 `yaml:"y"`
	HitPoints int     `yaml:"hit_points"`
}

// Gameplay defines lives and timing.
type Gameplay struct {
	Lives     int `yaml:"lives"`
	TickMS    int `yaml:"tick_ms"`
	RespawnMS int `yaml:"respawn_ms"`
}

// TickInterval returns the tick period.
func (g Gameplay) TickInterval() time.Duration {
	return time.Duration(g.TickMS) * time.Millisecond
}

// RespawnDelay returns the delay between losing a life and the next ball.
func (g Gameplay) RespawnDelay() time.Duration {
	return time.Duration(g.RespawnMS) * time.Millisecond
}

// Scoring defines points awarded for hitting bricks.
type Scoring struct {
	Hit     int `yaml:"hit"`
	Destroy int `yaml:"destroy"`
}

// Text defines HUD and banner labels.
type Text struct {
	Lives    string `yaml:"lives"` // Format with one %d verb
	Score    string `yaml:"score"` // Format with one %d verb
	Prompt   string `yaml:"prompt"`
	Won      string `yaml:"won"`
	GameOver string `yaml:"game_over"`
	Color    string `yaml:"color"`
	HUDColor string `yaml:"hud_color"`
}

// Background defines the decorative playfield backdrop.
type Background struct {
	Enabled     bool   `yaml:"enabled"`
	TopColor    string `yaml:"top_color"`
	BottomColor string `yaml:"bottom_color"`
	Watermark   string `yaml:"watermark"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have a positive size", ErrInvalid)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball radius and speed must be positive", ErrInvalid)
	case len(c.Ball.Colors) == 0:
		return fmt.Errorf("%w: ball needs at least one color", ErrInvalid)
	case c.Ball.ColorEvery <= 0:
		return fmt.Errorf("%w: ball color_every must be positive", ErrInvalid)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have a positive size", ErrInvalid)
	case c.Paddle.Width > c.Playfield.Width:
		return fmt.Errorf("%w: paddle is wider than the playfield", ErrInvalid)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: bricks must have a positive size", ErrInvalid)
	case len(c.Bricks.Rows) == 0:
		return fmt.Errorf("%w: at least one brick row is required", ErrInvalid)
	case c.Gameplay.Lives < 0:
		return fmt.Errorf("%w: lives cannot be negative", ErrInvalid)
	case c.Gameplay.TickMS <= 0 || c.Gameplay.RespawnMS < 0:
		return fmt.Errorf("%w: tick_ms must be positive and respawn_ms non-negative", ErrInvalid)
	}

	for i, row := range c.Bricks.Rows {
		if row.HitPoints < 1 || row.HitPoints > 3 {
			return fmt.Errorf("%w: brick row %d has hit_points %d, expected 1..3", ErrInvalid, i, row.HitPoints)
		}
	}

	colors := append([]string{c.Paddle.Color, c.Text.Color, c.Text.HUDColor}, c.Ball.Colors...)
	if c.Background.Enabled {
		colors = append(colors, c.Background.TopColor, c.Background.BottomColor)
	}
	for _, name := range colors {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	return nil
}
