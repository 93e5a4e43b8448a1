package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the default brick breaker configuration.
func DefaultConfig() Config {
	return Config{
		Playfield: Playfield{
			Width:  610,
			Height: 400,
		},
		Ball: Ball{
			Radius:     10,
			Speed:      5,
			SpawnY:     330,
			Colors:     []string{"red", "white"},
			ColorEvery: 5,
		},
		Paddle: Paddle{
			Width:  100,
			Height: 10,
			Y:      350,
			Step:   10,
			Color:  "red",
		},
		Bricks: Bricks{
			Width:  75,
			Height: 20,
			Margin: 5,
			Rows: []BrickRow{
				{Y: 50, HitPoints: 3},
				{Y: 70, HitPoints: 2},
				{Y: 90, HitPoints: 1},
			},
		},
		Gameplay: Gameplay{
			Lives:     3,
			TickMS:    50,
			RespawnMS: 1000,
		},
		Scoring: Scoring{
			Hit:     10,
			Destroy: 50,
		},
		Text: Text{
			Lives:    "Lives: %d",
			Score:    "Score: %d",
			Prompt:   "Press Space to Start!",
			Won:      "Congratulations! You Win",
			GameOver: "Game Over! Try Again.",
			Color:    "black",
			HUDColor: "white",
		},
		Background: Background{
			Enabled:     true,
			TopColor:    "red",
			BottomColor: "white",
			Watermark:   "BRICK BREAKER",
		},
	}
}
