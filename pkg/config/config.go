package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of a game's settings. Fields missing from
// a file keep their default values.
type Config struct {
	Window  types.Window  `json:"window" yaml:"window"`
	Paddle  PaddleConfig  `json:"paddle" yaml:"paddle"`
	Ball    BallConfig    `json:"ball" yaml:"ball"`
	Game    GameConfig    `json:"game" yaml:"game"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

type PaddleConfig struct {
	Speed  float64 `json:"speed" yaml:"speed"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type BallConfig struct {
	Size                float64 `json:"size" yaml:"size"`
	BaseSpeed           float64 `json:"baseSpeed" yaml:"baseSpeed"`
	SpeedIncreaseFactor float64 `json:"speedIncreaseFactor" yaml:"speedIncreaseFactor"`
}

type GameConfig struct {
	// CountdownDuration is the delay between a goal and the next serve
	CountdownDuration time.Duration `json:"countdown" yaml:"countdown"`
	TickInterval      time.Duration `json:"tickInterval" yaml:"tickInterval"`
	Seed              int64         `json:"seed" yaml:"seed"`
}

type LoggingConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// Default returns the settings of a standard 800x600 game.
func Default() *Config {
	return &Config{
		Window: types.Window{
			Width:  constants.WindowWidth,
			Height: constants.WindowHeight,
		},
		Paddle: PaddleConfig{
			Speed:  constants.PaddleSpeed,
			Width:  constants.PaddleWidth,
			Height: constants.PaddleHeight,
		},
		Ball: BallConfig{
			Size:                constants.BallSize,
			BaseSpeed:           constants.BallBaseSpeed,
			SpeedIncreaseFactor: constants.BallSpeedIncreaseFactor,
		},
		Game: GameConfig{
			CountdownDuration: time.Duration(constants.CountdownDuration * float64(time.Second)),
			TickInterval:      time.Second / 60,
			Seed:              time.Now().UnixNano(),
		},
		Logging: LoggingConfig{
			Level:    log.LogLevelInfo.String(),
			Encoding: string(log.EncodingConsole),
		},
	}
}

// Load reads a YAML config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML decodes a config from r on top of the defaults and validates it.
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Physics().Validate(); err != nil {
		return fmt.Errorf("invalid physics: %w", err)
	}
	if err := c.Physics().ValidateWindow(c.Window); err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive: %v", c.Game.TickInterval)
	}
	if _, err := log.ParseLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if _, err := log.ParseEncoding(c.Logging.Encoding); err != nil {
		return fmt.Errorf("invalid log encoding: %w", err)
	}
	return nil
}

// Physics maps the config onto the simulation's tunables.
func (c *Config) Physics() game.Physics {
	return game.Physics{
		PaddleSpeed:             c.Paddle.Speed,
		PaddleWidth:             c.Paddle.Width,
		PaddleHeight:            c.Paddle.Height,
		BallSize:                c.Ball.Size,
		BallBaseSpeed:           c.Ball.BaseSpeed,
		BallSpeedIncreaseFactor: c.Ball.SpeedIncreaseFactor,
		CountdownDuration:       c.Game.CountdownDuration.Seconds(),
	}
}

// GameManagerOptions returns the options for a game manager using this config.
func (c *Config) GameManagerOptions() game.NewGameManagerOptions {
	return game.NewGameManagerOptions{
		Window:       c.Window,
		Physics:      c.Physics(),
		Seed:         c.Game.Seed,
		TickInterval: c.Game.TickInterval,
	}
}

// Logger builds a logger writing to out at the configured level and encoding.
func (c *Config) Logger(out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLogLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	encoding, err := log.ParseEncoding(c.Logging.Encoding)
	if err != nil {
		return nil, err
	}
	return log.New(out, encoding, level), nil
}
