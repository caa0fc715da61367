// Package config holds runtime settings for the worm binaries: the spawn worm, sandbox
// timing, audio and the remote control server. Sources apply in order: defaults, TOML file,
// WORMS_* environment variables.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/worms/worm"
)

// Spawn describes the worm created at startup
type Spawn struct {
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Direction float64 `toml:"direction"`
	Radius    float64 `toml:"radius"`
	Name      string  `toml:"name"`
}

// Sandbox configures the terminal sandbox
type Sandbox struct {
	// CellsPerMeter scales world meters to terminal columns; rows use half of it
	CellsPerMeter float64       `toml:"cells_per_meter"`
	FrameInterval time.Duration `toml:"frame_interval"`
	// TimeScale stretches jump animation playback; 1 is real time
	TimeScale float64  `toml:"time_scale"`
	Names     []string `toml:"names"`
}

// Audio configures sound cues
type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// Server configures the WebSocket remote control server
type Server struct {
	Address      string        `toml:"address"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	PingInterval time.Duration `toml:"ping_interval"`
	ReadLimit    int64         `toml:"read_limit"`
}

// Config is the root configuration
type Config struct {
	Spawn   Spawn   `toml:"spawn"`
	Sandbox Sandbox `toml:"sandbox"`
	Audio   Audio   `toml:"audio"`
	Server  Server  `toml:"server"`
}

// Default returns a playable configuration
func Default() *Config {
	return &Config{
		Spawn: Spawn{
			X:         0,
			Y:         0,
			Direction: math.Pi / 4,
			Radius:    0.5,
			Name:      "Wiggles",
		},
		Sandbox: Sandbox{
			CellsPerMeter: 4,
			FrameInterval: 16 * time.Millisecond,
			TimeScale:     1,
			Names:         []string{"Wiggles", "Slim Jim", "Noodle", "Lord 'Squirm'"},
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Server: Server{
			Address:      ":7777",
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 10 * time.Second,
			PingInterval: 25 * time.Second,
			ReadLimit:    1 << 16,
		},
	}
}

// Load returns defaults overlaid with the TOML file at path (when non-empty) and the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config read: %w", err)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg; keys not present keep their current value
// Unknown keys are rejected
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse: unknown key %q", undecoded[0].String())
	}
	return nil
}

// Encode writes cfg as TOML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("config encode: %w", err)
	}
	return buf.Bytes(), nil
}

// ApplyEnv overlays WORMS_* environment variables
// Malformed numeric values are reported, empty values are ignored
func (c *Config) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{"WORMS_SPAWN_X", &c.Spawn.X},
		{"WORMS_SPAWN_Y", &c.Spawn.Y},
		{"WORMS_SPAWN_DIRECTION", &c.Spawn.Direction},
		{"WORMS_SPAWN_RADIUS", &c.Spawn.Radius},
		{"WORMS_TIME_SCALE", &c.Sandbox.TimeScale},
	}
	for _, f := range floats {
		if v := os.Getenv(f.key); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("env %s: %w", f.key, err)
			}
			*f.dst = parsed
		}
	}

	if v := os.Getenv("WORMS_SPAWN_NAME"); v != "" {
		c.Spawn.Name = v
	}

	if v := os.Getenv("WORMS_AUDIO_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("env WORMS_AUDIO_ENABLED: %w", err)
		}
		c.Audio.Enabled = enabled
	}

	// Volume is given as 0-100
	if v := os.Getenv("WORMS_MASTER_VOLUME"); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env WORMS_MASTER_VOLUME: %w", err)
		}
		c.Audio.MasterVolume = math.Max(0, math.Min(1, float64(vol)/100))
	}

	if v := os.Getenv("WORMS_SERVER_ADDRESS"); v != "" {
		c.Server.Address = v
	}
	return nil
}

// Validate checks the spawn worm against the worm rules and the remaining ranges
// Spawn failures return the worm error so callers can classify them with worm.KindOf
func (c *Config) Validate() error {
	if _, err := c.NewSpawnWorm(); err != nil {
		return fmt.Errorf("config spawn: %w", err)
	}
	if c.Sandbox.CellsPerMeter <= 0 {
		return fmt.Errorf("config sandbox: cells_per_meter must be positive, got %v", c.Sandbox.CellsPerMeter)
	}
	if c.Sandbox.FrameInterval <= 0 {
		return fmt.Errorf("config sandbox: frame_interval must be positive, got %v", c.Sandbox.FrameInterval)
	}
	if c.Sandbox.TimeScale <= 0 {
		return fmt.Errorf("config sandbox: time_scale must be positive, got %v", c.Sandbox.TimeScale)
	}
	for _, n := range c.Sandbox.Names {
		if !worm.IsValidName(n) {
			return fmt.Errorf("config sandbox: name %q: %w", n, worm.ErrInvalidName)
		}
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config audio: sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	durations := []struct {
		key string
		val time.Duration
	}{
		{"read_timeout", c.Server.ReadTimeout},
		{"write_timeout", c.Server.WriteTimeout},
		{"ping_interval", c.Server.PingInterval},
	}
	for _, d := range durations {
		if d.val <= 0 {
			return fmt.Errorf("config server: %s must be positive, got %v", d.key, d.val)
		}
	}
	if c.Server.ReadLimit <= 0 {
		return fmt.Errorf("config server: read_limit must be positive, got %d", c.Server.ReadLimit)
	}
	return nil
}

// NewSpawnWorm creates the configured spawn worm
func (c *Config) NewSpawnWorm() (*worm.Worm, error) {
	s := c.Spawn
	return worm.New(s.X, s.Y, s.Direction, s.Radius, s.Name)
}
