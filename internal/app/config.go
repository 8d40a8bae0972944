package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the startup parameters shared by every front end.
type Config struct {
	Width          int   `json:"width"`
	Height         int   `json:"height"`
	Scale          int   `json:"scale"`
	TPS            int   `json:"tps"`
	Seed           int64 `json:"seed"`
	RepeatDelay    int   `json:"repeat_delay"`
	RepeatInterval int   `json:"repeat_interval"`
	HUD            bool  `json:"hud"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:          100,
		Height:         100,
		Scale:          10,
		TPS:            60,
		Seed:           42,
		RepeatDelay:    15, // 250ms at 60 TPS
		RepeatInterval: 3,
		HUD:            true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "JSON config file; explicit flags override its values")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.RepeatDelay, "repeat-delay", c.RepeatDelay, "ticks a step key must be held before it repeats")
	fs.IntVar(&c.RepeatInterval, "repeat-interval", c.RepeatInterval, "ticks between repeated steps while held")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}

// LoadConfig loads configuration from a JSON file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.loadFile(filename); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// ParseConfig binds a fresh Config to fs and parses args. When -config names
// a file its values are applied, then any flags set on the command line are
// applied again so they win over the file.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[ParseConfig] parse flags")
	}
	if cfg.File != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = f.Value.String()
		})
		if err := cfg.loadFile(cfg.File); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, errors.Wrapf(err, "[ParseConfig] reapply flag -%s", name)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the program cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must have positive dimensions, got %dx%d", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.RepeatDelay < 0:
		return errors.Errorf("repeat delay must not be negative, got %d", c.RepeatDelay)
	case c.RepeatInterval <= 0:
		return errors.Errorf("repeat interval must be positive, got %d", c.RepeatInterval)
	}
	return nil
}
