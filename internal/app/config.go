package app

import (
	"flag"
	"fmt"
)

// Config represents the command-line parameters for the application.
type Config struct {
	// Size skips the menu and starts a board of the given dimension; 0
	// opens the menu.
	Size  int
	Scale int
	TPS   int
	Seed  int64
	Mute  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 0, Scale: 1, TPS: 60, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "start directly on an NxN board (0 opens the menu)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "shuffle seed (0 uses the clock)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
}

// Validate reports caller errors in the parsed flags.
func (c *Config) Validate() error {
	if c.Size != 0 && c.Size < 2 {
		return fmt.Errorf("app: -size %d out of range (need 0 or >= 2)", c.Size)
	}
	if c.Scale < 1 {
		return fmt.Errorf("app: -scale %d out of range (need >= 1)", c.Scale)
	}
	if c.TPS < 1 {
		return fmt.Errorf("app: -tps %d out of range (need >= 1)", c.TPS)
	}
	return nil
}
