package app

import (
	"flag"
	"testing"
)

func TestConfigBindAndParse(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-size", "5", "-scale", "2", "-seed", "42", "-mute"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Size != 5 || cfg.Scale != 2 || cfg.Seed != 42 || !cfg.Mute {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		mutate func(*Config)
		ok     bool
	}{
		{func(c *Config) {}, true},
		{func(c *Config) { c.Size = 4 }, true},
		{func(c *Config) { c.Size = 1 }, false},
		{func(c *Config) { c.Size = -2 }, false},
		{func(c *Config) { c.Scale = 0 }, false},
		{func(c *Config) { c.TPS = 0 }, false},
	}
	for i, c := range cases {
		cfg := NewConfig()
		c.mutate(cfg)
		err := cfg.Validate()
		if c.ok && err != nil {
			t.Fatalf("case %d: valid config rejected: %v", i, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("case %d: invalid config %+v accepted", i, cfg)
		}
	}
}
