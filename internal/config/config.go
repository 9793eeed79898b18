// Package config loads vex settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFile = ".vex.yml"

type Emit string

const (
	EmitTokens Emit = "tokens"
	EmitAST    Emit = "ast"
	EmitEnv    Emit = "env"
	EmitIR     Emit = "ir"
)

func (e Emit) Valid() bool {
	switch e {
	case EmitTokens, EmitAST, EmitEnv, EmitIR:
		return true
	}

	return false
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type REPL struct {
	History string `yaml:"history"`
}

type Config struct {
	Log   Log  `yaml:"log"`
	Emit  Emit `yaml:"emit"`
	Trace bool `yaml:"trace"`
	REPL  REPL `yaml:"repl"`
}

func Default() *Config {
	history := ".vex_history"
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, history)
	}

	return &Config{
		Log:  Log{Level: "warn"},
		Emit: EmitEnv,
		REPL: REPL{History: history},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if !c.Emit.Valid() {
		return fmt.Errorf("invalid emit mode %q", c.Emit)
	}

	return nil
}
