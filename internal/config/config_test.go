package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect func(*Config)
	}{
		{
			"",
			false,
			func(c *Config) {},
		},
		{
			"log:\n  level: DEBUG\n  file: vex.log\ntrace: true\n",
			false,
			func(c *Config) {
				c.Log = Log{Level: "debug", File: "vex.log"}
				c.Trace = true
			},
		},
		{
			"emit: ir\nrepl:\n  history: /tmp/h\n",
			false,
			func(c *Config) {
				c.Emit = EmitIR
				c.REPL.History = "/tmp/h"
			},
		},
		{
			"emit: bytecode\n",
			true,
			nil,
		},
		{
			"log:\n  level: loud\n",
			true,
			nil,
		},
		{
			"unknown: 1\n",
			true,
			nil,
		},
	}

	for _, c := range cases {
		got, err := Decode(strings.NewReader(c.data))
		if c.fail {
			assert.Error(t, err, c.data)
			continue
		}

		require.NoError(t, err, c.data)

		expect := Default()
		c.expect(expect)
		assert.Equal(t, expect, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("emit: tokens\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, EmitTokens, cfg.Emit)
	assert.Equal(t, "warn", cfg.Log.Level)
}
