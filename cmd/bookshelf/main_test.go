package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/stretchr/testify/assert"
)

func setupEnv(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
}

func TestRunExitCodes(t *testing.T) {
	setupEnv(t)
	colors.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { colors.SetOutput(os.Stdout, os.Stderr) })

	var got []string
	code := run([]string{"genres"}, func(args []string) error {
		got = args
		return nil
	})
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"genres"}, got)

	code = run([]string{"genres"}, func([]string) error { return errors.New("boom") })
	assert.Equal(t, 1, code)
}

func TestWithDefaultCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args opens browser", nil, []string{"browse"}},
		{"flags only open browser", []string{"--debug"}, []string{"browse", "--debug"}},
		{"backend value is not a command", []string{"--backend", "sqlite"}, []string{"browse", "--backend", "sqlite"}},
		{"explicit command kept", []string{"search", "--query", "x"}, []string{"search", "--query", "x"}},
		{"help kept", []string{"--help"}, []string{"--help"}},
		{"version flag kept", []string{"--version"}, []string{"--version"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withDefaultCommand(tt.args))
		})
	}
}
