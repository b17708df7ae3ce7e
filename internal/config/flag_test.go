package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "all flags set",
			args:     []string{"cmd", "-d", "/tmp/habits", "-f", "store.json", "-no-clear"},
			expected: Config{DataDir: "/tmp/habits", DataFile: "store.json", ClearScreen: false},
		},
		{
			name:     "no flags keeps defaults",
			args:     []string{"cmd"},
			expected: Config{DataDir: "data", DataFile: "habits.json", ClearScreen: true},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"cmd", "-x", "1", "-d", "elsewhere"},
			expected: Config{DataDir: "elsewhere", DataFile: "habits.json", ClearScreen: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()
			require.NotPanics(t, func() { parseFlags(cfg) })

			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
