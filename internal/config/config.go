// Package config loads runtime settings for the HabitKeep CLI from
// defaults, an optional JSON file and command-line flags, in that order.
package config

// Config holds runtime settings for the HabitKeep CLI.
//
// Fields:
//   - DataDir: directory holding the data file, created on demand.
//     Relative paths resolve against the working directory.
//   - DataFile: name of the JSON data file inside DataDir.
//   - ClearScreen: clear the terminal before each screen when stdout is a
//     real terminal.
type Config struct {
	DataDir     string
	DataFile    string
	ClearScreen bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DataFile = "habits.json"
	c.ClearScreen = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
