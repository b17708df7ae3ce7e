package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/habitkeep/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value, so a partial config file
// only overrides what it actually sets.
type JsonConfig struct {
	DataDir     *string `json:"data_dir"`
	DataFile    *string `json:"data_file"`
	ClearScreen *bool   `json:"clear_screen"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, no JSON is loaded.
// Read or unmarshal errors panic (the config file was explicitly
// requested, so a broken one should not be silently ignored).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.DataFile != nil {
		cfg.DataFile = *jc.DataFile
	}
	if jc.ClearScreen != nil {
		cfg.ClearScreen = *jc.ClearScreen
	}
}
