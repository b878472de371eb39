// Package cliconfig loads the jsondiffpatch CLI's default Options from an
// optional config file, separately from the library itself (which stays
// config-file-free).
package cliconfig

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Defaults mirrors jsondiffpatch.Options with mapstructure tags so a TOML
// or YAML config file can seed the CLI's flag defaults.
type Defaults struct {
	ExcludePaths            []string `mapstructure:"exclude-paths"`
	IgnoreMissingProperties bool     `mapstructure:"ignore-missing-properties"`
	IgnoreNewProperties     bool     `mapstructure:"ignore-new-properties"`
	ArrayMode               string   `mapstructure:"array-mode"`
}

// Load reads file (if non-empty) into a Defaults value. An empty file path
// returns the zero value without touching the filesystem.
func Load(file string) (Defaults, error) {
	var d Defaults
	if file == "" {
		return d, nil
	}

	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return d, fmt.Errorf("cliconfig: reading %s: %w", file, err)
	}
	if err := v.Unmarshal(&d, viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))); err != nil {
		return d, fmt.Errorf("cliconfig: decoding %s: %w", file, err)
	}
	return d, nil
}
