// Package config loads optional defaults for the rgear CLI from a YAML file.
//
// The file is only read when its path is passed explicitly; rgear never
// searches for configuration or consults the environment.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Defaults holds values used for flags that were not set on the command line
type Defaults struct {
	Port    string
	Force   bool
	Verbose bool
}

// Load reads defaults from the YAML file at path
func Load(path string) (*Defaults, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file %s not found", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Defaults{
		Port:    v.GetString("port"),
		Force:   v.GetBool("force"),
		Verbose: v.GetBool("verbose"),
	}, nil
}
