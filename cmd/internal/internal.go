package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~flobar/lev"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// lev version
const Version = "v1.5.0"

// Flags is used to define the standard command-line parameters for
// lev sub commands.
type Flags struct {
	Params string // Path to the configuration file
	Log    bool   // Enable verbose logging
}

// Init initializes the standard commandline arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "", "set path to configuration file")
	cmd.Flags().BoolVarP(&flags.Log, "log", "l", false, "enable logging")
}

// Setup enables logging according to the flags and reads the
// command's configuration.
func (flags *Flags) Setup() (*Config, error) {
	SetLog(flags.Log)
	return ReadConfig(flags.Params)
}

// Config defines the configuration of the lev commands.  It holds the
// weights for the three edit operations; all of them default to 1.
type Config struct {
	Ins int `json:"ins"`
	Del int `json:"del"`
	Sub int `json:"sub"`
}

// Weights returns the configured edit operation weights.
func (c *Config) Weights() lev.Weights[int] {
	return lev.Weights[int]{Ins: c.Ins, Del: c.Del, Sub: c.Sub}
}

// Unit reports whether the configured weights are the unit weights.
func (c *Config) Unit() bool {
	return c.Ins == 1 && c.Del == 1 && c.Sub == 1
}

// ReadConfig reads the config from a json or toml file.  If the name
// is empty, the default configuration with unit weights is returned.
// If name has the prefix '{' and the suffix '}' the name is
// interpreted as a json string and parsed accordingly.
func ReadConfig(name string) (*Config, error) {
	config := Config{Ins: 1, Del: 1, Sub: 1}
	if name == "" {
		return &config, nil
	}
	if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
		r := strings.NewReader(name)
		if err := json.NewDecoder(r).Decode(&config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return &config, nil
	}
	is, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	defer is.Close()
	if strings.HasSuffix(name, ".toml") {
		if _, err := toml.DecodeReader(is, &config); err != nil {
			return nil, fmt.Errorf("readConfig %s: %v", name, err)
		}
		return &config, nil
	}
	if err := json.NewDecoder(is).Decode(&config); err != nil {
		return nil, fmt.Errorf("readConfig %s: %v", name, err)
	}
	return &config, nil
}
