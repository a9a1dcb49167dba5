package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

var ErrInvalidOverride = errors.New("type override must be <Type>=<name>")

// Config of a generator run.
type Config struct {
	// Directory the reference files are written to.
	OutputDir string
	// Endpoint the curl requests of the examples are sent to.
	Endpoint string
	// Display name overrides, each one "<Type>=<name>", applied on top of
	// the default registry.
	TypeOverrides []string
	// Fail checks on error level diagnostics.
	Strict bool
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: "docs",
		Endpoint:  example.DefaultEndpoint,
	}
}

// Load reads the configuration from viper, keys that are not set keep their
// default value.
func Load() *Config {
	c := DefaultConfig()
	if viper.IsSet(flags.Output_Dir) {
		c.OutputDir = viper.GetString(flags.Output_Dir)
	}
	if viper.IsSet(flags.Output_Endpoint) {
		c.Endpoint = viper.GetString(flags.Output_Endpoint)
	}
	if viper.IsSet(flags.Types_Overrides) {
		c.TypeOverrides = viper.GetStringSlice(flags.Types_Overrides)
	}
	c.Strict = viper.GetBool(flags.Check_Strict)
	return c
}

// Registry builds the type registry described by c.
func (c *Config) Registry() (*types.Registry, error) {
	r := types.DefaultRegistry()
	var result error
	for _, o := range c.TypeOverrides {
		key, name, ok := strings.Cut(o, "=")
		if !ok || strings.TrimSpace(name) == "" {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidOverride, o))
			continue
		}
		t, err := types.ParseType(strings.TrimSpace(key))
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("type override %q: %w", o, err))
			continue
		}
		r = r.With(t, strings.TrimSpace(name))
	}
	if result != nil {
		return nil, result
	}
	return r, nil
}
