package config_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/config"
	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	c := config.Load()
	assert.Equal(t, config.DefaultConfig(), c)
}

func TestLoad(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set(flags.Output_Dir, "out")
	viper.Set(flags.Output_Endpoint, "https://rpc.example.org")
	viper.Set(flags.Types_Overrides, []string{"Quantity=Integer"})
	viper.Set(flags.Check_Strict, true)

	c := config.Load()
	assert.Equal(t, "out", c.OutputDir)
	assert.Equal(t, "https://rpc.example.org", c.Endpoint)
	assert.Equal(t, []string{"Quantity=Integer"}, c.TypeOverrides)
	assert.True(t, c.Strict)
}

func TestRegistry(t *testing.T) {
	c := config.DefaultConfig()
	c.TypeOverrides = []string{"Quantity = Integer", "BlockNumber=Integer|Tag"}
	r, err := c.Registry()
	require.NoError(t, err)
	assert.Equal(t, "Integer", r.DisplayName(types.Quantity))
	assert.Equal(t, "Integer|Tag", r.DisplayName(types.BlockNumber))
	assert.Equal(t, "Hash", r.DisplayName(types.Hash))
}

func TestRegistryErrors(t *testing.T) {
	c := config.DefaultConfig()
	c.TypeOverrides = []string{"Quantity", "Tag=Block tag", "Hash="}
	_, err := c.Registry()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidOverride)
	assert.ErrorIs(t, err, types.ErrUnknownType)
	assert.Contains(t, err.Error(), `"Hash="`)
}
