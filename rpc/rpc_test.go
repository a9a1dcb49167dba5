package rpc_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/flags"
	docrpc "github.com/DOIDFoundation/rpcdoc/rpc"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	viper.Set(flags.RPC_Addr, "127.0.0.1:0")
	defer viper.Reset()

	server := docrpc.NewRPC(log.TestingLogger(), newAPI())
	assert.Nil(t, server.Addr())
	require.NoError(t, server.Start())
	defer func() {
		require.NoError(t, server.Stop())
	}()
	require.NotNil(t, server.Addr())

	client, err := rpc.Dial("http://" + server.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	var modules []string
	require.NoError(t, client.Call(&modules, "rpcdoc_modules"))
	assert.Equal(t, []string{"net", "parity", "parity_set"}, modules)
}
