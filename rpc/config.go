package rpc

import "github.com/ethereum/go-ethereum/rpc"

// Defines the configuration options for the docs server
type Config struct {
	// TCP address for the docs server to listen on
	ListenAddress string `mapstructure:"addr"`
	// HTTPTimeouts allows for customization of the timeout values used by the HTTP RPC
	// interface.
	HTTPTimeouts rpc.HTTPTimeouts
}

// DefaultConfig returns a default configuration for the docs server
var DefaultConfig = Config{
	ListenAddress: "127.0.0.1:8546",
	HTTPTimeouts:  rpc.DefaultHTTPTimeouts,
}
