package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

func web3() *types.Group {
	return &types.Group{Methods: map[string]*types.Method{
		"clientVersion": method("Returns the current client version.",
			nil,
			field(types.String, "The current client version", "Parity//v1.5.0-unstable-9db3f38-20170103/x86_64-linux-gnu/rustc1.14.0"),
		),

		"sha3": method("Returns Keccak-256 (*not* the standardized SHA3-256) of the given data.",
			params(
				formatted(field(types.String, "The data to convert into a SHA3 hash", "0x68656c6c6f20776f726c64"), "inputHexFormatter"),
			),
			field(types.Hash, "The Keccak-256 hash of the given string", "0x47173285a8d7341e5e972fc677286384f802f8ef42a5ec5f03bbfa254cb01fad"),
		),
	}}
}

func net() *types.Group {
	return &types.Group{Methods: map[string]*types.Method{
		"listening": method("Returns `true` if client is actively listening for network connections.",
			nil,
			field(types.Boolean, "`true` when listening, otherwise `false`.", true),
		),

		"peerCount": method("Returns number of peers currently connected to the client.",
			nil,
			formatted(field(types.Quantity, "Integer of the number of connected peers", quantity(2)), "utils.toDecimal"),
		),

		"version": method("Returns the current network protocol version.",
			nil,
			field(types.String, "The current network protocol version", "8995"),
		),
	}}
}
