// Package interfaces holds the documented JSON-RPC API: every module, its
// methods and their examples.
package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

// Schema returns a fresh copy of the documented API, safe to modify.
func Schema() types.Schema {
	return types.Schema{
		"eth":      eth(),
		"net":      net(),
		"parity":   parity(),
		"personal": personal(),
		"rpcdoc":   rpcdoc(),
		"signer":   signer(),
		"trace":    trace(),
		"web3":     web3(),
	}
}
