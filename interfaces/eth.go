package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

func eth() *types.Group {
	return &types.Group{Methods: map[string]*types.Method{
		"accounts": method("Returns a list of addresses owned by client.",
			nil,
			field(types.Array, "20 Bytes - addresses owned by the client.", []interface{}{exampleAddress}),
		),

		"blockNumber": method("Returns the number of most recent block.",
			nil,
			field(types.Quantity, "integer of the current block number the client is on.", quantity(1207)),
		),

		"call": method("Executes a new message call immediately without creating a transaction on the block chain.",
			params(
				object("The transaction call object.", transactionRequest()),
				blockNumber(quantity(2165)),
			),
			field(types.Data, "the return value of executed contract.", "0x"),
		),

		"coinbase": method("Returns the client coinbase address.",
			nil,
			field(types.Address, "The current coinbase address.", exampleAddress),
		),

		"compileSolidity": {
			Desc:       "Returns compiled solidity code.",
			Deprecated: true,
			Params:     params(field(types.String, "The source code.", "contract test { function multiply(uint a) returns(uint d) { return a * 7; } }")),
			Returns:    &types.Field{Type: types.Data, Desc: "The compiled source code."},
		},

		"estimateGas": method("Makes a call or transaction, which won't be added to the blockchain and returns the used gas, which can be used for estimating the used gas.",
			params(
				object("Same as [eth_call](#eth_call) parameters, except that all properties are optional.", transactionRequest()),
				optional(blockNumber(quantity(2165))),
			),
			field(types.Quantity, "The amount of gas used.", quantity(21000)),
		),

		"gasPrice": method("Returns the current price per gas in wei.",
			nil,
			field(types.Quantity, "integer of the current gas price in wei.", quantity(9184e9)),
		),

		"getBalance": method("Returns the balance of the account of given address.",
			params(
				formatted(field(types.Address, "20 Bytes - address to check for balance.", exampleAddress), "inputAddressFormatter"),
				optional(blockNumber("latest")),
			),
			formatted(field(types.Quantity, "integer of the current balance in wei.", quantity(0x234c8a3397aab58)), "outputBigNumberFormatter"),
		),

		"getBlockByHash": method("Returns information about a block by hash.",
			params(
				field(types.Hash, "Hash of a block.", exampleHash3),
				field(types.Boolean, "If `true` it returns the full transaction objects, if `false` only the hashes of the transactions.", true),
			),
			object("A block object, or `null` when no block was found.", blockResult()),
		),

		"getBlockByNumber": method("Returns information about a block by block number.",
			params(
				blockNumber(quantity(436)),
				field(types.Boolean, "If `true` it returns the full transaction objects, if `false` only the hashes of the transactions.", true),
			),
			object("See [eth_getBlockByHash](#eth_getblockbyhash)", blockResult()),
		),

		"getBlockTransactionCountByHash": method("Returns the number of transactions in a block from a block matching the given block hash.",
			params(field(types.Hash, "32 Bytes - hash of a block.", exampleHash)),
			field(types.Quantity, "integer of the number of transactions in this block.", quantity(11)),
		),

		"getCode": method("Returns code at a given address.",
			params(
				field(types.Address, "20 Bytes - address.", exampleAddress3),
				blockNumber(quantity(2)),
			),
			field(types.Data, "the code from the given address.", "0x600160008035811a818181146012578301005b601b6001356025565b8060005260206000f25b600060078202905091905056"),
		),

		"getCompilers": {
			Desc:       "Returns a list of available compilers in the client.",
			Deprecated: true,
			Returns:    &types.Field{Type: types.Array, Desc: "Array of available compilers."},
		},

		"getFilterChanges": method("Polling method for a filter, which returns an array of logs which occurred since last poll.",
			params(field(types.Quantity, "The filter id.", quantity(22))),
			field(types.Array, "Array of log objects, or an empty array if nothing has changed since last poll.", []interface{}{}),
		),

		"getLogs": method("Returns an array of all logs matching a given filter object.",
			params(field(types.Object, "The filter object, see [eth_newFilter parameters](#eth_newfilter).", map[string]interface{}{
				"topics": []interface{}{exampleHash2},
			})),
			field(types.Array, "Array of log objects, see [eth_getFilterChanges](#eth_getfilterchanges)", []interface{}{types.Elided}),
		),

		"getStorageAt": method("Returns the value from a storage position at a given address.",
			params(
				field(types.Address, "20 Bytes - address of the storage.", exampleAddress),
				field(types.Quantity, "integer of the position in the storage.", quantity(0)),
				blockNumber(quantity(2)),
			),
			field(types.Data, "the value at this storage position.", "0x0000000000000000000000000000000000000000000000000000000000000003"),
		),

		"getTransactionByHash": method("Returns the information about a transaction requested by transaction hash.",
			params(field(types.Hash, "32 Bytes - hash of a transaction.", exampleHash2)),
			object("A transaction object, or `null` when no transaction was found.", transactionResult()),
		),

		"getTransactionCount": method("Returns the number of transactions *sent* from an address.",
			params(
				field(types.Address, "20 Bytes - address.", exampleAddress),
				optional(blockNumber("latest")),
			),
			formatted(field(types.Quantity, "integer of the number of transactions send from this address.", quantity(1)), "utils.toDecimal"),
		),

		"getTransactionReceipt": method("Returns the receipt of a transaction by transaction hash.",
			params(field(types.Hash, "hash of a transaction.", exampleHash)),
			object("A transaction receipt object, or `null` when no receipt was found.", receiptResult()),
		),

		"getWork": {
			Desc:    "Returns the hash of the current block, the seedHash, and the boundary condition to be met.",
			Nodoc:   "Only available on proof-of-work chains",
			Returns: &types.Field{Type: types.Array, Desc: "Array with the pow-hash, seed hash and boundary condition."},
		},

		"hashrate": method("Returns the number of hashes per second that the node is mining with.",
			nil,
			field(types.Quantity, "number of hashes per second.", quantity(906)),
		),

		"mining": method("Returns `true` if client is actively mining new blocks.",
			nil,
			field(types.Boolean, "`true` of the client is mining, otherwise `false`.", true),
		),

		"newBlockFilter": method("Creates a filter in the node, to notify when a new block arrives.",
			nil,
			field(types.Quantity, "A filter id.", quantity(1)),
		),

		"newFilter": method("Creates a filter object, based on filter options, to notify when the state changes (logs).",
			params(object("The filter options:", types.Details{
				"fromBlock": optional(withDefault(field(types.BlockNumber, "Integer block number, or `'latest'` for the last mined block or `'pending'`, `'earliest'` for not yet mined transactions.", quantity(1)), "latest")),
				"toBlock":   optional(withDefault(field(types.BlockNumber, "Integer block number, or `'latest'` for the last mined block or `'pending'`, `'earliest'` for not yet mined transactions.", quantity(2)), "latest")),
				"address":   optional(field(types.Address, "20 Bytes - Contract address or a list of addresses from which logs should originate.", exampleAddress3)),
				"topics": optional(field(types.Array, "Array of 32 Bytes `Data` topics. Topics are order-dependent.", []interface{}{
					types.WithComment(exampleHash2, "This topic in first position"),
					types.WithComment(types.Null, "Any topic in second position"),
					types.WithComment([]interface{}{exampleHash, exampleHash3}, "Either topic of the two in third position"),
				})),
				"limit": optional(field(types.Quantity, "The maximum number of entries to retrieve (latest first).", quantity(10))),
			})),
			field(types.Quantity, "The filter id.", quantity(1)),
		),

		"protocolVersion": method("Returns the current ethereum protocol version.",
			nil,
			field(types.String, "The current ethereum protocol version.", "63"),
		),

		"sendRawTransaction": method("Creates new message call transaction or a contract creation for signed transactions.",
			params(field(types.Data, "The signed transaction data.", exampleData)),
			field(types.Hash, "32 Bytes - the transaction hash, or the zero hash if the transaction is not yet available", exampleHash),
		),

		"sendTransaction": method("Creates new message call transaction or a contract creation, if the data field contains code.",
			params(object("The transaction object", transactionRequest())),
			field(types.Hash, "32 Bytes - the transaction hash, or the zero hash if the transaction is not yet available.", exampleHash),
		),

		"sign": method("The sign method calculates an Ethereum specific signature with: `sign(keccak256(\"\\x19Ethereum Signed Message:\\n\" + len(message) + message)))`.",
			params(
				field(types.Address, "20 Bytes - address.", exampleAddress3),
				field(types.Data, "Data which hash to sign.", "0x414243"),
			),
			field(types.Data, "Signed data.", "0x2ac19db245478a06032e69cdbd2b54e648b78431d0a47bd1fbab18f79f820ba407466e37adbe9e84541cab97ab7d290f4a64a5825c876d22109f3bf813254e8601"),
		),

		"syncing": method("Returns an object with data about the sync status or `false`.",
			nil,
			object("An object with sync status data or `FALSE`, when not syncing.", types.Details{
				"startingBlock":       field(types.Quantity, "The block at which the import started (will only be reset, after the sync reached his head)", quantity(900)),
				"currentBlock":        field(types.Quantity, "The current block, same as eth_blockNumber", quantity(902)),
				"highestBlock":        field(types.Quantity, "The estimated highest block", quantity(1108)),
				"blockGap":            optional(field(types.Array, "Array of \"first\", \"last\", such that [first, last) are all missing from the chain", []interface{}{quantity(1108), quantity(1110)})),
				"warpChunksAmount":    optional(field(types.Quantity, "Total amount of snapshot chunks", quantity(2000))),
				"warpChunksProcessed": optional(field(types.Quantity, "Total amount of snapshot chunks processed", quantity(800))),
			}),
		),

		"uninstallFilter": method("Uninstalls a filter with given id. Should always be called when watch is no longer needed.",
			params(field(types.Quantity, "The filter id.", quantity(11))),
			field(types.Boolean, "`true` if the filter was successfully uninstalled, otherwise `false`.", true),
		),
	}}
}
