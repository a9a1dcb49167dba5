package interfaces

import (
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Values shared by the examples.
const (
	exampleAddress  = "0x407d73d8a49eeb85d32cf465507dd71d507100c1"
	exampleAddress2 = "0xb60e8dd61c5d32be8058bb8eb970870f07233155"
	exampleAddress3 = "0xd46e8dd67c5d32be8058bb8eb970870f07244567"
	exampleHash     = "0xc6ef2fc5426d6ad6fd9e2a26abeab0aa2411b7ab17f30a99d3cb96aed1d1055b"
	exampleHash2    = "0x9fc76417374aa880d4449a1f7f31ec597f00b1f6f3dd2d66f4c9c6c445836d8b"
	exampleHash3    = "0x1d1f4b5a2d9fdf1b6c3c5b1e1d2e1f4c8a0b6d2c7e9f0a1b2c3d4e5f60718293"
	exampleData     = "0xd46e8dd67c5d32be8d46e8dd67c5d32be8058bb8eb970870f072445675058bb8eb970870f072445675"
	examplePassword = "hunter2"
)

// quantity encodes n the way quantities travel on the wire.
func quantity(n uint64) string {
	return hexutil.EncodeUint64(n)
}

func method(desc string, params []*types.Field, returns *types.Field) *types.Method {
	return &types.Method{Desc: desc, Params: params, Returns: returns}
}

func params(fields ...*types.Field) []*types.Field {
	return fields
}

func field(t types.Type, desc string, example interface{}) *types.Field {
	return &types.Field{Type: t, Desc: desc, Example: example}
}

func object(desc string, details types.Details) *types.Field {
	return &types.Field{Type: types.Object, Desc: desc, Details: details}
}

func optional(f *types.Field) *types.Field {
	return f.AsOptional()
}

func withDefault(f *types.Field, def interface{}) *types.Field {
	c := *f
	c.Default = def
	return &c
}

func formatted(f *types.Field, format string) *types.Field {
	c := *f
	c.Format = format
	return &c
}

func blockNumber(example interface{}) *types.Field {
	return withDefault(&types.Field{
		Type:    types.BlockNumber,
		Desc:    "integer block number, or the string `'latest'`, `'earliest'` or `'pending'`, see the default block parameter.",
		Format:  "inputDefaultBlockNumberFormatter",
		Example: example,
	}, "latest")
}

func nothing() *types.Field {
	return &types.Field{Type: types.Boolean, Desc: "`true` if the call was successful.", Example: true}
}

// transactionRequest describes the object accepted by calls that send or
// simulate a transaction.
func transactionRequest() types.Details {
	return types.Details{
		"from":     optional(field(types.Address, "20 Bytes - The address the transaction is sent from.", exampleAddress2)),
		"to":       optional(field(types.Address, "20 Bytes - The address the transaction is directed to.", exampleAddress3)),
		"gas":      optional(field(types.Quantity, "Integer of the gas provided for the transaction execution.", quantity(30400))),
		"gasPrice": optional(field(types.Quantity, "Integer of the gas price used for each paid gas.", quantity(10000000000000))),
		"value":    optional(field(types.Quantity, "Integer of the value sent with this transaction.", quantity(2441406250))),
		"data":     optional(field(types.Data, "4 byte hash of the method signature followed by encoded parameters.", exampleData)),
		"nonce":    optional(field(types.Quantity, "Integer of a nonce used to replace a pending transaction with the same nonce.", quantity(3))),
		"condition": optional(object("Conditional submission of the transaction.", types.Details{
			"block": optional(field(types.Quantity, "Number of the block the transaction is released at.", quantity(1000))),
			"time":  optional(field(types.Quantity, "Unix time the transaction is released at.", quantity(1491290692))),
		})),
	}
}

// transactionResult describes a transaction as returned by the node.
func transactionResult() types.Details {
	return types.Details{
		"hash":             field(types.Hash, "32 Bytes - hash of the transaction.", exampleHash2),
		"nonce":            field(types.Quantity, "The number of transactions made by the sender prior to this one.", quantity(0)),
		"blockHash":        field(types.Hash, "32 Bytes - hash of the block where this transaction was in. `null` when its pending.", exampleHash),
		"blockNumber":      field(types.BlockNumber, "Block number where this transaction was in. `null` when its pending.", quantity(5599)),
		"transactionIndex": field(types.Quantity, "Integer of the transactions index position in the block. `null` when its pending.", quantity(1)),
		"from":             field(types.Address, "20 Bytes - address of the sender.", exampleAddress),
		"to":               field(types.Address, "20 Bytes - address of the receiver. `null` when its a contract creation transaction.", exampleAddress2),
		"value":            field(types.Quantity, "Value transferred in Wei.", quantity(1000000000000)),
		"gasPrice":         field(types.Quantity, "Gas price provided by the sender in Wei.", quantity(1000000000)),
		"gas":              field(types.Quantity, "Gas provided by the sender.", quantity(21000)),
		"input":            field(types.Data, "The data send along with the transaction.", "0x"),
	}
}

// blockResult describes a block as returned by the node.
func blockResult() types.Details {
	return types.Details{
		"number":           field(types.Quantity, "The block number. `null` when its pending block.", quantity(436)),
		"hash":             field(types.Hash, "32 Bytes - hash of the block. `null` when its pending block.", exampleHash3),
		"parentHash":       field(types.Hash, "32 Bytes - hash of the parent block.", exampleHash2),
		"nonce":            field(types.Data, "8 Bytes - hash of the generated proof-of-work. `null` when its pending block.", "0x689056015818adbe"),
		"sha3Uncles":       field(types.Hash, "32 Bytes - SHA3 of the uncles data in the block.", exampleHash),
		"logsBloom":        field(types.Data, "256 Bytes - the bloom filter for the logs of the block. `null` when its pending block.", "0x00"),
		"transactionsRoot": field(types.Hash, "32 Bytes - the root of the transaction trie of the block.", exampleHash),
		"stateRoot":        field(types.Hash, "32 Bytes - the root of the final state trie of the block.", exampleHash3),
		"receiptsRoot":     field(types.Hash, "32 Bytes - the root of the receipts trie of the block.", exampleHash2),
		"author":           field(types.Address, "20 Bytes - the address of the author of the block (the beneficiary to whom the mining rewards were given)", exampleAddress3),
		"miner":            field(types.Address, "20 Bytes - alias of `author`", exampleAddress3),
		"difficulty":       field(types.Quantity, "Integer of the difficulty for this block.", quantity(4436362)),
		"totalDifficulty":  field(types.Quantity, "Integer of the total difficulty of the chain until this block.", quantity(53957839066)),
		"extraData":        field(types.Data, "The 'extra data' field of this block.", "0x"),
		"size":             field(types.Quantity, "Integer the size of this block in bytes.", quantity(636)),
		"gasLimit":         field(types.Quantity, "The maximum gas allowed in this block.", quantity(5000)),
		"gasUsed":          field(types.Quantity, "The total used gas by all transactions in this block.", quantity(0)),
		"timestamp":        field(types.Quantity, "The unix timestamp for when the block was collated.", quantity(1438270128)),
		"transactions":     field(types.Array, "Array of transaction objects, or 32 Bytes transaction hashes depending on the last given parameter.", []interface{}{types.Elided}),
		"uncles":           field(types.Array, "Array of uncle hashes.", []interface{}{}),
	}
}

// receiptResult describes a transaction receipt.
func receiptResult() types.Details {
	return types.Details{
		"transactionHash":   field(types.Hash, "32 Bytes - hash of the transaction.", exampleHash),
		"transactionIndex":  field(types.Quantity, "Integer of the transactions index position in the block.", quantity(1)),
		"blockHash":         field(types.Hash, "32 Bytes - hash of the block where this transaction was in.", exampleHash3),
		"blockNumber":       field(types.BlockNumber, "Block number where this transaction was in.", quantity(11)),
		"cumulativeGasUsed": field(types.Quantity, "The total amount of gas used when this transaction was executed in the block.", quantity(13244)),
		"gasUsed":           field(types.Quantity, "The amount of gas used by this specific transaction alone.", quantity(1244)),
		"contractAddress":   field(types.Address, "20 Bytes - The contract address created, if the transaction was a contract creation, otherwise `null`.", exampleAddress3),
		"logs":              field(types.Array, "Array of log objects, which this transaction generated.", []interface{}{types.Elided}),
	}
}

// logResult describes a log entry.
func logResult() types.Details {
	return types.Details{
		"removed":          field(types.Boolean, "`true` when the log was removed, due to a chain reorganization.", false),
		"logIndex":         field(types.Quantity, "Integer of the log index position in the block. `null` when its pending log.", quantity(1)),
		"transactionIndex": field(types.Quantity, "Integer of the transactions index position log was created from.", quantity(0)),
		"transactionHash":  field(types.Hash, "32 Bytes - hash of the transactions this log was created from.", exampleHash),
		"blockHash":        field(types.Hash, "32 Bytes - hash of the block where this log was in.", exampleHash3),
		"blockNumber":      field(types.Quantity, "The block number where this log was in.", quantity(436)),
		"address":          field(types.Address, "20 Bytes - address from which this log originated.", exampleAddress3),
		"data":             field(types.Data, "Contains one or more 32 Bytes non-indexed arguments of the log.", "0x0000000000000000000000000000000000000000000000000000000000000000"),
		"topics":           field(types.Array, "Array of 0 to 4 32 Bytes `Data` of indexed log arguments.", []interface{}{exampleHash2}),
	}
}
