package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

func traceTypes() *types.Field {
	return field(types.Array, "Type of trace, one or more of: `\"vmTrace\"`, `\"trace\"`, `\"stateDiff\"`.", []interface{}{"trace"})
}

func traceResult() types.Details {
	return types.Details{
		"output":    field(types.Data, "Output of the call.", "0x"),
		"stateDiff": optional(field(types.Object, "State changes, when `stateDiff` was requested.", types.Null)),
		"trace":     field(types.Array, "Trace of the call.", []interface{}{types.Elided}),
		"vmTrace":   optional(field(types.Object, "Virtual machine execution trace, when `vmTrace` was requested.", types.Null)),
	}
}

func trace() *types.Group {
	return &types.Group{
		Preamble: "The trace module is for getting a deeper insight into transaction processing. " +
			"It requires the node to run with tracing enabled.",
		Methods: map[string]*types.Method{
			"block": method("Returns traces created at given block.",
				params(blockNumber(quantity(3))),
				field(types.Array, "Block traces.", []interface{}{types.Elided}),
			),

			"call": method("Executes the given call and returns a number of possible traces for it.",
				params(
					object("The transaction call object.", transactionRequest()),
					traceTypes(),
					optional(blockNumber("latest")),
				),
				object("Block traces", traceResult()),
			),

			"filter": method("Returns traces matching given filter.",
				params(object("The filter object", types.Details{
					"fromBlock":   optional(field(types.BlockNumber, "From this block.", quantity(3))),
					"toBlock":     optional(field(types.BlockNumber, "To this block.", quantity(3))),
					"fromAddress": optional(field(types.Array, "Sent from these addresses.", []interface{}{exampleAddress})),
					"toAddress":   optional(field(types.Array, "Sent to these addresses.", []interface{}{exampleAddress2})),
				})),
				field(types.Array, "Traces matching given filter", []interface{}{types.Elided}),
			),

			"get": method("Returns trace at given position.",
				params(
					field(types.Hash, "Transaction hash.", exampleHash2),
					field(types.Array, "Index positions of the traces.", []interface{}{quantity(0)}),
				),
				object("Trace object", types.Details{
					"action":              field(types.Object, "The traced action.", types.Elided),
					"blockHash":           field(types.Hash, "Hash of the block the trace belongs to.", exampleHash3),
					"blockNumber":         field(types.Quantity, "Number of the block the trace belongs to.", 3068185),
					"subtraces":           field(types.Quantity, "Number of subtraces.", 0),
					"traceAddress":        field(types.Array, "Position of the trace in the call tree.", []interface{}{0}),
					"transactionHash":     field(types.Hash, "Hash of the traced transaction.", exampleHash2),
					"transactionPosition": field(types.Quantity, "Position of the transaction in the block.", 2),
					"type":                field(types.String, "Type of the trace.", "call"),
				}),
			),

			"rawTransaction": method("Traces a call to `eth_sendRawTransaction` without making the call, returning the traces.",
				params(
					field(types.Data, "Raw transaction data.", exampleData),
					traceTypes(),
				),
				object("Block traces.", traceResult()),
			),

			"replayTransaction": method("Replays a transaction, returning the traces.",
				params(
					field(types.Hash, "Transaction hash.", exampleHash),
					traceTypes(),
				),
				object("Block traces.", traceResult()),
			),

			"transaction": method("Returns all traces of given transaction.",
				params(field(types.Hash, "Transaction hash.", exampleHash2)),
				field(types.Array, "Traces of given transaction", []interface{}{types.Elided}),
			),
		},
	}
}
