package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

func groupName(example string) *types.Field {
	return field(types.String, "Module name, as listed by `rpcdoc_modules`.", example)
}

func rpcdoc() *types.Group {
	return &types.Group{
		Preamble: "Served by `rpcdoc serve` next to the rendered files, which are available under `/docs/<module>.md`.",
		Methods: map[string]*types.Method{
			"modules": method("Returns the names of the documented modules, subdocs included.",
				nil,
				field(types.Array, "Sorted module names.", []interface{}{"eth", "net", "parity", "parity_accounts", "parity_set", types.Elided}),
			),

			"methods": method("Returns the documented methods of a module.",
				params(groupName("net")),
				field(types.Array, "Sorted method names, deprecated and hidden methods excluded.", []interface{}{"net_listening", "net_peerCount", "net_version"}),
			),

			"describe": method("Returns the description of a method.",
				params(field(types.String, "Method name as it appears on the wire.", "net_peerCount")),
				object("The method description.", types.Details{
					"desc":       field(types.String, "Description of the method.", "Returns number of peers currently connected to the client."),
					"section":    optional(field(types.String, "Section the method is listed under.", "")),
					"subdoc":     optional(field(types.String, "Subdoc the method is documented in.", "")),
					"deprecated": optional(field(types.Boolean, "`true` when the method is deprecated.", false)),
					"params":     field(types.Array, "Parameter descriptions.", []interface{}{}),
					"returns":    field(types.Object, "Return value description.", map[string]interface{}{"type": "Quantity", "desc": "Integer of the number of connected peers"}),
				}),
			),

			"example": method("Returns the example request and response envelopes of a method.",
				params(field(types.String, "Method name as it appears on the wire.", "net_version")),
				object("The envelopes, a side is `null` when it has no example.", types.Details{
					"request":  field(types.Object, "Request envelope.", map[string]interface{}{"jsonrpc": "2.0", "method": "net_version", "params": []interface{}{}, "id": 1}),
					"response": field(types.Object, "Response envelope.", map[string]interface{}{"jsonrpc": "2.0", "result": "8995", "id": 1}),
				}),
			),

			"markdown": method("Returns the rendered Markdown of a module.",
				params(groupName("web3")),
				field(types.String, "The module reference.", "# The `web3` Module\n\n..."),
			),
		},
	}
}
