package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

func personal() *types.Group {
	return &types.Group{Methods: map[string]*types.Method{
		"listAccounts": method("Lists all stored accounts.",
			nil,
			field(types.Array, "A list of 20 byte account identifiers.", []interface{}{exampleAddress, exampleAddress2}),
		),

		"newAccount": method("Creates new account.\n\n**Note:** it becomes the new current unlocked account. There can only be one unlocked account at a time.",
			params(field(types.String, "Password for the new account.", examplePassword)),
			field(types.Address, "20 Bytes - The identifier of the new account.", exampleAddress3),
		),

		"sendTransaction": method("Sends transaction and signs it in a single call. The account does not need to be unlocked to make this call, and will not be left unlocked after.",
			params(
				object("The transaction object", transactionRequest()),
				field(types.String, "Passphrase to unlock the `from` account.", examplePassword),
			),
			field(types.Hash, "32 Bytes - the transaction hash, or the zero hash if the transaction is not yet available", exampleHash2),
		),

		"unlockAccount": method("Unlocks specified account for use.\n\nIf permanent unlocking is disabled (the default) then the duration argument will be ignored, and the account will be unlocked for a single signing.",
			params(
				field(types.Address, "20 Bytes - The address of the account to unlock.", exampleAddress),
				field(types.String, "Passphrase to unlock the account.", examplePassword),
				optional(withDefault(field(types.Quantity, "Integer or `null` - Duration in seconds how long the account should remain unlocked for.", types.Null), 300)),
			),
			field(types.Boolean, "whether the call was successful", true),
		),

		"signAndSendTransaction": {
			Desc:       "Sends and signs a transaction given account passphrase.",
			Deprecated: true,
			Params: params(
				object("The transaction object", transactionRequest()),
				field(types.String, "Passphrase to unlock the `from` account.", examplePassword),
			),
			Returns: field(types.Hash, "32 Bytes - the transaction hash.", exampleHash2),
		},
	}}
}

func signer() *types.Group {
	return &types.Group{
		Preamble: "Methods of the Trusted Signer, used to confirm or reject pending requests.",
		Methods: map[string]*types.Method{
			"confirmRequest": method("Confirm a request in the signer queue.",
				params(
					field(types.Quantity, "The request id.", quantity(1)),
					object("Modify the transaction before confirmation.", types.Details{
						"gasPrice": optional(field(types.Quantity, "Modify the gas price provided by the sender in Wei.", quantity(0x1000))),
						"gas":      optional(field(types.Quantity, "Gas provided by the sender in Wei.", quantity(0x2000))),
						"condition": optional(object("Condition for scheduled transaction.", types.Details{
							"block": optional(field(types.Quantity, "Number of the block the transaction is released at.", quantity(1))),
						})),
					}),
					field(types.String, "The account password", examplePassword),
				),
				object("The status of the confirmation, depending on the request type.", transactionResult()),
			),

			"confirmRequestRaw": method("Confirm a request in the signer queue providing signed request.",
				params(
					field(types.Quantity, "Integer - The request id", quantity(1)),
					field(types.Data, "Signed request (RLP encoded transaction)", exampleData),
				),
				object("The status of the confirmation, depending on the request type.", transactionResult()),
			),

			"confirmRequestWithToken": method("Confirm specific request with token.",
				params(
					field(types.Quantity, "The request id.", quantity(1)),
					object("Modify the transaction before confirmation.", types.Details{
						"gasPrice": optional(field(types.Quantity, "Modify the gas price provided by the sender in Wei.", quantity(0x1000))),
						"gas":      optional(field(types.Quantity, "Gas provided by the sender in Wei.", quantity(0x2000))),
					}),
					field(types.String, "Password (initially) or a token returned by the previous call.", examplePassword),
				),
				object("Status.", types.Details{
					"result": field(types.Hash, "The status of the confirmation, depending on the request type.", exampleHash),
					"token":  field(types.String, "Token used to authenticate the next request.", "JYo8-xyRJ-Eb7M-kmRu"),
				}),
			),

			"generateAuthorizationToken": method("Generates a new authorization token.",
				nil,
				field(types.String, "The new authorization token.", "bNGY-iIPB-j7zK-RSYZ"),
			),

			"generateWebProxyAccessToken": method("Generates a new web proxy access token.",
				nil,
				field(types.String, "The new web proxy access token.", "MOWm0tEJjwthDiTU"),
			),

			"rejectRequest": method("Rejects a request in the signer queue",
				params(field(types.Quantity, "Integer - The request id", quantity(1))),
				field(types.Boolean, "The status of the rejection", true),
			),

			"requestsToConfirm": method("Returns a list of the transactions awaiting authorization.",
				nil,
				field(types.Array, "A list of the outstanding transactions.", []interface{}{types.Elided}),
			),
		},
	}
}
