package interfaces

import "github.com/DOIDFoundation/rpcdoc/types"

const (
	sectionNet     = "Network information"
	sectionNode    = "Node settings"
	sectionQueue   = "Transactions queue"
	sectionSigner  = "Signing"
	sectionUpdates = "Updates"
)

func accountMethod(m *types.Method) *types.Method {
	m.Subdoc = "accounts"
	return m
}

func setMethod(m *types.Method) *types.Method {
	m.Subdoc = "set"
	return m
}

func inSection(section string, m *types.Method) *types.Method {
	m.Section = section
	return m
}

func peerCounts() types.Details {
	return types.Details{
		"active":    field(types.Quantity, "Number of active peers.", quantity(0)),
		"connected": field(types.Quantity, "Number of connected peers.", quantity(25)),
		"max":       field(types.Quantity, "Maximum number of connected peers.", quantity(25)),
		"peers":     field(types.Array, "List of all peers with details.", []interface{}{types.Elided}),
	}
}

func versionInfo() types.Details {
	return types.Details{
		"hash":  field(types.Data, "20 Byte hash of the commit the release was built from.", "0x2ae8b4ca278dd7b896090366615fef81cbbbc0e0"),
		"track": field(types.String, "Release track, one of `stable`, `beta`, `nightly` or `unknown`.", "beta"),
		"version": object("Semantic version of the release.", types.Details{
			"major": field(types.Number, "Major version.", 1),
			"minor": field(types.Number, "Minor version.", 6),
			"patch": field(types.Number, "Patch version.", 0),
		}),
	}
}

func parity() *types.Group {
	return &types.Group{
		Preamble: "Methods specific to this client. Account management and node configuration live in the " +
			"[`parity_accounts`](parity_accounts.md) and [`parity_set`](parity_set.md) modules.",
		Methods: map[string]*types.Method{
			"acceptNonReservedPeers": setMethod(method("Set Parity to accept non-reserved peers (default behavior).",
				nil,
				nothing(),
			)),

			"addReservedPeer": setMethod(method("Add a reserved peer.",
				params(field(types.String, "Enode address", "enode://a979fb575495b8d6db44f750317d0f4622bf4c2aa3365d6af7c284339968eef29b69ad0dce72a4d8db5ebb4968de0e3bec910127f134779fbcb0cb6d3331163c@22.99.55.44:7770")),
				nothing(),
			)),

			"allAccountsInfo": accountMethod(method("Returns a map of accounts as an object.",
				nil,
				object("Account metadata, keyed by address.", types.Details{
					"name": field(types.String, "Account name.", "Foo"),
					"meta": field(types.String, "Encoded JSON string the defines additional account metadata.", "{}"),
					"uuid": optional(field(types.String, "The account Uuid, or `null` if not available/unknown/not applicable.", "0b9e70e6-235b-682d-a15c-2a98c71b3945")),
				}),
			)),

			"chainStatus": inSection(sectionNet, method("Returns the information on warp sync blocks.",
				nil,
				object("The status object.", types.Details{
					"blockGap": optional(field(types.Array, "Describes the gap in the blockchain, if there is one: (first, last)", []interface{}{quantity(1), quantity(2)})),
				}),
			)),

			"checkRequest": inSection(sectionSigner, method("Returns the transaction hash of the requestId (received from parity_postTransaction) if the request was confirmed.",
				params(field(types.Quantity, "The requestId to check for.", quantity(1))),
				field(types.Hash, "32 Bytes - the transaction hash, or `null` if the request is not yet confirmed.", exampleHash),
			)),

			"consensusCapability": inSection(sectionUpdates, method("Returns an object or string detailing the state of parity capability of maintaining consensus.",
				nil,
				types.Text("Either `\"capable\"`, `{\"capableUntil\":N}`, `{\"incapableSince\":N}` or `\"unknown\"` (`N` is a block number)."),
			)),

			"dappsPort": inSection(sectionNode, method("Returns the port the dapps are running on, error if not enabled.",
				nil,
				field(types.Quantity, "The port number.", quantity(8080)),
			)),

			"defaultExtraData": inSection(sectionNode, method("Returns the default extra data.",
				nil,
				field(types.Data, "Extra data.", "0xd5830106008650617269747986312e31342e30826c69"),
			)),

			"dropNonReservedPeers": setMethod(method("Set Parity to accept only reserved peers.",
				nil,
				nothing(),
			)),

			"enode": inSection(sectionNode, method("Returns the node enode URI.",
				nil,
				field(types.String, "Enode URI.", "enode://050929adcfe47dbe0b002cb7ef2bf91ca74f77c4e0f68730e39e717f1ce38908542369ae017148bee4e0d968340885e2ad5adea4acd19c95055080a4b625df6a@172.17.0.1:30303"),
			)),

			"executeUpgrade": setMethod(method("Attempts to upgrade Parity to the version specified in [parity_upgradeReady](parity.md#parity_upgradeready).",
				nil,
				field(types.Boolean, "returns `true` if the upgrade to the new release was successfully executed, `false` if not.", true),
			)),

			"extraData": inSection(sectionNode, method("Returns currently set extra data.",
				nil,
				field(types.Data, "Extra data.", "0xd5830106008650617269747986312e31342e30826c69"),
			)),

			"gasFloorTarget": inSection(sectionNode, method("Returns current target for gas floor.",
				nil,
				formatted(field(types.Quantity, "Gas floor target.", quantity(4700000)), "outputBigNumberFormatter"),
			)),

			"gasPriceHistogram": inSection(sectionNet, method("Returns a snapshot of the historic gas prices.",
				nil,
				object("Historic values", types.Details{
					"bucketBounds": field(types.Array, "Array of bound values.", []interface{}{quantity(0x4a817c800), quantity(0x525433d01), quantity(0x5a26eb202)}),
					"counts":       field(types.Array, "Array of counts.", []interface{}{487, 7, 3}),
				}),
			)),

			"generateSecretPhrase": accountMethod(method("Creates a secret phrase that can be associated with an account.",
				nil,
				field(types.String, "The secret phrase.", "boasting breeches reshape reputably exit handrail stony jargon moneywise unhinge handed ruby"),
			)),

			"getDappAddresses": accountMethod(method("Returns the list of accounts available to a specific dapp.",
				params(field(types.String, "Dapp Id.", "web")),
				field(types.Array, "The list of available accounts.", []interface{}{exampleAddress, exampleAddress3}),
			)),

			"hashContent": setMethod(method("Creates a hash of a file at a given URL.",
				params(field(types.String, "The url of the content.", "https://raw.githubusercontent.com/ethcore/parity/master/README.md")),
				field(types.Hash, "The Keccak-256 hash of the content.", exampleHash2),
			)),

			"killAccount": accountMethod(method("Deletes an account.",
				params(
					field(types.Address, "The account to remove.", exampleAddress3),
					field(types.String, "Account password.", examplePassword),
				),
				field(types.Boolean, "`true` on success.", true),
			)),

			"listGethAccounts": accountMethod(method("Returns a list of the accounts available from Geth.",
				nil,
				field(types.Array, "20 Bytes addresses owned by the client.", []interface{}{exampleAddress2}),
			)),

			"localTransactions": inSection(sectionQueue, method("Returns an object of current and past local transactions.",
				nil,
				field(types.Object, "Mapping of transaction hashes and status objects status object.", map[string]interface{}{
					exampleHash: map[string]interface{}{"status": "mined"},
				}),
			)),

			"minGasPrice": inSection(sectionNode, method("Returns currently set minimal gas price.",
				nil,
				formatted(field(types.Quantity, "Minimal gas price.", quantity(11262783488)), "outputBigNumberFormatter"),
			)),

			"mode": inSection(sectionNode, method("Get the mode. Results one of: `\"active\"`, `\"passive\"`, `\"dark\"`, `\"offline\"`.",
				nil,
				field(types.String, "The mode.", "active"),
			)),

			"netChain": inSection(sectionNet, method("Returns the name of the connected chain.",
				nil,
				field(types.String, "chain name.", "homestead"),
			)),

			"netPeers": inSection(sectionNet, method("Returns number of peers.",
				nil,
				object("Number of peers", peerCounts()),
			)),

			"netPort": inSection(sectionNet, method("Returns network port the node is listening on.",
				nil,
				field(types.Quantity, "Port number.", quantity(30303)),
			)),

			"newAccountFromPhrase": accountMethod(method("Creates a new account from a recovery phrase.",
				params(
					field(types.String, "Recovery phrase.", "stylus outing overhand dime radial seducing harmless uselessly evasive tastiness eradicate imperfect"),
					field(types.String, "Password.", examplePassword),
				),
				field(types.Address, "The created address.", exampleAddress),
			)),

			"newAccountFromSecret": accountMethod(method("Creates a new account from a private ethstore secret key.",
				params(
					field(types.Data, "Secret, 32-byte hex", exampleHash3),
					field(types.String, "Password", examplePassword),
				),
				field(types.Address, "The created address.", exampleAddress),
			)),

			"nextNonce": inSection(sectionQueue, method("Returns next available nonce for transaction from given account. Includes pending block and transaction queue.",
				params(field(types.Address, "Account", exampleAddress)),
				field(types.Quantity, "Next valid nonce", quantity(12)),
			)),

			"nodeName": inSection(sectionNode, method("Returns node name, set when starting parity with `--identity NAME`.",
				nil,
				field(types.String, "Node name.", "Doge"),
			)),

			"pendingTransactions": inSection(sectionQueue, method("Returns a list of transactions currently in the queue.",
				params(optional(field(types.Quantity, "Limit number of transactions returned.", quantity(5)))),
				field(types.Array, "Transactions ordered by priority", []interface{}{types.Elided}),
			)),

			"phraseToAddress": accountMethod(method("Converts a secret phrase into the corresponding address.",
				params(field(types.String, "The phrase", "stylus outing overhand dime radial seducing harmless uselessly evasive tastiness eradicate imperfect")),
				field(types.Address, "Corresponding address", exampleAddress2),
			)),

			"postTransaction": inSection(sectionSigner, method("Posts a transaction to the signer without waiting for the signer response.",
				params(formatted(object("see [`eth_sendTransaction`](eth.md#eth_sendtransaction).", transactionRequest()), "inputCallFormatter")),
				formatted(field(types.Quantity, "The id of the request to the signer.", quantity(1)), "utils.toDecimal"),
			)),

			"registryAddress": inSection(sectionNode, method("The address for the global registry.",
				nil,
				field(types.Address, "The registry address.", "0x3bb2bb5c6c9c9b7f4ef430b47dc7e026310042ea"),
			)),

			"removeReservedPeer": setMethod(method("Remove a reserved peer.",
				params(field(types.String, "Encode address", "enode://a979fb575495b8d6db44f750317d0f4622bf4c2aa3365d6af7c284339968eef29b69ad0dce72a4d8db5ebb4968de0e3bec910127f134779fbcb0cb6d3331163c@22.99.55.44:7770")),
				nothing(),
			)),

			"setAccountMeta": accountMethod(method("Sets metadata for the account.",
				params(
					field(types.Address, "Address", exampleAddress),
					field(types.String, "Metadata (JSON encoded)", "{\"foo\":\"bar\"}"),
				),
				nothing(),
			)),

			"setAccountName": accountMethod(method("Sets a name for the account.",
				params(
					field(types.Address, "Address", exampleAddress),
					field(types.String, "Name", "Foo"),
				),
				nothing(),
			)),

			"setAuthor": setMethod(method("Changes author (coinbase) for mined blocks.",
				params(formatted(field(types.Address, "20 Bytes - Address", exampleAddress), "inputAddressFormatter")),
				nothing(),
			)),

			"setExtraData": setMethod(method("Changes extra data for newly mined blocks.",
				params(formatted(field(types.Data, "Extra Data", "0x"), "utils.toHex")),
				nothing(),
			)),

			"setGasFloorTarget": setMethod(method("Changes current gas floor target.",
				params(formatted(field(types.Quantity, "Gas floor target.", quantity(1000)), "utils.toHex")),
				nothing(),
			)),

			"setMinGasPrice": setMethod(method("Changes minimal gas price for transaction to be accepted to the queue.",
				params(formatted(field(types.Quantity, "Minimal gas price", quantity(1000)), "utils.toHex")),
				nothing(),
			)),

			"setMode": setMethod(method("Changes the operating mode of Parity.",
				params(field(types.String, "The mode to set, one of:\n  * `\"active\"` - Parity continuously syncs the chain.\n  * `\"passive\"` - Parity syncs initially, then sleeps and wakes regularly to resync.\n  * `\"dark\"` - Parity syncs only when the RPC is active.\n  * `\"offline\"` - Parity doesn't sync.\n", "passive")),
				nothing(),
			)),

			"setTransactionsLimit": setMethod(method("Changes limit for transactions in queue.",
				params(formatted(field(types.Quantity, "New Limit", quantity(1000)), "utils.toHex")),
				nothing(),
			)),

			"transactionsLimit": inSection(sectionQueue, method("Changes limit for transactions in queue.",
				nil,
				formatted(field(types.Quantity, "Current max number of transactions in queue.", quantity(1024)), "outputBigNumberFormatter"),
			)),

			"unsignedTransactionsCount": inSection(sectionSigner, method("Returns number of unsigned transactions when running with Trusted Signer. Error otherwise.",
				nil,
				field(types.Quantity, "Number of unsigned transactions", quantity(0)),
			)),

			"upgradeReady": inSection(sectionUpdates, method("Returns a ReleaseInfo object describing the release which is available for upgrade or `null` if none is available.",
				nil,
				object("Details or `null` if no new release is available.", types.Details{
					"binary":      field(types.Hash, "Keccak-256 checksum of the release parity binary.", exampleHash2),
					"fork":        field(types.Quantity, "Block number representing the last known fork for this chain, which may be in the future.", quantity(15100)),
					"is_critical": field(types.Boolean, "Field describing if the release is critical.", false),
					"version":     object("VersionInfo object describing the version.", versionInfo()),
				}),
			)),

			"versionInfo": inSection(sectionUpdates, method("Provides information about running version of Parity.",
				nil,
				object("Information on current version.", versionInfo()),
			)),

			"dappsInterface": {
				Desc:    "Returns the interface the dapps are running on, error if not enabled.",
				Section: sectionNode,
				Nodoc:   "Superseded by parity_dappsUrl",
				Returns: field(types.String, "The interface", "127.0.0.1"),
			},

			"devLogsLevels": {
				Desc:       "Returns current log level settings.",
				Section:    sectionNode,
				Deprecated: true,
				Returns:    field(types.String, "Current log level.", "debug"),
			},
		},
	}
}
