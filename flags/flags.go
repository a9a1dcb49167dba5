package flags

const (
	Home  = "home"
	Trace = "trace"

	Log_Level = "log.level"

	Output_Dir      = "output.dir"
	Output_Endpoint = "output.endpoint"

	Types_Overrides = "types.overrides"

	Check_Strict = "check.strict"

	RPC_Addr = "rpc.addr"
)
