package example

import (
	"github.com/DOIDFoundation/rpcdoc/types"
)

const (
	Version   = "2.0"
	RequestID = 1
)

// Request is a JSON-RPC request envelope.
type Request struct {
	Version string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// Response is a JSON-RPC response envelope.
type Response struct {
	ID      int         `json:"id"`
	Version string      `json:"jsonrpc"`
	Result  interface{} `json:"result"`
}

// NewRequest assembles the request example of method name, ok is false
// when a param does not resolve.
func NewRequest(name string, params []*types.Field) (*Request, bool) {
	values, ok := ResolveParams(params)
	if !ok {
		return nil, false
	}
	return &Request{Version: Version, Method: name, Params: values, ID: RequestID}, true
}

// NewResponse assembles the response example for returns, ok is false when
// returns does not resolve.
func NewResponse(returns *types.Field) (*Response, bool) {
	result, ok := Resolve(returns)
	if !ok {
		return nil, false
	}
	return &Response{ID: RequestID, Version: Version, Result: result}, true
}

// Compact returns the request as single line JSON, placeholders unquoted.
func (r *Request) Compact() (string, error) {
	return CompactJSON(r)
}

// Pretty returns the response laid out by Stringify.
func (r *Response) Pretty() string {
	return Stringify(map[string]interface{}{
		"id":      r.ID,
		"jsonrpc": r.Version,
		"result":  r.Result,
	})
}
