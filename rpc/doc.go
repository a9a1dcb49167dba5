/*
Package rpc serves a documented schema over JSON-RPC 2.0, based on
[github.com/ethereum/go-ethereum/rpc].

# Example

request:

	{"jsonrpc": "2.0", "method": "rpcdoc_methods", "params": ["net"], "id": 1}

response:

	{"jsonrpc":"2.0","id":1,"result":["net_listening","net_peerCount","net_version"]}

# Request

`method` in request is defined in `{namespace}_{methodName}` format where
  - `namespace` is defined when registering a struct by calling
    [RPC.RegisterName], the docs API is registered as [Namespace]
  - `methodName` is public methods of the struct in uncapitalized form

`params` are the parameters of the public method

# Response

`result` in response is the return values of the public method. Unknown
modules and methods are reported as errors.

# Rendered files

The Markdown reference of a module is served at `/docs/{module}.md`, the
same content `rpcdoc_markdown` returns.

# API List

`rpcdoc`
  - [github.com/DOIDFoundation/rpcdoc/rpc.DocsAPI]
*/
package rpc
