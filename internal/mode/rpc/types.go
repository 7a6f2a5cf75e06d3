// ABOUTME: RPC request/response envelope types
// ABOUTME: JSON-serializable types shared by the server and the router

package rpc

// Request represents an RPC request from an external client.
type Request struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

// Response represents an RPC response to an external client.
type Response struct {
	ID     string `json:"id"`
	Result any    `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// Error represents an RPC error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Methods
const (
	MethodParserCreate  = "parser.create"
	MethodParserFeed    = "parser.feed"
	MethodParserFlush   = "parser.flush"
	MethodParserReset   = "parser.reset"
	MethodParserInsert  = "parser.insert"
	MethodParserDestroy = "parser.destroy"
	MethodParserState   = "parser.state"
	MethodKeysList      = "keys.list"
)
