// ABOUTME: Request/response schema types for the parser RPC methods
// ABOUTME: Byte payloads travel as base64 strings; text is an alternative for printable input

package rpc

// CreateParams configures parser.create. Zero values take the server's
// defaults.
type CreateParams struct {
	PasteLimit *int `json:"paste_limit,omitempty"`
}

// CreateResult is the response payload for parser.create.
type CreateResult struct {
	Handle string `json:"handle"`
}

// HandleParams addresses an existing parser.
type HandleParams struct {
	Handle string `json:"handle"`
}

// FeedParams is the payload of parser.feed. Data wins over Text when both
// are set.
type FeedParams struct {
	Handle string `json:"handle"`
	Data   []byte `json:"data,omitempty"`
	Text   string `json:"text,omitempty"`
}

// InsertParams is the payload of parser.insert.
type InsertParams struct {
	Handle string `json:"handle"`
	Data   []byte `json:"data,omitempty"`
	Text   string `json:"text,omitempty"`
	Key    string `json:"key"`
}

// EventsResult is the response payload for parser.feed and parser.flush.
type EventsResult struct {
	Events Events `json:"events"`
}

// OKResult acknowledges methods without a payload.
type OKResult struct {
	OK bool `json:"ok"`
}

// StateResult is the response payload for parser.state.
type StateResult struct {
	Mode    string `json:"mode"`
	Pending []byte `json:"pending"`
}

// KeyInfo describes one key tag and the built-in sequences producing it.
type KeyInfo struct {
	Name      string   `json:"name"`
	Code      uint32   `json:"code"`
	Sequences []string `json:"sequences,omitempty"`
}

// KeysResult is the response payload for keys.list.
type KeysResult struct {
	Keys []KeyInfo `json:"keys"`
}

func payload(data []byte, text string) []byte {
	if len(data) > 0 {
		return data
	}
	return []byte(text)
}
