// ABOUTME: Handler implementations for the parser RPC methods
// ABOUTME: Dispatches requests to handlers that validate params and act on registry handles

package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mauromedda/termkeys/internal/keybindings"
	"github.com/mauromedda/termkeys/pkg/tui/input"
	"github.com/mauromedda/termkeys/pkg/tui/key"
)

// HandlerFunc processes an RPC request's params and returns a Response.
type HandlerFunc func(params json.RawMessage) Response

// Router dispatches RPC requests to registered handlers by method name.
type Router struct {
	handlers map[string]HandlerFunc
}

// NewRouter creates a Router with an empty handler registry.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register associates a method name with a handler function.
func (r *Router) Register(method string, handler HandlerFunc) {
	r.handlers[method] = handler
}

// Handle dispatches a request to the registered handler, or returns
// a method-not-found error if no handler is registered.
func (r *Router) Handle(req Request) Response {
	h, ok := r.handlers[req.Method]
	if !ok {
		return Response{
			ID:    req.ID,
			Error: NewMethodNotFoundError(req.Method),
		}
	}

	raw, err := marshalParams(req.Params)
	if err != nil {
		return Response{
			ID:    req.ID,
			Error: NewInvalidParamsError(err.Error()),
		}
	}

	resp := h(raw)
	resp.ID = req.ID
	return resp
}

// marshalParams converts the generic Params field into json.RawMessage
// so handlers can decode it themselves.
func marshalParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	if raw, ok := params.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(params)
}

// Deps holds what the handlers need beyond the registry.
type Deps struct {
	Registry *Registry
	// Keys resolves key names and supplies sequences installed into every
	// new parser. Nil means built-in keys only.
	Keys *keybindings.Manager
	// PasteLimit is the default for parser.create.
	PasteLimit int
}

// RegisterHandlers wires every parser method into the given router.
func RegisterHandlers(r *Router, d *Deps) {
	if d.Registry == nil {
		d.Registry = NewRegistry()
	}
	if d.Keys == nil {
		d.Keys = keybindings.New()
	}

	r.Register(MethodParserCreate, handleCreate(d))
	r.Register(MethodParserFeed, handleFeed(d))
	r.Register(MethodParserFlush, handleFlush(d))
	r.Register(MethodParserReset, handleReset(d))
	r.Register(MethodParserInsert, handleInsert(d))
	r.Register(MethodParserDestroy, handleDestroy(d))
	r.Register(MethodParserState, handleState(d))
	r.Register(MethodKeysList, handleKeysList())
}

// decodeParams unmarshals raw into v; absent params leave v zero.
func decodeParams(raw json.RawMessage, v any) *Error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return NewInvalidParamsError(fmt.Sprintf("invalid params: %v", err))
	}
	return nil
}

// errorResponse maps handler errors onto RPC error codes.
func errorResponse(err error) Response {
	switch {
	case errors.Is(err, ErrUnknownHandle):
		return Response{Error: &Error{Code: ErrCodeUnknownHandle, Message: err.Error()}}
	case errors.Is(err, key.ErrEmptySequence):
		return Response{Error: NewEmptySequenceError()}
	case errors.Is(err, keybindings.ErrUnknownKey):
		return Response{Error: NewInvalidParamsError(err.Error())}
	default:
		return Response{Error: NewInternalError(err.Error())}
	}
}

func handleCreate(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p CreateParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		limit := d.PasteLimit
		if p.PasteLimit != nil {
			if *p.PasteLimit < 0 {
				return Response{Error: NewInvalidParamsError("paste_limit must not be negative")}
			}
			limit = *p.PasteLimit
		}

		parser := input.NewParser(input.WithPasteLimit(limit))
		if err := d.Keys.Apply(parser); err != nil {
			return errorResponse(err)
		}
		return Response{Result: CreateResult{Handle: d.Registry.Add(parser)}}
	}
}

func handleFeed(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p FeedParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		var events []key.Event
		err := d.Registry.With(p.Handle, func(parser *input.Parser) error {
			events = parser.Feed(payload(p.Data, p.Text))
			return nil
		})
		if err != nil {
			return errorResponse(err)
		}
		return Response{Result: EventsResult{Events: events}}
	}
}

func handleFlush(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p HandleParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		var events []key.Event
		err := d.Registry.With(p.Handle, func(parser *input.Parser) error {
			events = parser.Flush()
			return nil
		})
		if err != nil {
			return errorResponse(err)
		}
		return Response{Result: EventsResult{Events: events}}
	}
}

func handleReset(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p HandleParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		err := d.Registry.With(p.Handle, func(parser *input.Parser) error {
			parser.Reset()
			return nil
		})
		if err != nil {
			return errorResponse(err)
		}
		return Response{Result: OKResult{OK: true}}
	}
}

func handleInsert(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p InsertParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		k, err := d.Keys.ResolveKey(p.Key)
		if err != nil {
			return errorResponse(err)
		}
		err = d.Registry.With(p.Handle, func(parser *input.Parser) error {
			return parser.Insert(payload(p.Data, p.Text), k)
		})
		if err != nil {
			return errorResponse(err)
		}
		return Response{Result: OKResult{OK: true}}
	}
}

func handleDestroy(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p HandleParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		if err := d.Registry.Remove(p.Handle); err != nil {
			return errorResponse(err)
		}
		return Response{Result: OKResult{OK: true}}
	}
}

func handleState(d *Deps) HandlerFunc {
	return func(raw json.RawMessage) Response {
		var p HandleParams
		if e := decodeParams(raw, &p); e != nil {
			return Response{Error: e}
		}
		var result StateResult
		err := d.Registry.With(p.Handle, func(parser *input.Parser) error {
			result = StateResult{Mode: parser.Mode().String(), Pending: parser.Pending()}
			return nil
		})
		if err != nil {
			return errorResponse(err)
		}
		return Response{Result: result}
	}
}

func handleKeysList() HandlerFunc {
	seqs := make(map[key.Key][]string)
	for _, e := range key.NewTable().Entries() {
		seqs[e.Key] = append(seqs[e.Key], key.FormatBytes(e.Seq))
	}

	return func(_ json.RawMessage) Response {
		names := key.Names()
		keys := make([]KeyInfo, 0, len(names))
		for _, name := range names {
			k, err := key.ParseName(name)
			if err != nil {
				continue
			}
			keys = append(keys, KeyInfo{Name: name, Code: k.Code(), Sequences: seqs[k]})
		}
		return Response{Result: KeysResult{Keys: keys}}
	}
}
