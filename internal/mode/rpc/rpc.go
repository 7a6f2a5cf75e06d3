// ABOUTME: RPC mode exposing the key parser to other runtimes
// ABOUTME: JSONL-based protocol: one request per input line, one response per output line

package rpc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mauromedda/termkeys/internal/log"
)

// Server handles RPC requests from an external client.
type Server struct {
	reader  *bufio.Scanner
	writer  io.Writer
	handler func(Request) Response
}

// NewServer creates an RPC server reading requests from r and writing
// responses to w.
func NewServer(r io.Reader, w io.Writer, handler func(Request) Response) *Server {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024)
	return &Server{
		reader:  scanner,
		writer:  w,
		handler: handler,
	}
}

// Run serves requests until the reader is exhausted.
func (s *Server) Run() error {
	for s.reader.Scan() {
		line := s.reader.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if err := s.sendError("", ErrCodeParse, fmt.Sprintf("parse error: %v", err)); err != nil {
				return err
			}
			continue
		}
		log.Debug("rpc: %s id=%s", req.Method, req.ID)

		resp := s.handler(req)
		resp.ID = req.ID

		data, err := json.Marshal(resp)
		if err != nil {
			if err := s.sendError(req.ID, ErrCodeInternal, fmt.Sprintf("internal error: %v", err)); err != nil {
				return err
			}
			continue
		}

		data = append(data, '\n')
		if _, err := s.writer.Write(data); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}

	return s.reader.Err()
}

func (s *Server) sendError(id string, code int, message string) error {
	resp := Response{
		ID:    id,
		Error: &Error{Code: code, Message: message},
	}
	data, _ := json.Marshal(resp)
	data = append(data, '\n')
	if _, err := s.writer.Write(data); err != nil {
		return fmt.Errorf("writing error response: %w", err)
	}
	return nil
}
