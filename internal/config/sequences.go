// ABOUTME: YAML sequence file declaring custom byte sequences, custom key names and actions
// ABOUTME: Parsed with gopkg.in/yaml.v3; literal sequences are NFC-normalized before conversion

package config

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSequence is returned for an entry with neither bytes nor hex.
	ErrNoSequence = errors.New("entry needs bytes or hex")
	// ErrAmbiguousSequence is returned for an entry with both bytes and hex.
	ErrAmbiguousSequence = errors.New("entry has both bytes and hex")
)

// SequenceEntry maps one byte sequence to a key name and, optionally, an
// action bound to that key.
type SequenceEntry struct {
	Bytes  string `yaml:"bytes,omitempty"`
	Hex    string `yaml:"hex,omitempty"`
	Key    string `yaml:"key"`
	Action string `yaml:"action,omitempty"`

	// Line is the entry's line in the source file, for error messages.
	Line int `yaml:"-"`
}

// SequenceFile is the parsed form of sequences.yaml:
//
//	custom_keys: [go-top, go-bottom]
//	actions:
//	  ControlC: quit
//	  Any: self-insert
//	sequences:
//	  - bytes: "gg"
//	    key: go-top
//	    action: cursor-top
//	  - hex: "1b 5b 31 3b 33 41"
//	    key: ControlUp
type SequenceFile struct {
	Path       string
	CustomKeys []string

	// Actions binds key names to actions without a sequence of their own.
	Actions   map[string]string
	Sequences []SequenceEntry
}

// LoadSequenceFile reads and parses path.
func LoadSequenceFile(path string) (*SequenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sequence file: %w", err)
	}
	f, err := ParseSequenceFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// ParseSequenceFile parses sequence file content. Unknown top-level fields
// are rejected; every entry's sequence is validated.
func ParseSequenceFile(data []byte) (*SequenceFile, error) {
	var doc struct {
		CustomKeys []string          `yaml:"custom_keys"`
		Actions    map[string]string `yaml:"actions"`
		Sequences  []yaml.Node       `yaml:"sequences"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse sequences YAML: %w", err)
	}

	f := &SequenceFile{CustomKeys: doc.CustomKeys, Actions: doc.Actions}
	for i := range doc.Sequences {
		n := &doc.Sequences[i]
		var e SequenceEntry
		if err := n.Decode(&e); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		e.Line = n.Line
		if strings.TrimSpace(e.Key) == "" {
			return nil, fmt.Errorf("line %d: entry has no key", n.Line)
		}
		if _, err := e.Seq(); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		f.Sequences = append(f.Sequences, e)
	}
	return f, nil
}

// Seq returns the entry's byte sequence. Literal bytes are NFC-normalized so
// that a composed character typed by the terminal matches a decomposed one
// written in the file.
func (e SequenceEntry) Seq() ([]byte, error) {
	switch {
	case e.Bytes != "" && e.Hex != "":
		return nil, ErrAmbiguousSequence
	case e.Bytes != "":
		return []byte(norm.NFC.String(e.Bytes)), nil
	case e.Hex != "":
		return parseHex(e.Hex)
	default:
		return nil, ErrNoSequence
	}
}

// parseHex accepts pairs separated by spaces, colons or nothing, with an
// optional 0x prefix per pair.
func parseHex(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ':' || r == ','
	})
	var out []byte
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", f, err)
		}
		out = append(out, b...)
	}
	if len(out) == 0 {
		return nil, ErrNoSequence
	}
	return out, nil
}
