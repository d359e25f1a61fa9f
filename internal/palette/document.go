package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a parsed palette document: a JSON object whose entry order
// is preserved. Order matters twice over: it decides the order styles
// resolve in, and through that the concatenation order of the flat search
// array that breaks exact-distance ties.
type Document struct {
	entries []DocumentEntry
}

// DocumentEntry is one top-level key/value pair of a palette document.
// The value is kept raw until its shape is known.
type DocumentEntry struct {
	Key   string
	Value json.RawMessage
}

// ParseDocument parses raw JSON into an order-preserving document.
// The top-level value must be a JSON object.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid palette document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &Error{Kind: ErrDocumentNotObject}
	}

	doc := &Document{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid palette document: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid palette document: unexpected token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid palette document: %w", err)
		}
		doc.entries = append(doc.entries, DocumentEntry{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid palette document: %w", err)
	}

	return doc, nil
}

// Len returns the number of top-level entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns the top-level entries in document order.
func (d *Document) Entries() []DocumentEntry {
	return d.entries
}

// Remove deletes and returns the first entry with the given key.
// A second Remove of the same key reports it as absent, which is how a
// duplicated style request surfaces as an error.
func (d *Document) Remove(key string) (json.RawMessage, bool) {
	for i, e := range d.entries {
		if e.Key == key {
			d.entries = append(d.entries[:i:i], d.entries[i+1:]...)
			return e.Value, true
		}
	}
	return nil, false
}

// Clone returns a copy whose entry list can be consumed without
// affecting the receiver.
func (d *Document) Clone() *Document {
	entries := make([]DocumentEntry, len(d.entries))
	copy(entries, d.entries)
	return &Document{entries: entries}
}

// isObject reports whether a raw JSON value is an object.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
