package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob is a codec backed by encoding/gob.
//
// Denser and faster than JSON for map-heavy values like track tables, at
// the cost of being Go-specific.
type Gob struct{}

// Marshal encodes the value with gob.
func (Gob) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the gob data into v.
func (Gob) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Name returns the unique name of the codec ("gob").
func (Gob) Name() string { return "gob" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-written snapshots. Existing snapshots are
// self-describing (they store the codec name in their header) and are
// opened by selecting the appropriate codec by name.
var Default Codec = Gob{}
