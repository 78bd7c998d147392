package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It is the most portable option: any decoder that understands JSON can
// read the payload. Containers encode as plain element arrays (nested per
// row for matrices), so the bytes carry no library-specific framing.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is chosen explicitly.
//
// This only affects newly written snapshots. Existing files are
// self-describing and are opened with the codec named in their header.
var Default Codec = GoJSON{}
