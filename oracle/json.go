package oracle

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSON accepts a probe string iff it decodes as a single, complete JSON
// value with no trailing data. It gives the synthesizer a second
// structured-text target whose repetition structure (array elements,
// object members) differs from XML's element nesting, which is useful
// for exercising Plus/Alt splitting on the comma-separated forms JSON
// uses everywhere.
var JSON Oracle = jsonOracle{}

type jsonOracle struct{}

func (jsonOracle) Query(s string) (accepted bool) {
	defer func() {
		if recover() != nil {
			accepted = false
		}
	}()

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return false
	}
	// Reject trailing garbage after the first value so "1 2" isn't
	// mistaken for the single value "1".
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return false
	}
	return true
}
