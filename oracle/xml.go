package oracle

import (
	"bytes"
	"encoding/xml"
	"io"
)

// XML is the stock oracle spec.md §6 names explicitly: it wraps the
// probe string in a synthesized root element, `"<i> " + s + "</i>"`, so
// that well-formed XML fragments (which need not themselves be
// single-rooted) can be tested, and accepts iff the wrapped document
// parses to completion.
var XML Oracle = xmlOracle{}

type xmlOracle struct{}

func (xmlOracle) Query(s string) (accepted bool) {
	defer func() {
		// The oracle contract requires any internal exception to be
		// translated to false rather than propagated.
		if recover() != nil {
			accepted = false
		}
	}()

	wrapped := "<i> " + s + "</i>"
	dec := xml.NewDecoder(bytes.NewReader([]byte(wrapped)))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
	}
}
