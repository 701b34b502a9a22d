// Package dissect defines the contract shared by all protocol dissectors:
// the dissector function type, the typed errors a dissection step can raise
// and the bounds-checked field decoders dissectors extract integers with.
package dissect

import (
	"fmt"

	"bitbucket.org/zhengyuli/gshark/value"
)

// Dissector interprets data as one protocol layer and returns its value
// tree, or a typed error when the layer's own header cannot be parsed.
//
// A Dissector must be total: for every input, including empty input, it
// returns an outcome. Dissectors are pure functions of their input and are
// safe for concurrent use.
type Dissector func(data []byte) (value.Val, error)

// Underflow reports that fewer bytes are available than a declared or
// implied field or header size requires.
type Underflow struct {
	Expected int
	Have     int
	Message  string
}

func (e *Underflow) Error() string {
	return fmt.Sprintf("underflow (expected %d, have %d): %s", e.Expected, e.Have, e.Message)
}

// InvalidData reports bytes that are present but cannot be interpreted.
type InvalidData string

func (e InvalidData) Error() string {
	return "invalid data: " + string(e)
}

// Raw is the dissector of last resort: it stores data without
// interpretation. It never fails.
func Raw(data []byte) (value.Val, error) {
	return value.Object{{Name: "raw data", Val: value.Bytes(data)}}, nil
}
