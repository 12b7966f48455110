// Package wire defines the on-wire shape of an encoded telemetry record.
//
// A record is serialized as a single CBOR map with exactly three members,
// emitted in this fixed order:
//
//	"h"  header: resource paths, in column creation order
//	"f"  factors: timestamp factor followed by one factor per column
//	"s"  samples: row-major flat array, each row being one encoded timestamp
//	     followed by one value (or type default) per column
//
// The member names, their order, and the use of definite-length containers are
// a compatibility contract with the remote management server and must not
// change. Map members are therefore encoded in struct field order (SortNone),
// not in the canonical sorted order, which would emit "f" before "h".
package wire

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// MaxEncodedSize is the default bound for one encoded record container.
// It mirrors the transmit buffer of the management transport.
const MaxEncodedSize = 4096

// Container is the top-level encoded form of one record.
//
// S holds len(H)+1 entries per timestamp row: the encoded timestamp (uint64)
// followed by one entry per column, each of which is an int64, float64, bool
// or string depending on the column type.
type Container struct {
	H []string  `cbor:"h"`
	F []float64 `cbor:"f"`
	S []any     `cbor:"s"`
}

// Rows returns the number of timestamp rows in the sample array, or 0 when
// the column layout does not divide the sample array evenly.
func (c *Container) Rows() int {
	stride := len(c.H) + 1
	if len(c.S)%stride != 0 {
		return 0
	}

	return len(c.S) / stride
}

// encMode preserves struct field order (the member-order contract above),
// always emits float64 for floating point members to match the server's
// decoder, and encodes empty columns as empty arrays rather than null.
var encMode cbor.EncMode

// decMode accepts standard CBOR and decodes any-typed sample entries into
// map[string]any-compatible types, mainly for tests and diagnostics.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortNone,
		ShortestFloat: cbor.ShortestFloatNone,
		NilContainers: cbor.NilContainerAsEmpty,
		IndefLength:   cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Decode every integer member (timestamps included) as int64 so
		// any-typed sample entries come back with one predictable Go type.
		IntDec: cbor.IntDecConvertSigned,
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using the record wire settings.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// MarshalTo encodes v to CBOR and writes it to w.
func MarshalTo(w io.Writer, v any) error {
	return encMode.NewEncoder(w).Encode(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
