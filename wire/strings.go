package wire

import (
	Text "github.com/linkdotnet/golang-stringbuilder"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

// stringLengthBias is the offset applied to the wire length prefix of a
// character string: wire value 0 and 1 are reserved for references into the
// (unsupported, in this profile) EXI string table, so actual_length is
// encoded as actual_length+2 (spec §4.2).
const stringLengthBias = 2

// DecodeString reads a length-prefixed character string. maxChars is the
// per-field capacity; exceeding it fails with CapacityExceeded. A wire
// length below the bias fails with StringValuesNotSupported, since it would
// indicate a reference into the (unimplemented) EXI string table.
func DecodeString(r *bitio.Reader, maxChars int) (string, error) {
	wireLen, err := DecodeVarUint(r, 32)
	if err != nil {
		return "", err
	}
	if wireLen < stringLengthBias {
		return "", v2gerr.New(v2gerr.StringValuesNotSupported, nil, "string length prefix referenced the string table")
	}
	actualLen := int(wireLen) - stringLengthBias
	if actualLen > maxChars {
		return "", v2gerr.New(v2gerr.CapacityExceeded, nil, "string exceeds field capacity")
	}

	sb := Text.StringBuilder{}
	for i := 0; i < actualLen; i++ {
		cp, err := DecodeVarUint(r, 32)
		if err != nil {
			return "", err
		}
		sb.Append(string(rune(cp)))
	}
	return sb.ToString(), nil
}

// EncodeString writes s as a length-prefixed character string. Encoding a
// value whose rune count exceeds maxChars fails with CapacityExceeded and
// writes nothing.
func EncodeString(w *bitio.Writer, s string, maxChars int) error {
	runes := []rune(s)
	if len(runes) > maxChars {
		return v2gerr.New(v2gerr.CapacityExceeded, nil, "string exceeds field capacity")
	}
	if err := EncodeVarUint(w, uint64(len(runes))+stringLengthBias); err != nil {
		return err
	}
	for _, c := range runes {
		if err := EncodeVarUint(w, uint64(c)); err != nil {
			return err
		}
	}
	return nil
}
