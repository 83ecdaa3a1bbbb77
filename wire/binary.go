package wire

import (
	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

// DecodeBinary reads a variable-length unsigned byte count followed by
// exactly that many raw octets (spec §4.2, base64/hex on the schema side,
// raw bytes on the wire). maxBytes is the per-field capacity.
func DecodeBinary(r *bitio.Reader, maxBytes int) ([]byte, error) {
	n, err := DecodeVarUint(r, 32)
	if err != nil {
		return nil, err
	}
	if int(n) > maxBytes {
		return nil, v2gerr.New(v2gerr.CapacityExceeded, nil, "binary value exceeds field capacity")
	}
	buf := make([]byte, n)
	if err := r.ReadBytes(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeBinary writes b as a variable-length byte count followed by the raw
// bytes. Encoding a value whose length exceeds maxBytes fails with
// CapacityExceeded and writes nothing.
func EncodeBinary(w *bitio.Writer, b []byte, maxBytes int) error {
	if len(b) > maxBytes {
		return v2gerr.New(v2gerr.CapacityExceeded, nil, "binary value exceeds field capacity")
	}
	if err := EncodeVarUint(w, uint64(len(b))); err != nil {
		return err
	}
	return w.WriteBytes(b)
}
