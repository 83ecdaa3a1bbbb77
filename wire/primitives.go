// Package wire implements the EXI-profile primitive scalar codecs described
// in spec §4.2 (Component B): booleans, n-bit unsigned integers, variable-
// length integers, schema-ranged integers, enumerations, strings and binary.
// Every function here is a pure transform between a bitio stream and a Go
// value; none of them know about grammar states or message types.
package wire

import (
	"math/bits"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

// DecodeBool reads a 1-bit boolean.
func DecodeBool(r *bitio.Reader) (bool, error) {
	b, err := r.ReadBit()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// EncodeBool writes a 1-bit boolean.
func EncodeBool(w *bitio.Writer, v bool) error {
	if v {
		return w.WriteBit(1)
	}
	return w.WriteBit(0)
}

// DecodeNBitUint reads an n-bit (1 <= n <= 32) unsigned integer, MSB first.
func DecodeNBitUint(r *bitio.Reader, n int) (uint32, error) {
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// EncodeNBitUint writes an n-bit (1 <= n <= 32) unsigned integer.
func EncodeNBitUint(w *bitio.Writer, v uint32, n int) error {
	return w.WriteBits(int(v), n)
}

// maxVarUintGroups bounds how many 7-bit groups a varint of a given bit width
// may contribute before the accumulated value would overflow.
func maxVarUintGroups(width int) int {
	return (width + 6) / 7
}

// DecodeVarUint decodes the EXI unsigned variable-length integer encoding: a
// sequence of 7-bit groups, little-endian in group order, each preceded by a
// 1-bit continuation flag (1 = more groups follow). width is the target bit
// width (16, 32 or 64); input that would overflow it is rejected.
func DecodeVarUint(r *bitio.Reader, width int) (uint64, error) {
	maxGroups := maxVarUintGroups(width)

	var result uint64
	var shift uint
	for i := 0; ; i++ {
		cont, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		group, err := r.ReadBits(7)
		if err != nil {
			return 0, err
		}
		if i >= maxGroups {
			return 0, v2gerr.New(v2gerr.CapacityExceeded, nil, "variable-length integer exceeds target width")
		}
		result |= uint64(group) << shift
		shift += 7
		if cont == 0 {
			break
		}
	}
	if width < 64 && result > (uint64(1)<<uint(width))-1 {
		return 0, v2gerr.New(v2gerr.CapacityExceeded, nil, "variable-length integer exceeds target width")
	}
	return result, nil
}

// EncodeVarUint encodes v as a sequence of 7-bit groups, each preceded by a
// continuation flag.
func EncodeVarUint(w *bitio.Writer, v uint64) error {
	for {
		group := v & 0x7f
		v >>= 7
		if v != 0 {
			if err := w.WriteBit(1); err != nil {
				return err
			}
		} else {
			if err := w.WriteBit(0); err != nil {
				return err
			}
		}
		if err := w.WriteBits(int(group), 7); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// DecodeVarInt decodes the EXI signed variable-length integer encoding: a
// 1-bit sign followed by the unsigned magnitude (magnitude = |value| - 1 when
// negative). width is the target bit width (16, 32 or 64).
func DecodeVarInt(r *bitio.Reader, width int) (int64, error) {
	negative, err := DecodeBool(r)
	if err != nil {
		return 0, err
	}
	mag, err := DecodeVarUint(r, width)
	if err != nil {
		return 0, err
	}
	if negative {
		return -(int64(mag) + 1), nil
	}
	return int64(mag), nil
}

// EncodeVarInt encodes v as a sign bit followed by the unsigned magnitude.
func EncodeVarInt(w *bitio.Writer, v int64) error {
	if v < 0 {
		if err := EncodeBool(w, true); err != nil {
			return err
		}
		return EncodeVarUint(w, uint64(-(v+1)))
	}
	if err := EncodeBool(w, false); err != nil {
		return err
	}
	return EncodeVarUint(w, uint64(v))
}

// RangedBits returns the bit width needed to represent the inclusive range
// [min, max] biased to zero, i.e. ceil(log2(max-min+1)).
func RangedBits(min, max int64) int {
	span := uint64(max - min) // number of representable values minus one
	if span == 0 {
		return 1
	}
	return bits.Len64(span)
}

// DecodeRangedInt reads an n-bit unsigned value biased by min (schema-ranged
// integer, spec §4.2).
func DecodeRangedInt(r *bitio.Reader, n int, min int64) (int64, error) {
	v, err := DecodeNBitUint(r, n)
	if err != nil {
		return 0, err
	}
	return int64(v) + min, nil
}

// EncodeRangedInt writes value biased by min as an n-bit unsigned value.
func EncodeRangedInt(w *bitio.Writer, value int64, n int, min, max int64) error {
	if value < min || value > max {
		return v2gerr.New(v2gerr.CapacityExceeded, nil, "ranged integer out of schema bounds")
	}
	return EncodeNBitUint(w, uint32(value-min), n)
}

// EnumBits returns ceil(log2(cardinality)), the bit width of an enumeration
// with the given number of declared members.
func EnumBits(cardinality int) int {
	if cardinality <= 1 {
		return 1
	}
	return bits.Len(uint(cardinality - 1))
}

// DecodeEnum reads an EnumBits(cardinality)-wide unsigned value and checks it
// against the declared cardinality.
func DecodeEnum(r *bitio.Reader, cardinality int) (int, error) {
	v, err := DecodeNBitUint(r, EnumBits(cardinality))
	if err != nil {
		return 0, err
	}
	if int(v) >= cardinality {
		return 0, v2gerr.New(v2gerr.UnknownEventCode, nil, "enumeration value outside declared cardinality")
	}
	return int(v), nil
}

// EncodeEnum writes ordinal as an EnumBits(cardinality)-wide unsigned value.
func EncodeEnum(w *bitio.Writer, ordinal, cardinality int) error {
	if ordinal < 0 || ordinal >= cardinality {
		return v2gerr.New(v2gerr.UnknownEventCode, nil, "enumeration ordinal outside declared cardinality")
	}
	return EncodeNBitUint(w, uint32(ordinal), EnumBits(cardinality))
}
