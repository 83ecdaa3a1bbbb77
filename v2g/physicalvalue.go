package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// PhysicalValue is PhysicalValueType: a scaled integer quantity, value *
// 10^multiplier in the given unit (spec §3.1: "unitMultiplierType is 3 bits
// with min -3"). Schema field order is Multiplier, Unit, Value.
type PhysicalValue struct {
	Multiplier int8
	Unit       UnitSymbol
	Value      int16
}

const (
	physicalValueS0 = iota
	physicalValueS1
	physicalValueS2
	physicalValueS3
)

func physicalValueTable(v *PhysicalValue) grammar.Table {
	return grammar.Table{
		physicalValueS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: physicalValueS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeRangedInt(r, 3, -3)
					v.Multiplier = int8(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeRangedInt(w, int64(v.Multiplier), 3, -3, 3)
				},
			},
		}},
		physicalValueS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: physicalValueS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(unitSymbolCardinality))
					v.Unit = UnitSymbol(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Unit), int(unitSymbolCardinality))
				},
			},
		}},
		physicalValueS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: physicalValueS3, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarInt(r, 16)
					v.Value = int16(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarInt(w, int64(v.Value))
				},
			},
		}},
		physicalValueS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodePhysicalValue decodes a PhysicalValueType from r.
func DecodePhysicalValue(r grammar.BitSource) (PhysicalValue, error) {
	var v PhysicalValue
	err := grammar.Decode(r, physicalValueTable(&v), physicalValueS0)
	return v, err
}

// EncodePhysicalValue encodes v to w.
func EncodePhysicalValue(w grammar.BitSink, v PhysicalValue) error {
	return grammar.Encode(w, physicalValueTable(&v), physicalValueS0)
}
