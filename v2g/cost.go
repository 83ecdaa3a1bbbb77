package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// Cost is CostType, the worked example in spec §4.5: three fields
// (costKind enum, amount uint32, optional amountMultiplier ranged int)
// forming a linear 4-state DFA.
type Cost struct {
	Kind             CostKind
	Amount           uint32
	AmountMultiplier int8
	HasMultiplier    bool
}

// Grammar state ids for Cost, matching spec §4.5's S0..S3 naming exactly:
// S0 --(EC=0, START costKind)--> S1
// S1 --(EC=0, START amount)----> S2
// S2 --(EC=0, START amountMultiplier)--> S3 ; S2 --(EC=1, END)--> DONE
// S3 --(EC=0, END)--> DONE
const (
	costS0 = iota
	costS1
	costS2
	costS3
)

func costTable(v *Cost) grammar.Table {
	return grammar.Table{
		costS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: costS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(costKindCardinality))
					v.Kind = CostKind(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Kind), int(costKindCardinality))
				},
			},
		}},
		costS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: costS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.Amount = uint32(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.Amount))
				},
			},
		}},
		costS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: costS3, Simple: true,
				Present: func() bool { return v.HasMultiplier },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeRangedInt(r, 3, -3)
					v.AmountMultiplier = int8(val)
					v.HasMultiplier = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeRangedInt(w, int64(v.AmountMultiplier), 3, -3, 3)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
		costS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeCost decodes a CostType from r (spec §8 scenario S1 exercises this
// exact state machine and the END-element short path from S2).
func DecodeCost(r grammar.BitSource) (Cost, error) {
	var v Cost
	err := grammar.Decode(r, costTable(&v), costS0)
	return v, err
}

// EncodeCost encodes v to w.
func EncodeCost(w grammar.BitSink, v Cost) error {
	return grammar.Encode(w, costTable(&v), costS0)
}
