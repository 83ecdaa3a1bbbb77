package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// SAScheduleTuple is SAScheduleTupleType. SAScheduleTupleID is ranged
// [1,255] (8-bit, bias 1), the exact worked example in spec §8
// scenario S4 (wire 0x00 -> 1, wire 0xFE -> 255). SalesTariff is
// optional.
type SAScheduleTuple struct {
	ID             uint8
	Schedule       PMaxSchedule
	SalesTariff    SalesTariff
	HasSalesTariff bool
}

const (
	saTupleS0 = iota
	saTupleS1
	saTupleS2
)

func saScheduleTupleTable(v *SAScheduleTuple) grammar.Table {
	return grammar.Table{
		saTupleS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: saTupleS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeRangedInt(r, 8, 1)
					v.ID = uint8(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeRangedInt(w, int64(v.ID), 8, 1, 256)
				},
			},
		}},
		saTupleS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: saTupleS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePMaxSchedule(r)
					v.Schedule = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePMaxSchedule(w, v.Schedule)
				},
			},
		}},
		saTupleS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Present: func() bool { return v.HasSalesTariff },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeSalesTariff(r)
					v.SalesTariff = val
					v.HasSalesTariff = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeSalesTariff(w, v.SalesTariff)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeSAScheduleTuple decodes an SAScheduleTupleType from r.
func DecodeSAScheduleTuple(r grammar.BitSource) (SAScheduleTuple, error) {
	var v SAScheduleTuple
	err := grammar.Decode(r, saScheduleTupleTable(&v), saTupleS0)
	return v, err
}

// EncodeSAScheduleTuple encodes v to w.
func EncodeSAScheduleTuple(w grammar.BitSink, v SAScheduleTuple) error {
	return grammar.Encode(w, saScheduleTupleTable(&v), saTupleS0)
}

// SAScheduleList is SAScheduleListType: at most MaxSAScheduleTuples
// offered schedules (spec §3.1).
type SAScheduleList struct {
	Tuples []SAScheduleTuple
}

const saScheduleListBase = 0

func saScheduleListTable(v *SAScheduleList) grammar.Table {
	next := saScheduleListBase + MaxSAScheduleTuples + 1
	chain := grammar.ArrayChain(saScheduleListBase, MaxSAScheduleTuples, next, false,
		func(i int) bool { return i < len(v.Tuples) },
		func(r grammar.BitSource, i int) error {
			tuple, err := DecodeSAScheduleTuple(r)
			v.Tuples = append(v.Tuples, tuple)
			return err
		},
		func(w grammar.BitSink, i int) error {
			return EncodeSAScheduleTuple(w, v.Tuples[i])
		},
	)
	table := make(grammar.Table, len(chain)+1)
	copy(table, chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeSAScheduleList decodes an SAScheduleListType from r.
func DecodeSAScheduleList(r grammar.BitSource) (SAScheduleList, error) {
	var v SAScheduleList
	err := grammar.Decode(r, saScheduleListTable(&v), saScheduleListBase)
	return v, err
}

// EncodeSAScheduleList encodes v to w. See EncodePMaxSchedule for why the
// bound is checked explicitly rather than relying on the grammar's
// structural refusal alone.
func EncodeSAScheduleList(w grammar.BitSink, v SAScheduleList) error {
	if len(v.Tuples) > MaxSAScheduleTuples {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"Tuples"}, "SAScheduleList tuple count exceeds bound")
	}
	return grammar.Encode(w, saScheduleListTable(&v), saScheduleListBase)
}
