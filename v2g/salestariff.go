package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// SalesTariffEntry is SalesTariffEntryType: the price level in effect
// during a RelativeTimeInterval. EPriceLevel is optional (present only
// when the tariff expresses price as an abstract level), and Cost is an
// optional breakdown (CostType, see cost.go) used instead of or
// alongside a level when the tariff itemizes the charge.
type SalesTariffEntry struct {
	TimeInterval   RelativeTimeInterval
	EPriceLevel    uint8
	HasEPriceLevel bool
	Cost           Cost
	HasCost        bool
}

const (
	tariffEntryS0 = iota
	tariffEntryS1
	tariffEntryS2
)

func salesTariffEntryTable(v *SalesTariffEntry) grammar.Table {
	costTransition := grammar.Transition{Kind: grammar.EventStart, Next: grammar.EEOnly,
		Present: func() bool { return v.HasCost },
		Decode: func(r grammar.BitSource) error {
			val, err := DecodeCost(r)
			v.Cost = val
			v.HasCost = true
			return err
		},
		Encode: func(w grammar.BitSink) error {
			return EncodeCost(w, v.Cost)
		},
	}

	return grammar.Table{
		tariffEntryS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: tariffEntryS1,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeRelativeTimeInterval(r)
					v.TimeInterval = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeRelativeTimeInterval(w, v.TimeInterval)
				},
			},
		}},
		tariffEntryS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: tariffEntryS2, Simple: true,
				Present: func() bool { return v.HasEPriceLevel },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeNBitUint(r, 8)
					v.EPriceLevel = uint8(val)
					v.HasEPriceLevel = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeNBitUint(w, uint32(v.EPriceLevel), 8)
				},
			},
			costTransition,
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
		tariffEntryS2: {Transitions: []grammar.Transition{
			costTransition,
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeSalesTariffEntry decodes a SalesTariffEntryType from r.
func DecodeSalesTariffEntry(r grammar.BitSource) (SalesTariffEntry, error) {
	var v SalesTariffEntry
	err := grammar.Decode(r, salesTariffEntryTable(&v), tariffEntryS0)
	return v, err
}

// EncodeSalesTariffEntry encodes v to w.
func EncodeSalesTariffEntry(w grammar.BitSink, v SalesTariffEntry) error {
	return grammar.Encode(w, salesTariffEntryTable(&v), tariffEntryS0)
}

// SalesTariff is SalesTariffType: a human-readable description plus a
// bounded list of priced intervals.
type SalesTariff struct {
	Description string
	Entries     []SalesTariffEntry
}

const salesTariffDescState = 0

func salesTariffTable(v *SalesTariff) grammar.Table {
	arrayBase := salesTariffDescState + 1
	next := arrayBase + MaxSalesTariffEntries + 1
	chain := grammar.ArrayChain(arrayBase, MaxSalesTariffEntries, next, false,
		func(i int) bool { return i < len(v.Entries) },
		func(r grammar.BitSource, i int) error {
			entry, err := DecodeSalesTariffEntry(r)
			v.Entries = append(v.Entries, entry)
			return err
		},
		func(w grammar.BitSink, i int) error {
			return EncodeSalesTariffEntry(w, v.Entries[i])
		},
	)
	table := make(grammar.Table, next+1)
	table[salesTariffDescState] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: arrayBase, Simple: true,
			Decode: func(r grammar.BitSource) error {
				val, err := wire.DecodeString(r, MaxSalesTariffDescLen)
				v.Description = val
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return wire.EncodeString(w, v.Description, MaxSalesTariffDescLen)
			},
		},
	}}
	copy(table[arrayBase:], chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeSalesTariff decodes a SalesTariffType from r.
func DecodeSalesTariff(r grammar.BitSource) (SalesTariff, error) {
	var v SalesTariff
	err := grammar.Decode(r, salesTariffTable(&v), salesTariffDescState)
	return v, err
}

// EncodeSalesTariff encodes v to w. See EncodePMaxSchedule for why the
// bound is checked explicitly rather than relying on the grammar's
// structural refusal alone.
func EncodeSalesTariff(w grammar.BitSink, v SalesTariff) error {
	if len(v.Entries) > MaxSalesTariffEntries {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"Entries"}, "SalesTariff entry count exceeds bound")
	}
	return grammar.Encode(w, salesTariffTable(&v), salesTariffDescState)
}
