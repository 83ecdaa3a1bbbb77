package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
)

// PMaxScheduleEntry is PMaxScheduleEntryType: the maximum power permitted
// during a RelativeTimeInterval.
type PMaxScheduleEntry struct {
	TimeInterval RelativeTimeInterval
	PMax         PhysicalValue
}

const (
	pmaxEntryS0 = iota
	pmaxEntryS1
	pmaxEntryS2
)

func pmaxScheduleEntryTable(v *PMaxScheduleEntry) grammar.Table {
	return grammar.Table{
		pmaxEntryS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: pmaxEntryS1,
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
		pmaxEntryS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: pmaxEntryS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.PMax = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.PMax)
				},
			},
		}},
		pmaxEntryS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodePMaxScheduleEntry decodes a PMaxScheduleEntryType from r.
func DecodePMaxScheduleEntry(r grammar.BitSource) (PMaxScheduleEntry, error) {
	var v PMaxScheduleEntry
	err := grammar.Decode(r, pmaxScheduleEntryTable(&v), pmaxEntryS0)
	return v, err
}

// EncodePMaxScheduleEntry encodes v to w.
func EncodePMaxScheduleEntry(w grammar.BitSink, v PMaxScheduleEntry) error {
	return grammar.Encode(w, pmaxScheduleEntryTable(&v), pmaxEntryS0)
}

// PMaxSchedule is PMaxScheduleType: a bounded sequence of
// PMaxScheduleEntry, at most MaxPMaxScheduleEntries long (spec §3.2,
// §8 property 5).
type PMaxSchedule struct {
	Entries []PMaxScheduleEntry
}

const pmaxScheduleArrayBase = 0

func pmaxScheduleTable(v *PMaxSchedule) grammar.Table {
	next := pmaxScheduleArrayBase + MaxPMaxScheduleEntries + 1
	chain := grammar.ArrayChain(pmaxScheduleArrayBase, MaxPMaxScheduleEntries, next, false,
		func(i int) bool { return i < len(v.Entries) },
		func(r grammar.BitSource, i int) error {
			entry, err := DecodePMaxScheduleEntry(r)
			v.Entries = append(v.Entries, entry)
			return err
		},
		func(w grammar.BitSink, i int) error {
			return EncodePMaxScheduleEntry(w, v.Entries[i])
		},
	)
	table := make(grammar.Table, len(chain)+1)
	copy(table, chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodePMaxSchedule decodes a PMaxScheduleType from r. After
// MaxPMaxScheduleEntries occurrences the grammar's only event code (0) is
// END and any other code fails with UnknownEventCode; decode does not
// report CapacityExceeded for an over-long schedule.
func DecodePMaxSchedule(r grammar.BitSource) (PMaxSchedule, error) {
	var v PMaxSchedule
	err := grammar.Decode(r, pmaxScheduleTable(&v), pmaxScheduleArrayBase)
	return v, err
}

// EncodePMaxSchedule encodes v to w. The array's final grammar state
// offers no further occurrence transition, so an over-long slice would
// otherwise be silently truncated rather than rejected; check the bound
// explicitly before encoding.
func EncodePMaxSchedule(w grammar.BitSink, v PMaxSchedule) error {
	if len(v.Entries) > MaxPMaxScheduleEntries {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"Entries"}, "PMaxSchedule entry count exceeds bound")
	}
	return grammar.Encode(w, pmaxScheduleTable(&v), pmaxScheduleArrayBase)
}
