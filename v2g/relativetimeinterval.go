package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// RelativeTimeInterval is RelativeTimeIntervalType: a schedule slot
// expressed as seconds since the start of the schedule, with an optional
// duration.
type RelativeTimeInterval struct {
	Start       uint32
	Duration    uint32
	HasDuration bool
}

const (
	relTimeS0 = iota
	relTimeS1
	relTimeS2
)

func relativeTimeIntervalTable(v *RelativeTimeInterval) grammar.Table {
	return grammar.Table{
		relTimeS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: relTimeS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.Start = uint32(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.Start))
				},
			},
		}},
		relTimeS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: relTimeS2, Simple: true,
				Present: func() bool { return v.HasDuration },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.Duration = uint32(val)
					v.HasDuration = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.Duration))
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
		relTimeS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeRelativeTimeInterval decodes a RelativeTimeIntervalType from r.
func DecodeRelativeTimeInterval(r grammar.BitSource) (RelativeTimeInterval, error) {
	var v RelativeTimeInterval
	err := grammar.Decode(r, relativeTimeIntervalTable(&v), relTimeS0)
	return v, err
}

// EncodeRelativeTimeInterval encodes v to w.
func EncodeRelativeTimeInterval(w grammar.BitSink, v RelativeTimeInterval) error {
	return grammar.Encode(w, relativeTimeIntervalTable(&v), relTimeS0)
}
