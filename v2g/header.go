package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// Header is V2GMessage's MessageHeader: the session identifier every
// V2G_Message carries, plus an optional notification and an optional
// signature over the body (spec §3.1).
type Header struct {
	SessionID       []byte
	Notification    EVSENotification
	HasNotification bool
	Signature       SignatureType
	HasSignature    bool
}

const (
	headerS0 = iota
	headerS1
	headerS2
)

func headerTable(v *Header) grammar.Table {
	return grammar.Table{
		headerS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: headerS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxSessionIDBytes)
					v.SessionID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.SessionID, MaxSessionIDBytes)
				},
			},
		}},
		headerS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: headerS2, Simple: true,
				Present: func() bool { return v.HasNotification },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(evseNotificationCardinality))
					v.Notification = EVSENotification(val)
					v.HasNotification = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Notification), int(evseNotificationCardinality))
				},
			},
			{Kind: grammar.EventEnd, Next: headerS2},
		}},
		headerS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Present: func() bool { return v.HasSignature },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeSignature(r)
					v.Signature = val
					v.HasSignature = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeSignature(w, v.Signature)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeHeader decodes a MessageHeader from r.
func DecodeHeader(r grammar.BitSource) (Header, error) {
	var v Header
	err := grammar.Decode(r, headerTable(&v), headerS0)
	return v, err
}

// EncodeHeader encodes v to w.
func EncodeHeader(w grammar.BitSink, v Header) error {
	return grammar.Encode(w, headerTable(&v), headerS0)
}
