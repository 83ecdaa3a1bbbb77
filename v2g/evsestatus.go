package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// ACEVSEStatus is AC_EVSEStatusType: the minimal status an AC EVSE
// reports alongside its responses.
type ACEVSEStatus struct {
	Notification EVSENotification
	RCD          bool
}

const (
	acEVSEStatusS0 = iota
	acEVSEStatusS1
)

func acEVSEStatusTable(v *ACEVSEStatus) grammar.Table {
	return grammar.Table{
		acEVSEStatusS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acEVSEStatusS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(evseNotificationCardinality))
					v.Notification = EVSENotification(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Notification), int(evseNotificationCardinality))
				},
			},
		}},
		acEVSEStatusS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.RCD = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.RCD)
				},
			},
		}},
	}
}

// DecodeACEVSEStatus decodes an AC_EVSEStatusType from r.
func DecodeACEVSEStatus(r grammar.BitSource) (ACEVSEStatus, error) {
	var v ACEVSEStatus
	err := grammar.Decode(r, acEVSEStatusTable(&v), acEVSEStatusS0)
	return v, err
}

// EncodeACEVSEStatus encodes v to w.
func EncodeACEVSEStatus(w grammar.BitSink, v ACEVSEStatus) error {
	return grammar.Encode(w, acEVSEStatusTable(&v), acEVSEStatusS0)
}

// DCEVSEStatus is DC_EVSEStatusType: the richer status a DC EVSE reports,
// including its isolation monitoring result.
type DCEVSEStatus struct {
	Notification EVSENotification
	Isolation    IsolationStatus
	StatusCode   DCEVSEStatusCode
}

const (
	dcEVSEStatusS0 = iota
	dcEVSEStatusS1
	dcEVSEStatusS2
)

func dcEVSEStatusTable(v *DCEVSEStatus) grammar.Table {
	return grammar.Table{
		dcEVSEStatusS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVSEStatusS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(evseNotificationCardinality))
					v.Notification = EVSENotification(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Notification), int(evseNotificationCardinality))
				},
			},
		}},
		dcEVSEStatusS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVSEStatusS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(isolationStatusCardinality))
					v.Isolation = IsolationStatus(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Isolation), int(isolationStatusCardinality))
				},
			},
		}},
		dcEVSEStatusS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(dcEVSEStatusCodeCardinality))
					v.StatusCode = DCEVSEStatusCode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.StatusCode), int(dcEVSEStatusCodeCardinality))
				},
			},
		}},
	}
}

// DecodeDCEVSEStatus decodes a DC_EVSEStatusType from r.
func DecodeDCEVSEStatus(r grammar.BitSource) (DCEVSEStatus, error) {
	var v DCEVSEStatus
	err := grammar.Decode(r, dcEVSEStatusTable(&v), dcEVSEStatusS0)
	return v, err
}

// EncodeDCEVSEStatus encodes v to w.
func EncodeDCEVSEStatus(w grammar.BitSink, v DCEVSEStatus) error {
	return grammar.Encode(w, dcEVSEStatusTable(&v), dcEVSEStatusS0)
}
