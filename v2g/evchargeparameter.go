package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// ACEVChargeParameter is AC_EVChargeParameterType: the AC charging
// parameters an EV offers during ChargeParameterDiscoveryReq.
type ACEVChargeParameter struct {
	DepartureTime    uint32
	HasDepartureTime bool
	EAmount          PhysicalValue
	EVMaxVoltage     PhysicalValue
	EVMaxCurrent     PhysicalValue
	EVMinCurrent     PhysicalValue
}

const (
	acChargeParamS0 = iota
	acChargeParamS1
	acChargeParamS2
	acChargeParamS3
	acChargeParamS4
	acChargeParamS5
)

func acEVChargeParameterTable(v *ACEVChargeParameter) grammar.Table {
	return grammar.Table{
		acChargeParamS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acChargeParamS1, Simple: true,
				Present: func() bool { return v.HasDepartureTime },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.DepartureTime = uint32(val)
					v.HasDepartureTime = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.DepartureTime))
				},
			},
			{Kind: grammar.EventEnd, Next: acChargeParamS1},
		}},
		acChargeParamS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acChargeParamS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.EAmount = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.EAmount)
				},
			},
		}},
		acChargeParamS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acChargeParamS3,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.EVMaxVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.EVMaxVoltage)
				},
			},
		}},
		acChargeParamS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acChargeParamS4,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.EVMaxCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.EVMaxCurrent)
				},
			},
		}},
		acChargeParamS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acChargeParamS5,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.EVMinCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.EVMinCurrent)
				},
			},
		}},
		acChargeParamS5: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeACEVChargeParameter decodes an AC_EVChargeParameterType from r.
func DecodeACEVChargeParameter(r grammar.BitSource) (ACEVChargeParameter, error) {
	var v ACEVChargeParameter
	err := grammar.Decode(r, acEVChargeParameterTable(&v), acChargeParamS0)
	return v, err
}

// EncodeACEVChargeParameter encodes v to w.
func EncodeACEVChargeParameter(w grammar.BitSink, v ACEVChargeParameter) error {
	return grammar.Encode(w, acEVChargeParameterTable(&v), acChargeParamS0)
}

// DCEVStatus is DC_EVStatusType: reported EV battery condition during DC
// charging.
type DCEVStatus struct {
	Ready     bool
	ErrorCode DCEVErrorCode
	RESSSOC   uint8
}

const (
	dcEVStatusS0 = iota
	dcEVStatusS1
	dcEVStatusS2
	dcEVStatusS3
)

func dcEVStatusTable(v *DCEVStatus) grammar.Table {
	return grammar.Table{
		dcEVStatusS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVStatusS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.Ready = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.Ready)
				},
			},
		}},
		dcEVStatusS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVStatusS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(dcEVErrorCodeCardinality))
					v.ErrorCode = DCEVErrorCode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.ErrorCode), int(dcEVErrorCodeCardinality))
				},
			},
		}},
		dcEVStatusS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVStatusS3, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeNBitUint(r, 7)
					v.RESSSOC = uint8(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeNBitUint(w, uint32(v.RESSSOC), 7)
				},
			},
		}},
		dcEVStatusS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeDCEVStatus decodes a DC_EVStatusType from r.
func DecodeDCEVStatus(r grammar.BitSource) (DCEVStatus, error) {
	var v DCEVStatus
	err := grammar.Decode(r, dcEVStatusTable(&v), dcEVStatusS0)
	return v, err
}

// EncodeDCEVStatus encodes v to w.
func EncodeDCEVStatus(w grammar.BitSink, v DCEVStatus) error {
	return grammar.Encode(w, dcEVStatusTable(&v), dcEVStatusS0)
}

// DCEVChargeParameter is DC_EVChargeParameterType: the DC charging
// parameters an EV offers, including its present battery status.
type DCEVChargeParameter struct {
	Status         DCEVStatus
	MaxVoltage     PhysicalValue
	MaxCurrent     PhysicalValue
	EnergyCapacity PhysicalValue
}

const (
	dcChargeParamS0 = iota
	dcChargeParamS1
	dcChargeParamS2
	dcChargeParamS3
)

func dcEVChargeParameterTable(v *DCEVChargeParameter) grammar.Table {
	return grammar.Table{
		dcChargeParamS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcChargeParamS1,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeDCEVStatus(r)
					v.Status = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeDCEVStatus(w, v.Status)
				},
			},
		}},
		dcChargeParamS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcChargeParamS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.MaxVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.MaxVoltage)
				},
			},
		}},
		dcChargeParamS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcChargeParamS3,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.MaxCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.MaxCurrent)
				},
			},
		}},
		dcChargeParamS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.EnergyCapacity = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.EnergyCapacity)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeDCEVChargeParameter decodes a DC_EVChargeParameterType from r.
func DecodeDCEVChargeParameter(r grammar.BitSource) (DCEVChargeParameter, error) {
	var v DCEVChargeParameter
	err := grammar.Decode(r, dcEVChargeParameterTable(&v), dcChargeParamS0)
	return v, err
}

// EncodeDCEVChargeParameter encodes v to w.
func EncodeDCEVChargeParameter(w grammar.BitSink, v DCEVChargeParameter) error {
	return grammar.Encode(w, dcEVChargeParameterTable(&v), dcChargeParamS0)
}

// EVChargeParameter is the EVChargeParameter choice group: exactly one
// of AC or DC is populated (spec §3.1: "EVChargeParameter is AC/DC").
type EVChargeParameter struct {
	AC *ACEVChargeParameter
	DC *DCEVChargeParameter
}

const (
	evChargeParamChoiceState = iota
	evChargeParamDoneState
)

func evChargeParameterTable(v *EVChargeParameter) grammar.Table {
	return grammar.Table{
		evChargeParamChoiceState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: evChargeParamDoneState,
				Present: func() bool { return v.AC != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeACEVChargeParameter(r)
					v.AC = &val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeACEVChargeParameter(w, *v.AC)
				},
			},
			{Kind: grammar.EventStart, Next: evChargeParamDoneState,
				Present: func() bool { return v.DC != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeDCEVChargeParameter(r)
					v.DC = &val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeDCEVChargeParameter(w, *v.DC)
				},
			},
		}},
		evChargeParamDoneState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeEVChargeParameter decodes the EVChargeParameter choice from r.
func DecodeEVChargeParameter(r grammar.BitSource) (EVChargeParameter, error) {
	var v EVChargeParameter
	err := grammar.Decode(r, evChargeParameterTable(&v), evChargeParamChoiceState)
	return v, err
}

// EncodeEVChargeParameter encodes v to w. Exactly one of AC/DC must be
// set; if neither is, the choice state has no live variant and no END
// transition of its own, so Encode reports v2gerr.UnsupportedSubEvent
// instead of emitting anything.
func EncodeEVChargeParameter(w grammar.BitSink, v EVChargeParameter) error {
	return grammar.Encode(w, evChargeParameterTable(&v), evChargeParamChoiceState)
}
