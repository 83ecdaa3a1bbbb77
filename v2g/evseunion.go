package v2g

import "github.com/v2g-exi/codec/grammar"

// EVSEStatus is the AC/DC EVSEStatus choice carried by several response
// messages (PowerDeliveryRes, ChargingStatusRes, MeteringReceiptRes):
// exactly one of AC or DC is populated, mirroring EVChargeParameter's
// AC/DC choice shape (spec §3.1).
type EVSEStatus struct {
	AC *ACEVSEStatus
	DC *DCEVSEStatus
}

const (
	evseStatusChoiceState = iota
	evseStatusDoneState
)

func evseStatusTable(v *EVSEStatus) grammar.Table {
	return grammar.Table{
		evseStatusChoiceState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: evseStatusDoneState,
				Present: func() bool { return v.AC != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeACEVSEStatus(r)
					v.AC = &val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeACEVSEStatus(w, *v.AC)
				},
			},
			{Kind: grammar.EventStart, Next: evseStatusDoneState,
				Present: func() bool { return v.DC != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeDCEVSEStatus(r)
					v.DC = &val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeDCEVSEStatus(w, *v.DC)
				},
			},
		}},
		evseStatusDoneState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeEVSEStatus decodes the AC/DC EVSEStatus choice from r.
func DecodeEVSEStatus(r grammar.BitSource) (EVSEStatus, error) {
	var v EVSEStatus
	err := grammar.Decode(r, evseStatusTable(&v), evseStatusChoiceState)
	return v, err
}

// EncodeEVSEStatus encodes v to w. Exactly one of AC/DC must be set; see
// EncodeEVChargeParameter for the same caveat on an empty choice.
func EncodeEVSEStatus(w grammar.BitSink, v EVSEStatus) error {
	return grammar.Encode(w, evseStatusTable(&v), evseStatusChoiceState)
}

// ACEVSEChargeParameter is AC_EVSEChargeParameterType: the AC EVSE's
// offered limits during ChargeParameterDiscoveryRes.
type ACEVSEChargeParameter struct {
	Status     ACEVSEStatus
	MaxVoltage PhysicalValue
	MaxCurrent PhysicalValue
	MinCurrent PhysicalValue
}

const (
	acEVSEChargeParamS0 = iota
	acEVSEChargeParamS1
	acEVSEChargeParamS2
	acEVSEChargeParamS3
)

func acEVSEChargeParameterTable(v *ACEVSEChargeParameter) grammar.Table {
	return grammar.Table{
		acEVSEChargeParamS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acEVSEChargeParamS1,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeACEVSEStatus(r)
					v.Status = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeACEVSEStatus(w, v.Status)
				},
			},
		}},
		acEVSEChargeParamS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acEVSEChargeParamS2,
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
		acEVSEChargeParamS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: acEVSEChargeParamS3,
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
		acEVSEChargeParamS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.MinCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.MinCurrent)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeACEVSEChargeParameter decodes an AC_EVSEChargeParameterType from r.
func DecodeACEVSEChargeParameter(r grammar.BitSource) (ACEVSEChargeParameter, error) {
	var v ACEVSEChargeParameter
	err := grammar.Decode(r, acEVSEChargeParameterTable(&v), acEVSEChargeParamS0)
	return v, err
}

// EncodeACEVSEChargeParameter encodes v to w.
func EncodeACEVSEChargeParameter(w grammar.BitSink, v ACEVSEChargeParameter) error {
	return grammar.Encode(w, acEVSEChargeParameterTable(&v), acEVSEChargeParamS0)
}

// DCEVSEChargeParameter is DC_EVSEChargeParameterType: the DC EVSE's
// offered limits during ChargeParameterDiscoveryRes.
type DCEVSEChargeParameter struct {
	Status     DCEVSEStatus
	MaxVoltage PhysicalValue
	MaxCurrent PhysicalValue
	MaxPower   PhysicalValue
}

const (
	dcEVSEChargeParamS0 = iota
	dcEVSEChargeParamS1
	dcEVSEChargeParamS2
	dcEVSEChargeParamS3
)

func dcEVSEChargeParameterTable(v *DCEVSEChargeParameter) grammar.Table {
	return grammar.Table{
		dcEVSEChargeParamS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVSEChargeParamS1,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeDCEVSEStatus(r)
					v.Status = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeDCEVSEStatus(w, v.Status)
				},
			},
		}},
		dcEVSEChargeParamS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVSEChargeParamS2,
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
		dcEVSEChargeParamS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: dcEVSEChargeParamS3,
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
		dcEVSEChargeParamS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.MaxPower = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.MaxPower)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeDCEVSEChargeParameter decodes a DC_EVSEChargeParameterType from r.
func DecodeDCEVSEChargeParameter(r grammar.BitSource) (DCEVSEChargeParameter, error) {
	var v DCEVSEChargeParameter
	err := grammar.Decode(r, dcEVSEChargeParameterTable(&v), dcEVSEChargeParamS0)
	return v, err
}

// EncodeDCEVSEChargeParameter encodes v to w.
func EncodeDCEVSEChargeParameter(w grammar.BitSink, v DCEVSEChargeParameter) error {
	return grammar.Encode(w, dcEVSEChargeParameterTable(&v), dcEVSEChargeParamS0)
}

// EVSEChargeParameter is the EVSE-side AC/DC EVSEChargeParameter choice
// in ChargeParameterDiscoveryRes.
type EVSEChargeParameter struct {
	AC *ACEVSEChargeParameter
	DC *DCEVSEChargeParameter
}

const (
	evseChargeParamChoiceState = iota
	evseChargeParamDoneState
)

func evseChargeParameterTable(v *EVSEChargeParameter) grammar.Table {
	return grammar.Table{
		evseChargeParamChoiceState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: evseChargeParamDoneState,
				Present: func() bool { return v.AC != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeACEVSEChargeParameter(r)
					v.AC = &val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeACEVSEChargeParameter(w, *v.AC)
				},
			},
			{Kind: grammar.EventStart, Next: evseChargeParamDoneState,
				Present: func() bool { return v.DC != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeDCEVSEChargeParameter(r)
					v.DC = &val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeDCEVSEChargeParameter(w, *v.DC)
				},
			},
		}},
		evseChargeParamDoneState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeEVSEChargeParameter decodes the EVSEChargeParameter choice from r.
func DecodeEVSEChargeParameter(r grammar.BitSource) (EVSEChargeParameter, error) {
	var v EVSEChargeParameter
	err := grammar.Decode(r, evseChargeParameterTable(&v), evseChargeParamChoiceState)
	return v, err
}

// EncodeEVSEChargeParameter encodes v to w.
func EncodeEVSEChargeParameter(w grammar.BitSink, v EVSEChargeParameter) error {
	return grammar.Encode(w, evseChargeParameterTable(&v), evseChargeParamChoiceState)
}
