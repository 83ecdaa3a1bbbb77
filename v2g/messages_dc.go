package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// CableCheckReq reports EV status while the EVSE verifies cable
// isolation before DC energy transfer begins.
type CableCheckReq struct {
	Status DCEVStatus
}

const cableCheckReqS0 = 0

func cableCheckReqTable(v *CableCheckReq) grammar.Table {
	return grammar.Table{
		cableCheckReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
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
	}
}

// DecodeCableCheckReq decodes a CableCheckReq body from r.
func DecodeCableCheckReq(r grammar.BitSource) (CableCheckReq, error) {
	var v CableCheckReq
	err := grammar.Decode(r, cableCheckReqTable(&v), cableCheckReqS0)
	return v, err
}

// EncodeCableCheckReq encodes v to w.
func EncodeCableCheckReq(w grammar.BitSink, v CableCheckReq) error {
	return grammar.Encode(w, cableCheckReqTable(&v), cableCheckReqS0)
}

// CableCheckRes reports the isolation test's outcome.
type CableCheckRes struct {
	ResponseCode       ResponseCode
	EVSEProcessing     EVSEProcessing
	IsolationStatus    IsolationStatus
	HasIsolationStatus bool
}

const (
	cableCheckResS0 = iota
	cableCheckResS1
	cableCheckResS2
)

func cableCheckResTable(v *CableCheckRes) grammar.Table {
	return grammar.Table{
		cableCheckResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: cableCheckResS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(responseCodeCardinality))
					v.ResponseCode = ResponseCode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.ResponseCode), int(responseCodeCardinality))
				},
			},
		}},
		cableCheckResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: cableCheckResS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(evseProcessingCardinality))
					v.EVSEProcessing = EVSEProcessing(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.EVSEProcessing), int(evseProcessingCardinality))
				},
			},
		}},
		cableCheckResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Present: func() bool { return v.HasIsolationStatus },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(isolationStatusCardinality))
					v.IsolationStatus = IsolationStatus(val)
					v.HasIsolationStatus = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.IsolationStatus), int(isolationStatusCardinality))
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeCableCheckRes decodes a CableCheckRes body from r.
func DecodeCableCheckRes(r grammar.BitSource) (CableCheckRes, error) {
	var v CableCheckRes
	err := grammar.Decode(r, cableCheckResTable(&v), cableCheckResS0)
	return v, err
}

// EncodeCableCheckRes encodes v to w.
func EncodeCableCheckRes(w grammar.BitSink, v CableCheckRes) error {
	return grammar.Encode(w, cableCheckResTable(&v), cableCheckResS0)
}

// PreChargeReq asks the EVSE to ramp its output to match the EV's
// resting pack voltage before the contactors close.
type PreChargeReq struct {
	Status        DCEVStatus
	TargetVoltage PhysicalValue
	TargetCurrent PhysicalValue
}

const (
	preChargeReqS0 = iota
	preChargeReqS1
	preChargeReqS2
)

func preChargeReqTable(v *PreChargeReq) grammar.Table {
	return grammar.Table{
		preChargeReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: preChargeReqS1,
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
		preChargeReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: preChargeReqS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.TargetVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.TargetVoltage)
				},
			},
		}},
		preChargeReqS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.TargetCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.TargetCurrent)
				},
			},
		}},
	}
}

// DecodePreChargeReq decodes a PreChargeReq body from r.
func DecodePreChargeReq(r grammar.BitSource) (PreChargeReq, error) {
	var v PreChargeReq
	err := grammar.Decode(r, preChargeReqTable(&v), preChargeReqS0)
	return v, err
}

// EncodePreChargeReq encodes v to w.
func EncodePreChargeReq(w grammar.BitSink, v PreChargeReq) error {
	return grammar.Encode(w, preChargeReqTable(&v), preChargeReqS0)
}

// PreChargeRes reports the EVSE's present output voltage as it ramps.
type PreChargeRes struct {
	ResponseCode   ResponseCode
	Status         DCEVSEStatus
	PresentVoltage PhysicalValue
}

const (
	preChargeResS0 = iota
	preChargeResS1
	preChargeResS2
)

func preChargeResTable(v *PreChargeRes) grammar.Table {
	return grammar.Table{
		preChargeResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: preChargeResS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(responseCodeCardinality))
					v.ResponseCode = ResponseCode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.ResponseCode), int(responseCodeCardinality))
				},
			},
		}},
		preChargeResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: preChargeResS2,
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
		preChargeResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.PresentVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.PresentVoltage)
				},
			},
		}},
	}
}

// DecodePreChargeRes decodes a PreChargeRes body from r.
func DecodePreChargeRes(r grammar.BitSource) (PreChargeRes, error) {
	var v PreChargeRes
	err := grammar.Decode(r, preChargeResTable(&v), preChargeResS0)
	return v, err
}

// EncodePreChargeRes encodes v to w.
func EncodePreChargeRes(w grammar.BitSink, v PreChargeRes) error {
	return grammar.Encode(w, preChargeResTable(&v), preChargeResS0)
}

// CurrentDemandReq is the steady-state DC charging loop message: the
// EV's present target setpoints and completion flags.
type CurrentDemandReq struct {
	Status               DCEVStatus
	TargetCurrent        PhysicalValue
	TargetVoltage        PhysicalValue
	MaximumCurrentLimit  PhysicalValue
	HasMaxCurrentLimit   bool
	BulkChargingComplete bool
	ChargingComplete     bool
}

const (
	currentDemandReqS0 = iota
	currentDemandReqS1
	currentDemandReqS2
	currentDemandReqS3
	currentDemandReqS4
	currentDemandReqS5
)

func currentDemandReqTable(v *CurrentDemandReq) grammar.Table {
	return grammar.Table{
		currentDemandReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandReqS1,
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
		currentDemandReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandReqS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.TargetCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.TargetCurrent)
				},
			},
		}},
		currentDemandReqS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandReqS3,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.TargetVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.TargetVoltage)
				},
			},
		}},
		currentDemandReqS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandReqS4,
				Present: func() bool { return v.HasMaxCurrentLimit },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.MaximumCurrentLimit = val
					v.HasMaxCurrentLimit = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.MaximumCurrentLimit)
				},
			},
			{Kind: grammar.EventEnd, Next: currentDemandReqS4},
		}},
		currentDemandReqS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandReqS5, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.BulkChargingComplete = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.BulkChargingComplete)
				},
			},
		}},
		currentDemandReqS5: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.ChargingComplete = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.ChargingComplete)
				},
			},
		}},
	}
}

// DecodeCurrentDemandReq decodes a CurrentDemandReq body from r.
func DecodeCurrentDemandReq(r grammar.BitSource) (CurrentDemandReq, error) {
	var v CurrentDemandReq
	err := grammar.Decode(r, currentDemandReqTable(&v), currentDemandReqS0)
	return v, err
}

// EncodeCurrentDemandReq encodes v to w.
func EncodeCurrentDemandReq(w grammar.BitSink, v CurrentDemandReq) error {
	return grammar.Encode(w, currentDemandReqTable(&v), currentDemandReqS0)
}

// CurrentDemandRes reports the EVSE's present output and whether it has
// reached the EV's requested limits.
type CurrentDemandRes struct {
	ResponseCode         ResponseCode
	Status               DCEVSEStatus
	PresentCurrent       PhysicalValue
	PresentVoltage       PhysicalValue
	CurrentLimitAchieved bool
	VoltageLimitAchieved bool
}

const (
	currentDemandResS0 = iota
	currentDemandResS1
	currentDemandResS2
	currentDemandResS3
	currentDemandResS4
	currentDemandResS5
)

func currentDemandResTable(v *CurrentDemandRes) grammar.Table {
	return grammar.Table{
		currentDemandResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandResS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(responseCodeCardinality))
					v.ResponseCode = ResponseCode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.ResponseCode), int(responseCodeCardinality))
				},
			},
		}},
		currentDemandResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandResS2,
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
		currentDemandResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandResS3,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.PresentCurrent = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.PresentCurrent)
				},
			},
		}},
		currentDemandResS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandResS4,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.PresentVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.PresentVoltage)
				},
			},
		}},
		currentDemandResS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: currentDemandResS5, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.CurrentLimitAchieved = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.CurrentLimitAchieved)
				},
			},
		}},
		currentDemandResS5: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.VoltageLimitAchieved = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.VoltageLimitAchieved)
				},
			},
		}},
	}
}

// DecodeCurrentDemandRes decodes a CurrentDemandRes body from r.
func DecodeCurrentDemandRes(r grammar.BitSource) (CurrentDemandRes, error) {
	var v CurrentDemandRes
	err := grammar.Decode(r, currentDemandResTable(&v), currentDemandResS0)
	return v, err
}

// EncodeCurrentDemandRes encodes v to w.
func EncodeCurrentDemandRes(w grammar.BitSink, v CurrentDemandRes) error {
	return grammar.Encode(w, currentDemandResTable(&v), currentDemandResS0)
}

// WeldingDetectionReq reports EV status while the EVSE checks for
// welded contactors after PowerDeliveryReq(stop).
type WeldingDetectionReq struct {
	Status DCEVStatus
}

const weldingDetectionReqS0 = 0

func weldingDetectionReqTable(v *WeldingDetectionReq) grammar.Table {
	return grammar.Table{
		weldingDetectionReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
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
	}
}

// DecodeWeldingDetectionReq decodes a WeldingDetectionReq body from r.
func DecodeWeldingDetectionReq(r grammar.BitSource) (WeldingDetectionReq, error) {
	var v WeldingDetectionReq
	err := grammar.Decode(r, weldingDetectionReqTable(&v), weldingDetectionReqS0)
	return v, err
}

// EncodeWeldingDetectionReq encodes v to w.
func EncodeWeldingDetectionReq(w grammar.BitSink, v WeldingDetectionReq) error {
	return grammar.Encode(w, weldingDetectionReqTable(&v), weldingDetectionReqS0)
}

// WeldingDetectionRes reports residual voltage measured with contactors
// open.
type WeldingDetectionRes struct {
	ResponseCode   ResponseCode
	Status         DCEVSEStatus
	PresentVoltage PhysicalValue
}

const (
	weldingDetectionResS0 = iota
	weldingDetectionResS1
	weldingDetectionResS2
)

func weldingDetectionResTable(v *WeldingDetectionRes) grammar.Table {
	return grammar.Table{
		weldingDetectionResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: weldingDetectionResS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(responseCodeCardinality))
					v.ResponseCode = ResponseCode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.ResponseCode), int(responseCodeCardinality))
				},
			},
		}},
		weldingDetectionResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: weldingDetectionResS2,
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
		weldingDetectionResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePhysicalValue(r)
					v.PresentVoltage = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePhysicalValue(w, v.PresentVoltage)
				},
			},
		}},
	}
}

// DecodeWeldingDetectionRes decodes a WeldingDetectionRes body from r.
func DecodeWeldingDetectionRes(r grammar.BitSource) (WeldingDetectionRes, error) {
	var v WeldingDetectionRes
	err := grammar.Decode(r, weldingDetectionResTable(&v), weldingDetectionResS0)
	return v, err
}

// EncodeWeldingDetectionRes encodes v to w.
func EncodeWeldingDetectionRes(w grammar.BitSink, v WeldingDetectionRes) error {
	return grammar.Encode(w, weldingDetectionResTable(&v), weldingDetectionResS0)
}
