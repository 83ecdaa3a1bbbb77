package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/wire"
)

// ChargeParameterDiscoveryReq is the bridge from service selection into
// the energy-transfer negotiation: it states the requested mode and the
// EV's charging capabilities.
type ChargeParameterDiscoveryReq struct {
	RequestedMode                EnergyTransferMode
	MaxEntriesSAScheduleTuple    uint16
	HasMaxEntriesSAScheduleTuple bool
	EVChargeParameter            EVChargeParameter
}

const (
	chargeParamDiscReqS0 = iota
	chargeParamDiscReqS1
	chargeParamDiscReqS2
)

func chargeParameterDiscoveryReqTable(v *ChargeParameterDiscoveryReq) grammar.Table {
	return grammar.Table{
		chargeParamDiscReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargeParamDiscReqS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(energyTransferModeCardinality))
					v.RequestedMode = EnergyTransferMode(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.RequestedMode), int(energyTransferModeCardinality))
				},
			},
		}},
		chargeParamDiscReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargeParamDiscReqS2, Simple: true,
				Present: func() bool { return v.HasMaxEntriesSAScheduleTuple },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 16)
					v.MaxEntriesSAScheduleTuple = uint16(val)
					v.HasMaxEntriesSAScheduleTuple = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.MaxEntriesSAScheduleTuple))
				},
			},
			{Kind: grammar.EventEnd, Next: chargeParamDiscReqS2},
		}},
		chargeParamDiscReqS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeEVChargeParameter(r)
					v.EVChargeParameter = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeEVChargeParameter(w, v.EVChargeParameter)
				},
			},
		}},
	}
}

// DecodeChargeParameterDiscoveryReq decodes a ChargeParameterDiscoveryReq
// body from r.
func DecodeChargeParameterDiscoveryReq(r grammar.BitSource) (ChargeParameterDiscoveryReq, error) {
	var v ChargeParameterDiscoveryReq
	err := grammar.Decode(r, chargeParameterDiscoveryReqTable(&v), chargeParamDiscReqS0)
	return v, err
}

// EncodeChargeParameterDiscoveryReq encodes v to w.
func EncodeChargeParameterDiscoveryReq(w grammar.BitSink, v ChargeParameterDiscoveryReq) error {
	return grammar.Encode(w, chargeParameterDiscoveryReqTable(&v), chargeParamDiscReqS0)
}

// ChargeParameterDiscoveryRes offers the schedule(s) the EVSE can
// support for the negotiated mode.
type ChargeParameterDiscoveryRes struct {
	ResponseCode        ResponseCode
	EVSEProcessing      EVSEProcessing
	EVSEChargeParameter EVSEChargeParameter
	SAScheduleList      SAScheduleList
	HasSAScheduleList   bool
}

const (
	chargeParamDiscResS0 = iota
	chargeParamDiscResS1
	chargeParamDiscResS2
	chargeParamDiscResS3
)

func chargeParameterDiscoveryResTable(v *ChargeParameterDiscoveryRes) grammar.Table {
	return grammar.Table{
		chargeParamDiscResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargeParamDiscResS1, Simple: true,
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
		chargeParamDiscResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargeParamDiscResS2, Simple: true,
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
		chargeParamDiscResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargeParamDiscResS3,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeEVSEChargeParameter(r)
					v.EVSEChargeParameter = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeEVSEChargeParameter(w, v.EVSEChargeParameter)
				},
			},
		}},
		chargeParamDiscResS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Present: func() bool { return v.HasSAScheduleList },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeSAScheduleList(r)
					v.SAScheduleList = val
					v.HasSAScheduleList = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeSAScheduleList(w, v.SAScheduleList)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeChargeParameterDiscoveryRes decodes a ChargeParameterDiscoveryRes
// body from r.
func DecodeChargeParameterDiscoveryRes(r grammar.BitSource) (ChargeParameterDiscoveryRes, error) {
	var v ChargeParameterDiscoveryRes
	err := grammar.Decode(r, chargeParameterDiscoveryResTable(&v), chargeParamDiscResS0)
	return v, err
}

// EncodeChargeParameterDiscoveryRes encodes v to w.
func EncodeChargeParameterDiscoveryRes(w grammar.BitSink, v ChargeParameterDiscoveryRes) error {
	return grammar.Encode(w, chargeParameterDiscoveryResTable(&v), chargeParamDiscResS0)
}

// PowerDeliveryReq starts or stops energy flow, optionally switching to
// a different SAScheduleTuple and/or carrying a renegotiated profile.
type PowerDeliveryReq struct {
	ChargeProgressStart bool
	SAScheduleTupleID   uint8
	ChargingProfile     PMaxSchedule
	HasChargingProfile  bool
}

const (
	powerDeliveryReqS0 = iota
	powerDeliveryReqS1
	powerDeliveryReqS2
)

func powerDeliveryReqTable(v *PowerDeliveryReq) grammar.Table {
	return grammar.Table{
		powerDeliveryReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: powerDeliveryReqS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.ChargeProgressStart = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.ChargeProgressStart)
				},
			},
		}},
		powerDeliveryReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: powerDeliveryReqS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeRangedInt(r, 8, 1)
					v.SAScheduleTupleID = uint8(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeRangedInt(w, int64(v.SAScheduleTupleID), 8, 1, 256)
				},
			},
		}},
		powerDeliveryReqS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Present: func() bool { return v.HasChargingProfile },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodePMaxSchedule(r)
					v.ChargingProfile = val
					v.HasChargingProfile = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodePMaxSchedule(w, v.ChargingProfile)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodePowerDeliveryReq decodes a PowerDeliveryReq body from r.
func DecodePowerDeliveryReq(r grammar.BitSource) (PowerDeliveryReq, error) {
	var v PowerDeliveryReq
	err := grammar.Decode(r, powerDeliveryReqTable(&v), powerDeliveryReqS0)
	return v, err
}

// EncodePowerDeliveryReq encodes v to w.
func EncodePowerDeliveryReq(w grammar.BitSink, v PowerDeliveryReq) error {
	return grammar.Encode(w, powerDeliveryReqTable(&v), powerDeliveryReqS0)
}

// PowerDeliveryRes confirms the requested progress and reports current
// EVSE status.
type PowerDeliveryRes struct {
	ResponseCode ResponseCode
	Status       EVSEStatus
}

const (
	powerDeliveryResS0 = iota
	powerDeliveryResS1
)

func powerDeliveryResTable(v *PowerDeliveryRes) grammar.Table {
	return grammar.Table{
		powerDeliveryResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: powerDeliveryResS1, Simple: true,
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
		powerDeliveryResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeEVSEStatus(r)
					v.Status = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeEVSEStatus(w, v.Status)
				},
			},
		}},
	}
}

// DecodePowerDeliveryRes decodes a PowerDeliveryRes body from r.
func DecodePowerDeliveryRes(r grammar.BitSource) (PowerDeliveryRes, error) {
	var v PowerDeliveryRes
	err := grammar.Decode(r, powerDeliveryResTable(&v), powerDeliveryResS0)
	return v, err
}

// EncodePowerDeliveryRes encodes v to w.
func EncodePowerDeliveryRes(w grammar.BitSink, v PowerDeliveryRes) error {
	return grammar.Encode(w, powerDeliveryResTable(&v), powerDeliveryResS0)
}

// ChargingStatusReq carries no fields: it is a heartbeat poll during AC
// charging (spec §4.3's built-in content grammar for an empty complex
// type is just the universal EE_ONLY -> DONE pair).
type ChargingStatusReq struct{}

func chargingStatusReqTable(*ChargingStatusReq) grammar.Table {
	return grammar.Table{
		0: {Transitions: []grammar.Transition{{Kind: grammar.EventEnd, Next: grammar.EEOnly}}},
	}
}

// DecodeChargingStatusReq decodes a ChargingStatusReq body from r.
func DecodeChargingStatusReq(r grammar.BitSource) (ChargingStatusReq, error) {
	var v ChargingStatusReq
	err := grammar.Decode(r, chargingStatusReqTable(&v), 0)
	return v, err
}

// EncodeChargingStatusReq encodes v to w.
func EncodeChargingStatusReq(w grammar.BitSink, v ChargingStatusReq) error {
	return grammar.Encode(w, chargingStatusReqTable(&v), 0)
}

// ChargingStatusRes reports AC metering progress for the current
// SAScheduleTuple.
type ChargingStatusRes struct {
	ResponseCode      ResponseCode
	EVSEID            string
	SAScheduleTupleID uint8
	MeterReading      uint32
	HasMeterReading   bool
	ReceiptRequired   bool
	ACEVSEStatus      ACEVSEStatus
	HasACEVSEStatus   bool
}

const (
	chargingStatusResS0 = iota
	chargingStatusResS1
	chargingStatusResS2
	chargingStatusResS3
	chargingStatusResS4
	chargingStatusResS5
)

func chargingStatusResTable(v *ChargingStatusRes) grammar.Table {
	return grammar.Table{
		chargingStatusResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargingStatusResS1, Simple: true,
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
		chargingStatusResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargingStatusResS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxEVSEIDChars)
					v.EVSEID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.EVSEID, MaxEVSEIDChars)
				},
			},
		}},
		chargingStatusResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargingStatusResS3, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeRangedInt(r, 8, 1)
					v.SAScheduleTupleID = uint8(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeRangedInt(w, int64(v.SAScheduleTupleID), 8, 1, 256)
				},
			},
		}},
		chargingStatusResS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargingStatusResS4, Simple: true,
				Present: func() bool { return v.HasMeterReading },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.MeterReading = uint32(val)
					v.HasMeterReading = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.MeterReading))
				},
			},
			{Kind: grammar.EventEnd, Next: chargingStatusResS4},
		}},
		chargingStatusResS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: chargingStatusResS5, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.ReceiptRequired = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.ReceiptRequired)
				},
			},
		}},
		chargingStatusResS5: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Present: func() bool { return v.HasACEVSEStatus },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeACEVSEStatus(r)
					v.ACEVSEStatus = val
					v.HasACEVSEStatus = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeACEVSEStatus(w, v.ACEVSEStatus)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeChargingStatusRes decodes a ChargingStatusRes body from r.
func DecodeChargingStatusRes(r grammar.BitSource) (ChargingStatusRes, error) {
	var v ChargingStatusRes
	err := grammar.Decode(r, chargingStatusResTable(&v), chargingStatusResS0)
	return v, err
}

// EncodeChargingStatusRes encodes v to w.
func EncodeChargingStatusRes(w grammar.BitSink, v ChargingStatusRes) error {
	return grammar.Encode(w, chargingStatusResTable(&v), chargingStatusResS0)
}

// MeteringReceiptReq forwards a signed meter reading to the EVSE for
// the backend to reconcile billing.
type MeteringReceiptReq struct {
	SessionID    []byte
	MeterStatus  uint16
	MeterReading uint32
}

const (
	meteringReceiptReqS0 = iota
	meteringReceiptReqS1
	meteringReceiptReqS2
)

func meteringReceiptReqTable(v *MeteringReceiptReq) grammar.Table {
	return grammar.Table{
		meteringReceiptReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: meteringReceiptReqS1, Simple: true,
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
		meteringReceiptReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: meteringReceiptReqS2, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 16)
					v.MeterStatus = uint16(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.MeterStatus))
				},
			},
		}},
		meteringReceiptReqS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.MeterReading = uint32(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.MeterReading))
				},
			},
		}},
	}
}

// DecodeMeteringReceiptReq decodes a MeteringReceiptReq body from r.
func DecodeMeteringReceiptReq(r grammar.BitSource) (MeteringReceiptReq, error) {
	var v MeteringReceiptReq
	err := grammar.Decode(r, meteringReceiptReqTable(&v), meteringReceiptReqS0)
	return v, err
}

// EncodeMeteringReceiptReq encodes v to w.
func EncodeMeteringReceiptReq(w grammar.BitSink, v MeteringReceiptReq) error {
	return grammar.Encode(w, meteringReceiptReqTable(&v), meteringReceiptReqS0)
}

// MeteringReceiptRes acknowledges the receipt.
type MeteringReceiptRes struct {
	ResponseCode    ResponseCode
	ACEVSEStatus    ACEVSEStatus
	HasACEVSEStatus bool
}

const (
	meteringReceiptResS0 = iota
	meteringReceiptResS1
)

func meteringReceiptResTable(v *MeteringReceiptRes) grammar.Table {
	return grammar.Table{
		meteringReceiptResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: meteringReceiptResS1, Simple: true,
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
		meteringReceiptResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Present: func() bool { return v.HasACEVSEStatus },
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeACEVSEStatus(r)
					v.ACEVSEStatus = val
					v.HasACEVSEStatus = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeACEVSEStatus(w, v.ACEVSEStatus)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeMeteringReceiptRes decodes a MeteringReceiptRes body from r.
func DecodeMeteringReceiptRes(r grammar.BitSource) (MeteringReceiptRes, error) {
	var v MeteringReceiptRes
	err := grammar.Decode(r, meteringReceiptResTable(&v), meteringReceiptResS0)
	return v, err
}

// EncodeMeteringReceiptRes encodes v to w.
func EncodeMeteringReceiptRes(w grammar.BitSink, v MeteringReceiptRes) error {
	return grammar.Encode(w, meteringReceiptResTable(&v), meteringReceiptResS0)
}

// SessionStopReq ends the V2G communication session.
type SessionStopReq struct {
	State ChargingSessionState
}

const sessionStopReqS0 = 0

func sessionStopReqTable(v *SessionStopReq) grammar.Table {
	return grammar.Table{
		sessionStopReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(chargingSessionCardinality))
					v.State = ChargingSessionState(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.State), int(chargingSessionCardinality))
				},
			},
		}},
	}
}

// DecodeSessionStopReq decodes a SessionStopReq body from r.
func DecodeSessionStopReq(r grammar.BitSource) (SessionStopReq, error) {
	var v SessionStopReq
	err := grammar.Decode(r, sessionStopReqTable(&v), sessionStopReqS0)
	return v, err
}

// EncodeSessionStopReq encodes v to w.
func EncodeSessionStopReq(w grammar.BitSink, v SessionStopReq) error {
	return grammar.Encode(w, sessionStopReqTable(&v), sessionStopReqS0)
}

// SessionStopRes confirms the session ended.
type SessionStopRes struct {
	ResponseCode ResponseCode
}

const sessionStopResS0 = 0

func sessionStopResTable(v *SessionStopRes) grammar.Table {
	return grammar.Table{
		sessionStopResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
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
	}
}

// DecodeSessionStopRes decodes a SessionStopRes body from r.
func DecodeSessionStopRes(r grammar.BitSource) (SessionStopRes, error) {
	var v SessionStopRes
	err := grammar.Decode(r, sessionStopResTable(&v), sessionStopResS0)
	return v, err
}

// EncodeSessionStopRes encodes v to w.
func EncodeSessionStopRes(w grammar.BitSink, v SessionStopRes) error {
	return grammar.Encode(w, sessionStopResTable(&v), sessionStopResS0)
}
