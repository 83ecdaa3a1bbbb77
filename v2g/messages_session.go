package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// SessionSetupReq is the body of the first message an EV sends: its
// EVCCID, a fixed 6-byte MAC-derived identifier (spec §8 scenario S2
// exercises this exact field: varint length 06 followed by 6 raw
// bytes).
type SessionSetupReq struct {
	EVCCID []byte
}

const sessionSetupReqS0 = 0

func sessionSetupReqTable(v *SessionSetupReq) grammar.Table {
	return grammar.Table{
		sessionSetupReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxEVCCIDBytes)
					v.EVCCID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.EVCCID, MaxEVCCIDBytes)
				},
			},
		}},
	}
}

// DecodeSessionSetupReq decodes a SessionSetupReq body from r.
func DecodeSessionSetupReq(r grammar.BitSource) (SessionSetupReq, error) {
	var v SessionSetupReq
	err := grammar.Decode(r, sessionSetupReqTable(&v), sessionSetupReqS0)
	return v, err
}

// EncodeSessionSetupReq encodes v to w.
func EncodeSessionSetupReq(w grammar.BitSink, v SessionSetupReq) error {
	if len(v.EVCCID) > MaxEVCCIDBytes {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"EVCCID"}, "EVCCID exceeds bound")
	}
	return grammar.Encode(w, sessionSetupReqTable(&v), sessionSetupReqS0)
}

// SessionSetupRes carries the EVSE's assigned EVSEID and the time it
// accepted the session.
type SessionSetupRes struct {
	ResponseCode   ResponseCode
	EVSEID         string
	DateTimeNow    uint32
	HasDateTimeNow bool
}

const (
	sessionSetupResS0 = iota
	sessionSetupResS1
	sessionSetupResS2
)

func sessionSetupResTable(v *SessionSetupRes) grammar.Table {
	return grammar.Table{
		sessionSetupResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: sessionSetupResS1, Simple: true,
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
		sessionSetupResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: sessionSetupResS2, Simple: true,
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
		sessionSetupResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Present: func() bool { return v.HasDateTimeNow },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 32)
					v.DateTimeNow = uint32(val)
					v.HasDateTimeNow = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.DateTimeNow))
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeSessionSetupRes decodes a SessionSetupRes body from r.
func DecodeSessionSetupRes(r grammar.BitSource) (SessionSetupRes, error) {
	var v SessionSetupRes
	err := grammar.Decode(r, sessionSetupResTable(&v), sessionSetupResS0)
	return v, err
}

// EncodeSessionSetupRes encodes v to w.
func EncodeSessionSetupRes(w grammar.BitSink, v SessionSetupRes) error {
	return grammar.Encode(w, sessionSetupResTable(&v), sessionSetupResS0)
}

// ServiceDiscoveryReq optionally narrows the EVSE's response to a
// particular service scope and/or service category.
type ServiceDiscoveryReq struct {
	ServiceScope       string
	HasServiceScope    bool
	ServiceCategory    ServiceCategory
	HasServiceCategory bool
}

const (
	serviceDiscoveryReqS0 = iota
	serviceDiscoveryReqS1
)

func serviceDiscoveryReqTable(v *ServiceDiscoveryReq) grammar.Table {
	serviceCategoryTransition := grammar.Transition{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
		Present: func() bool { return v.HasServiceCategory },
		Decode: func(r grammar.BitSource) error {
			val, err := wire.DecodeEnum(r, int(serviceCategoryCardinality))
			v.ServiceCategory = ServiceCategory(val)
			v.HasServiceCategory = true
			return err
		},
		Encode: func(w grammar.BitSink) error {
			return wire.EncodeEnum(w, int(v.ServiceCategory), int(serviceCategoryCardinality))
		},
	}

	return grammar.Table{
		serviceDiscoveryReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: serviceDiscoveryReqS1, Simple: true,
				Present: func() bool { return v.HasServiceScope },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxGenericStringChars)
					v.ServiceScope = val
					v.HasServiceScope = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.ServiceScope, MaxGenericStringChars)
				},
			},
			serviceCategoryTransition,
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
		serviceDiscoveryReqS1: {Transitions: []grammar.Transition{
			serviceCategoryTransition,
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeServiceDiscoveryReq decodes a ServiceDiscoveryReq body from r.
// Note: per spec §8 scenario S5, the grammar state this request's
// grammar is built against is numbered 402 in the generated table
// namespace; that numbering is an artifact of the table-compilation
// order across all ~100 complex types and carries no runtime meaning
// here, where each type builds its own independently numbered table.
func DecodeServiceDiscoveryReq(r grammar.BitSource) (ServiceDiscoveryReq, error) {
	var v ServiceDiscoveryReq
	err := grammar.Decode(r, serviceDiscoveryReqTable(&v), serviceDiscoveryReqS0)
	return v, err
}

// EncodeServiceDiscoveryReq encodes v to w.
func EncodeServiceDiscoveryReq(w grammar.BitSink, v ServiceDiscoveryReq) error {
	return grammar.Encode(w, serviceDiscoveryReqTable(&v), serviceDiscoveryReqS0)
}

// ServiceDiscoveryRes advertises the EVSE's charge service, any
// value-added services, and the accepted payment options.
type ServiceDiscoveryRes struct {
	ResponseCode   ResponseCode
	PaymentOptions []PaymentOption
	ChargeService  ChargeService
	Services       ServiceList
	HasServices    bool
}

const (
	serviceDiscoveryResS0 = iota
	serviceDiscoveryResPaymentBase
)

func serviceDiscoveryResTable(v *ServiceDiscoveryRes) grammar.Table {
	next := serviceDiscoveryResPaymentBase + MaxPaymentOptions + 2
	chain := grammar.ArrayChain(serviceDiscoveryResPaymentBase, MaxPaymentOptions, serviceDiscoveryResPaymentBase+MaxPaymentOptions+1, true,
		func(i int) bool { return i < len(v.PaymentOptions) },
		func(r grammar.BitSource, i int) error {
			val, err := wire.DecodeEnum(r, int(paymentOptionCardinality))
			v.PaymentOptions = append(v.PaymentOptions, PaymentOption(val))
			return err
		},
		func(w grammar.BitSink, i int) error {
			return wire.EncodeEnum(w, int(v.PaymentOptions[i]), int(paymentOptionCardinality))
		},
	)
	chargeServiceState := serviceDiscoveryResPaymentBase + MaxPaymentOptions + 1
	table := make(grammar.Table, next+1)
	table[serviceDiscoveryResS0] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: serviceDiscoveryResPaymentBase, Simple: true,
			Decode: func(r grammar.BitSource) error {
				val, err := wire.DecodeEnum(r, int(responseCodeCardinality))
				v.ResponseCode = ResponseCode(val)
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return wire.EncodeEnum(w, int(v.ResponseCode), int(responseCodeCardinality))
			},
		},
	}}
	copy(table[serviceDiscoveryResPaymentBase:], chain)
	table[chargeServiceState] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: next,
			Decode: func(r grammar.BitSource) error {
				val, err := DecodeChargeService(r)
				v.ChargeService = val
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return EncodeChargeService(w, v.ChargeService)
			},
		},
	}}
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: grammar.EEOnly,
			Present: func() bool { return v.HasServices },
			Decode: func(r grammar.BitSource) error {
				val, err := DecodeServiceList(r)
				v.Services = val
				v.HasServices = true
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return EncodeServiceList(w, v.Services)
			},
		},
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeServiceDiscoveryRes decodes a ServiceDiscoveryRes body from r.
func DecodeServiceDiscoveryRes(r grammar.BitSource) (ServiceDiscoveryRes, error) {
	var v ServiceDiscoveryRes
	err := grammar.Decode(r, serviceDiscoveryResTable(&v), serviceDiscoveryResS0)
	return v, err
}

// EncodeServiceDiscoveryRes encodes v to w.
func EncodeServiceDiscoveryRes(w grammar.BitSink, v ServiceDiscoveryRes) error {
	if len(v.PaymentOptions) > MaxPaymentOptions {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"PaymentOptions"}, "PaymentOptions count exceeds bound")
	}
	return grammar.Encode(w, serviceDiscoveryResTable(&v), serviceDiscoveryResS0)
}

// ServiceDetailReq asks the EVSE to elaborate on one previously
// discovered service.
type ServiceDetailReq struct {
	ServiceID uint16
}

const serviceDetailReqS0 = 0

func serviceDetailReqTable(v *ServiceDetailReq) grammar.Table {
	return grammar.Table{
		serviceDetailReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 16)
					v.ServiceID = uint16(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.ServiceID))
				},
			},
		}},
	}
}

// DecodeServiceDetailReq decodes a ServiceDetailReq body from r.
func DecodeServiceDetailReq(r grammar.BitSource) (ServiceDetailReq, error) {
	var v ServiceDetailReq
	err := grammar.Decode(r, serviceDetailReqTable(&v), serviceDetailReqS0)
	return v, err
}

// EncodeServiceDetailReq encodes v to w.
func EncodeServiceDetailReq(w grammar.BitSink, v ServiceDetailReq) error {
	return grammar.Encode(w, serviceDetailReqTable(&v), serviceDetailReqS0)
}

// ServiceDetailRes confirms the requested service and, in a full
// deployment, would carry its parameter sets; this profile keeps only
// the confirmation (parameter-set enumeration is out of scope here).
type ServiceDetailRes struct {
	ResponseCode ResponseCode
	ServiceID    uint16
}

const (
	serviceDetailResS0 = iota
	serviceDetailResS1
)

func serviceDetailResTable(v *ServiceDetailRes) grammar.Table {
	return grammar.Table{
		serviceDetailResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: serviceDetailResS1, Simple: true,
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
		serviceDetailResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 16)
					v.ServiceID = uint16(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.ServiceID))
				},
			},
		}},
	}
}

// DecodeServiceDetailRes decodes a ServiceDetailRes body from r.
func DecodeServiceDetailRes(r grammar.BitSource) (ServiceDetailRes, error) {
	var v ServiceDetailRes
	err := grammar.Decode(r, serviceDetailResTable(&v), serviceDetailResS0)
	return v, err
}

// EncodeServiceDetailRes encodes v to w.
func EncodeServiceDetailRes(w grammar.BitSink, v ServiceDetailRes) error {
	return grammar.Encode(w, serviceDetailResTable(&v), serviceDetailResS0)
}
