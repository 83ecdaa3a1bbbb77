package v2g

import "github.com/v2g-exi/codec/grammar"

// Body is the V2G_Message.Body choice: exactly one of its 34 variants is
// populated, mirroring the real Body element's all-of-these-as-a-choice
// structure rather than a separate wrapper per message pair. Field order
// here follows the session lifecycle (spec §8): session, service and
// payment negotiation, charge parameter and power delivery, the AC/DC
// charging loops, then session teardown.
type Body struct {
	SessionSetupReq *SessionSetupReq
	SessionSetupRes *SessionSetupRes

	ServiceDiscoveryReq *ServiceDiscoveryReq
	ServiceDiscoveryRes *ServiceDiscoveryRes
	ServiceDetailReq    *ServiceDetailReq
	ServiceDetailRes    *ServiceDetailRes

	PaymentServiceSelectionReq *PaymentServiceSelectionReq
	PaymentServiceSelectionRes *PaymentServiceSelectionRes
	PaymentDetailsReq          *PaymentDetailsReq
	PaymentDetailsRes          *PaymentDetailsRes
	AuthorizationReq           *AuthorizationReq
	AuthorizationRes           *AuthorizationRes

	CertificateInstallationReq *CertificateInstallationReq
	CertificateInstallationRes *CertificateInstallationRes
	CertificateUpdateReq       *CertificateUpdateReq
	CertificateUpdateRes       *CertificateUpdateRes

	ChargeParameterDiscoveryReq *ChargeParameterDiscoveryReq
	ChargeParameterDiscoveryRes *ChargeParameterDiscoveryRes
	PowerDeliveryReq            *PowerDeliveryReq
	PowerDeliveryRes            *PowerDeliveryRes

	ChargingStatusReq  *ChargingStatusReq
	ChargingStatusRes  *ChargingStatusRes
	MeteringReceiptReq *MeteringReceiptReq
	MeteringReceiptRes *MeteringReceiptRes

	CableCheckReq       *CableCheckReq
	CableCheckRes       *CableCheckRes
	PreChargeReq        *PreChargeReq
	PreChargeRes        *PreChargeRes
	CurrentDemandReq    *CurrentDemandReq
	CurrentDemandRes    *CurrentDemandRes
	WeldingDetectionReq *WeldingDetectionReq
	WeldingDetectionRes *WeldingDetectionRes

	SessionStopReq *SessionStopReq
	SessionStopRes *SessionStopRes
}

const (
	bodyChoiceState = iota
	bodyDoneState
)

// bodyVariant binds one Body field to its decode/encode pair and a
// presence check, so bodyTable can build its choice transitions as a
// flat, declarative list instead of 34 hand-written closures.
type bodyVariant struct {
	present func() bool
	decode  func(r grammar.BitSource) error
	encode  func(w grammar.BitSink) error
}

func bodyVariants(v *Body) []bodyVariant {
	return []bodyVariant{
		{
			present: func() bool { return v.SessionSetupReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeSessionSetupReq(r)
				v.SessionSetupReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeSessionSetupReq(w, *v.SessionSetupReq) },
		},
		{
			present: func() bool { return v.SessionSetupRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeSessionSetupRes(r)
				v.SessionSetupRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeSessionSetupRes(w, *v.SessionSetupRes) },
		},
		{
			present: func() bool { return v.ServiceDiscoveryReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeServiceDiscoveryReq(r)
				v.ServiceDiscoveryReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeServiceDiscoveryReq(w, *v.ServiceDiscoveryReq) },
		},
		{
			present: func() bool { return v.ServiceDiscoveryRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeServiceDiscoveryRes(r)
				v.ServiceDiscoveryRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeServiceDiscoveryRes(w, *v.ServiceDiscoveryRes) },
		},
		{
			present: func() bool { return v.ServiceDetailReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeServiceDetailReq(r)
				v.ServiceDetailReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeServiceDetailReq(w, *v.ServiceDetailReq) },
		},
		{
			present: func() bool { return v.ServiceDetailRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeServiceDetailRes(r)
				v.ServiceDetailRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeServiceDetailRes(w, *v.ServiceDetailRes) },
		},
		{
			present: func() bool { return v.PaymentServiceSelectionReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePaymentServiceSelectionReq(r)
				v.PaymentServiceSelectionReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error {
				return EncodePaymentServiceSelectionReq(w, *v.PaymentServiceSelectionReq)
			},
		},
		{
			present: func() bool { return v.PaymentServiceSelectionRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePaymentServiceSelectionRes(r)
				v.PaymentServiceSelectionRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error {
				return EncodePaymentServiceSelectionRes(w, *v.PaymentServiceSelectionRes)
			},
		},
		{
			present: func() bool { return v.PaymentDetailsReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePaymentDetailsReq(r)
				v.PaymentDetailsReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodePaymentDetailsReq(w, *v.PaymentDetailsReq) },
		},
		{
			present: func() bool { return v.PaymentDetailsRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePaymentDetailsRes(r)
				v.PaymentDetailsRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodePaymentDetailsRes(w, *v.PaymentDetailsRes) },
		},
		{
			present: func() bool { return v.AuthorizationReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeAuthorizationReq(r)
				v.AuthorizationReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeAuthorizationReq(w, *v.AuthorizationReq) },
		},
		{
			present: func() bool { return v.AuthorizationRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeAuthorizationRes(r)
				v.AuthorizationRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeAuthorizationRes(w, *v.AuthorizationRes) },
		},
		{
			present: func() bool { return v.CertificateInstallationReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCertificateInstallationReq(r)
				v.CertificateInstallationReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error {
				return EncodeCertificateInstallationReq(w, *v.CertificateInstallationReq)
			},
		},
		{
			present: func() bool { return v.CertificateInstallationRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCertificateInstallationRes(r)
				v.CertificateInstallationRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error {
				return EncodeCertificateInstallationRes(w, *v.CertificateInstallationRes)
			},
		},
		{
			present: func() bool { return v.CertificateUpdateReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCertificateUpdateReq(r)
				v.CertificateUpdateReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeCertificateUpdateReq(w, *v.CertificateUpdateReq) },
		},
		{
			present: func() bool { return v.CertificateUpdateRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCertificateUpdateRes(r)
				v.CertificateUpdateRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeCertificateUpdateRes(w, *v.CertificateUpdateRes) },
		},
		{
			present: func() bool { return v.ChargeParameterDiscoveryReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeChargeParameterDiscoveryReq(r)
				v.ChargeParameterDiscoveryReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error {
				return EncodeChargeParameterDiscoveryReq(w, *v.ChargeParameterDiscoveryReq)
			},
		},
		{
			present: func() bool { return v.ChargeParameterDiscoveryRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeChargeParameterDiscoveryRes(r)
				v.ChargeParameterDiscoveryRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error {
				return EncodeChargeParameterDiscoveryRes(w, *v.ChargeParameterDiscoveryRes)
			},
		},
		{
			present: func() bool { return v.PowerDeliveryReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePowerDeliveryReq(r)
				v.PowerDeliveryReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodePowerDeliveryReq(w, *v.PowerDeliveryReq) },
		},
		{
			present: func() bool { return v.PowerDeliveryRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePowerDeliveryRes(r)
				v.PowerDeliveryRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodePowerDeliveryRes(w, *v.PowerDeliveryRes) },
		},
		{
			present: func() bool { return v.ChargingStatusReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeChargingStatusReq(r)
				v.ChargingStatusReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeChargingStatusReq(w, *v.ChargingStatusReq) },
		},
		{
			present: func() bool { return v.ChargingStatusRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeChargingStatusRes(r)
				v.ChargingStatusRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeChargingStatusRes(w, *v.ChargingStatusRes) },
		},
		{
			present: func() bool { return v.MeteringReceiptReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeMeteringReceiptReq(r)
				v.MeteringReceiptReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeMeteringReceiptReq(w, *v.MeteringReceiptReq) },
		},
		{
			present: func() bool { return v.MeteringReceiptRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeMeteringReceiptRes(r)
				v.MeteringReceiptRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeMeteringReceiptRes(w, *v.MeteringReceiptRes) },
		},
		{
			present: func() bool { return v.CableCheckReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCableCheckReq(r)
				v.CableCheckReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeCableCheckReq(w, *v.CableCheckReq) },
		},
		{
			present: func() bool { return v.CableCheckRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCableCheckRes(r)
				v.CableCheckRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeCableCheckRes(w, *v.CableCheckRes) },
		},
		{
			present: func() bool { return v.PreChargeReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePreChargeReq(r)
				v.PreChargeReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodePreChargeReq(w, *v.PreChargeReq) },
		},
		{
			present: func() bool { return v.PreChargeRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodePreChargeRes(r)
				v.PreChargeRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodePreChargeRes(w, *v.PreChargeRes) },
		},
		{
			present: func() bool { return v.CurrentDemandReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCurrentDemandReq(r)
				v.CurrentDemandReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeCurrentDemandReq(w, *v.CurrentDemandReq) },
		},
		{
			present: func() bool { return v.CurrentDemandRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeCurrentDemandRes(r)
				v.CurrentDemandRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeCurrentDemandRes(w, *v.CurrentDemandRes) },
		},
		{
			present: func() bool { return v.WeldingDetectionReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeWeldingDetectionReq(r)
				v.WeldingDetectionReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeWeldingDetectionReq(w, *v.WeldingDetectionReq) },
		},
		{
			present: func() bool { return v.WeldingDetectionRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeWeldingDetectionRes(r)
				v.WeldingDetectionRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeWeldingDetectionRes(w, *v.WeldingDetectionRes) },
		},
		{
			present: func() bool { return v.SessionStopReq != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeSessionStopReq(r)
				v.SessionStopReq = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeSessionStopReq(w, *v.SessionStopReq) },
		},
		{
			present: func() bool { return v.SessionStopRes != nil },
			decode: func(r grammar.BitSource) error {
				val, err := DecodeSessionStopRes(r)
				v.SessionStopRes = &val
				return err
			},
			encode: func(w grammar.BitSink) error { return EncodeSessionStopRes(w, *v.SessionStopRes) },
		},
	}
}

func bodyTable(v *Body) grammar.Table {
	variants := bodyVariants(v)
	transitions := make([]grammar.Transition, len(variants))
	for i, variant := range variants {
		variant := variant
		transitions[i] = grammar.Transition{
			Kind:    grammar.EventStart,
			Next:    bodyDoneState,
			Present: variant.present,
			Decode:  variant.decode,
			Encode:  variant.encode,
		}
	}
	return grammar.Table{
		bodyChoiceState: {Transitions: transitions},
		bodyDoneState:   {Transitions: []grammar.Transition{{Kind: grammar.EventEnd, Next: grammar.EEOnly}}},
	}
}

// DecodeBody decodes the Body choice from r.
func DecodeBody(r grammar.BitSource) (Body, error) {
	var v Body
	err := grammar.Decode(r, bodyTable(&v), bodyChoiceState)
	return v, err
}

// EncodeBody encodes v to w. Exactly one field of v must be set; see
// EncodeEVChargeParameter for the same caveat on an empty choice.
func EncodeBody(w grammar.BitSink, v Body) error {
	return grammar.Encode(w, bodyTable(&v), bodyChoiceState)
}

// V2GMessage is the top-level V2G_Message element: a mandatory Header
// and exactly one Body variant.
type V2GMessage struct {
	Header Header
	Body   Body
}

const (
	v2gMessageS0 = iota
	v2gMessageS1
)

func v2gMessageTable(v *V2GMessage) grammar.Table {
	return grammar.Table{
		v2gMessageS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: v2gMessageS1,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeHeader(r)
					v.Header = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeHeader(w, v.Header)
				},
			},
		}},
		v2gMessageS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeBody(r)
					v.Body = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeBody(w, v.Body)
				},
			},
		}},
	}
}

// DecodeV2GMessage decodes a complete V2G_Message from r.
func DecodeV2GMessage(r grammar.BitSource) (V2GMessage, error) {
	var v V2GMessage
	err := grammar.Decode(r, v2gMessageTable(&v), v2gMessageS0)
	return v, err
}

// EncodeV2GMessage encodes v to w.
func EncodeV2GMessage(w grammar.BitSink, v V2GMessage) error {
	return grammar.Encode(w, v2gMessageTable(&v), v2gMessageS0)
}
