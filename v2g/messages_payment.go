package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// PaymentServiceSelectionReq picks the payment method and the services
// the EV wants activated for the session.
type PaymentServiceSelectionReq struct {
	SelectedPaymentOption PaymentOption
	SelectedServiceIDs    []uint16
}

const (
	paymentServiceSelReqS0 = iota
	paymentServiceSelReqIDsBase
)

func paymentServiceSelectionReqTable(v *PaymentServiceSelectionReq) grammar.Table {
	next := paymentServiceSelReqIDsBase + MaxServicesPerResponse + 1
	chain := grammar.ArrayChain(paymentServiceSelReqIDsBase, MaxServicesPerResponse, next, true,
		func(i int) bool { return i < len(v.SelectedServiceIDs) },
		func(r grammar.BitSource, i int) error {
			val, err := wire.DecodeVarUint(r, 16)
			v.SelectedServiceIDs = append(v.SelectedServiceIDs, uint16(val))
			return err
		},
		func(w grammar.BitSink, i int) error {
			return wire.EncodeVarUint(w, uint64(v.SelectedServiceIDs[i]))
		},
	)
	table := make(grammar.Table, next+1)
	table[paymentServiceSelReqS0] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: paymentServiceSelReqIDsBase, Simple: true,
			Decode: func(r grammar.BitSource) error {
				val, err := wire.DecodeEnum(r, int(paymentOptionCardinality))
				v.SelectedPaymentOption = PaymentOption(val)
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return wire.EncodeEnum(w, int(v.SelectedPaymentOption), int(paymentOptionCardinality))
			},
		},
	}}
	copy(table[paymentServiceSelReqIDsBase:], chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodePaymentServiceSelectionReq decodes a PaymentServiceSelectionReq
// body from r.
func DecodePaymentServiceSelectionReq(r grammar.BitSource) (PaymentServiceSelectionReq, error) {
	var v PaymentServiceSelectionReq
	err := grammar.Decode(r, paymentServiceSelectionReqTable(&v), paymentServiceSelReqS0)
	return v, err
}

// EncodePaymentServiceSelectionReq encodes v to w.
func EncodePaymentServiceSelectionReq(w grammar.BitSink, v PaymentServiceSelectionReq) error {
	if len(v.SelectedServiceIDs) > MaxServicesPerResponse {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"SelectedServiceIDs"}, "selected service count exceeds bound")
	}
	return grammar.Encode(w, paymentServiceSelectionReqTable(&v), paymentServiceSelReqS0)
}

// PaymentServiceSelectionRes carries only the outcome.
type PaymentServiceSelectionRes struct {
	ResponseCode ResponseCode
}

const paymentServiceSelResS0 = 0

func paymentServiceSelectionResTable(v *PaymentServiceSelectionRes) grammar.Table {
	return grammar.Table{
		paymentServiceSelResS0: {Transitions: []grammar.Transition{
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

// DecodePaymentServiceSelectionRes decodes a PaymentServiceSelectionRes
// body from r.
func DecodePaymentServiceSelectionRes(r grammar.BitSource) (PaymentServiceSelectionRes, error) {
	var v PaymentServiceSelectionRes
	err := grammar.Decode(r, paymentServiceSelectionResTable(&v), paymentServiceSelResS0)
	return v, err
}

// EncodePaymentServiceSelectionRes encodes v to w.
func EncodePaymentServiceSelectionRes(w grammar.BitSink, v PaymentServiceSelectionRes) error {
	return grammar.Encode(w, paymentServiceSelectionResTable(&v), paymentServiceSelResS0)
}

// PaymentDetailsReq presents the EV's contract certificate chain for
// verification.
type PaymentDetailsReq struct {
	EMAID     string
	CertChain CertificateChain
}

const (
	paymentDetailsReqS0 = iota
	paymentDetailsReqS1
)

func paymentDetailsReqTable(v *PaymentDetailsReq) grammar.Table {
	return grammar.Table{
		paymentDetailsReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: paymentDetailsReqS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxEMAIDChars)
					v.EMAID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.EMAID, MaxEMAIDChars)
				},
			},
		}},
		paymentDetailsReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeCertificateChain(r)
					v.CertChain = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeCertificateChain(w, v.CertChain)
				},
			},
		}},
	}
}

// DecodePaymentDetailsReq decodes a PaymentDetailsReq body from r.
func DecodePaymentDetailsReq(r grammar.BitSource) (PaymentDetailsReq, error) {
	var v PaymentDetailsReq
	err := grammar.Decode(r, paymentDetailsReqTable(&v), paymentDetailsReqS0)
	return v, err
}

// EncodePaymentDetailsReq encodes v to w.
func EncodePaymentDetailsReq(w grammar.BitSink, v PaymentDetailsReq) error {
	return grammar.Encode(w, paymentDetailsReqTable(&v), paymentDetailsReqS0)
}

// PaymentDetailsRes returns a fresh challenge the EV must sign to prove
// possession of the contract certificate's private key.
type PaymentDetailsRes struct {
	ResponseCode ResponseCode
	GenChallenge []byte
}

const (
	paymentDetailsResS0 = iota
	paymentDetailsResS1
)

func paymentDetailsResTable(v *PaymentDetailsRes) grammar.Table {
	return grammar.Table{
		paymentDetailsResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: paymentDetailsResS1, Simple: true,
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
		paymentDetailsResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxChallengeBytes)
					v.GenChallenge = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.GenChallenge, MaxChallengeBytes)
				},
			},
		}},
	}
}

// DecodePaymentDetailsRes decodes a PaymentDetailsRes body from r.
func DecodePaymentDetailsRes(r grammar.BitSource) (PaymentDetailsRes, error) {
	var v PaymentDetailsRes
	err := grammar.Decode(r, paymentDetailsResTable(&v), paymentDetailsResS0)
	return v, err
}

// EncodePaymentDetailsRes encodes v to w.
func EncodePaymentDetailsRes(w grammar.BitSink, v PaymentDetailsRes) error {
	return grammar.Encode(w, paymentDetailsResTable(&v), paymentDetailsResS0)
}

// AuthorizationReq presents the signed challenge from PaymentDetailsRes
// (present on the first AuthorizationReq of a sequence; subsequent
// polls omit it).
type AuthorizationReq struct {
	GenChallenge    []byte
	HasGenChallenge bool
}

const authorizationReqS0 = 0

func authorizationReqTable(v *AuthorizationReq) grammar.Table {
	return grammar.Table{
		authorizationReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Present: func() bool { return v.HasGenChallenge },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxChallengeBytes)
					v.GenChallenge = val
					v.HasGenChallenge = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.GenChallenge, MaxChallengeBytes)
				},
			},
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeAuthorizationReq decodes an AuthorizationReq body from r.
func DecodeAuthorizationReq(r grammar.BitSource) (AuthorizationReq, error) {
	var v AuthorizationReq
	err := grammar.Decode(r, authorizationReqTable(&v), authorizationReqS0)
	return v, err
}

// EncodeAuthorizationReq encodes v to w.
func EncodeAuthorizationReq(w grammar.BitSink, v AuthorizationReq) error {
	return grammar.Encode(w, authorizationReqTable(&v), authorizationReqS0)
}

// AuthorizationRes reports whether authorization finished or is still
// pending (EVSEProcessing drives the EV's retry loop).
type AuthorizationRes struct {
	ResponseCode   ResponseCode
	EVSEProcessing EVSEProcessing
}

const (
	authorizationResS0 = iota
	authorizationResS1
)

func authorizationResTable(v *AuthorizationRes) grammar.Table {
	return grammar.Table{
		authorizationResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: authorizationResS1, Simple: true,
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
		authorizationResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
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
	}
}

// DecodeAuthorizationRes decodes an AuthorizationRes body from r.
func DecodeAuthorizationRes(r grammar.BitSource) (AuthorizationRes, error) {
	var v AuthorizationRes
	err := grammar.Decode(r, authorizationResTable(&v), authorizationResS0)
	return v, err
}

// EncodeAuthorizationRes encodes v to w.
func EncodeAuthorizationRes(w grammar.BitSink, v AuthorizationRes) error {
	return grammar.Encode(w, authorizationResTable(&v), authorizationResS0)
}

// CertificateInstallationReq asks the backend (relayed via the EVSE) to
// issue a fresh contract certificate against an OEM-provisioning
// certificate.
type CertificateInstallationReq struct {
	OEMProvisioningCert []byte
	RootCertificateIDs  [][]byte
}

const certInstallReqCertState = 0

func certificateInstallationReqTable(v *CertificateInstallationReq) grammar.Table {
	arrayBase := certInstallReqCertState + 1
	next := arrayBase + MaxRootCertIDs + 1
	chain := grammar.ArrayChain(arrayBase, MaxRootCertIDs, next, true,
		func(i int) bool { return i < len(v.RootCertificateIDs) },
		func(r grammar.BitSource, i int) error {
			val, err := wire.DecodeBinary(r, MaxDigestBytes)
			v.RootCertificateIDs = append(v.RootCertificateIDs, val)
			return err
		},
		func(w grammar.BitSink, i int) error {
			return wire.EncodeBinary(w, v.RootCertificateIDs[i], MaxDigestBytes)
		},
	)
	table := make(grammar.Table, next+1)
	table[certInstallReqCertState] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: arrayBase, Simple: true,
			Decode: func(r grammar.BitSource) error {
				val, err := wire.DecodeBinary(r, MaxCertificateBytes)
				v.OEMProvisioningCert = val
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return wire.EncodeBinary(w, v.OEMProvisioningCert, MaxCertificateBytes)
			},
		},
	}}
	copy(table[arrayBase:], chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeCertificateInstallationReq decodes a CertificateInstallationReq
// body from r.
func DecodeCertificateInstallationReq(r grammar.BitSource) (CertificateInstallationReq, error) {
	var v CertificateInstallationReq
	err := grammar.Decode(r, certificateInstallationReqTable(&v), certInstallReqCertState)
	return v, err
}

// EncodeCertificateInstallationReq encodes v to w. See
// EncodePMaxSchedule for why the bound is checked explicitly.
func EncodeCertificateInstallationReq(w grammar.BitSink, v CertificateInstallationReq) error {
	if len(v.RootCertificateIDs) > MaxRootCertIDs {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"RootCertificateIDs"}, "root certificate id count exceeds bound")
	}
	return grammar.Encode(w, certificateInstallationReqTable(&v), certInstallReqCertState)
}

// CertificateInstallationRes returns the freshly issued contract
// certificate chain, its encrypted private key, and the key agreement
// material needed to decrypt it.
type CertificateInstallationRes struct {
	ResponseCode        ResponseCode
	ContractCertChain   CertificateChain
	EncryptedPrivateKey []byte
	DHPublicKey         KeyValue
	EMAID               string
}

const (
	certInstallResS0 = iota
	certInstallResS1
	certInstallResS2
	certInstallResS3
	certInstallResS4
)

func certificateInstallationResTable(v *CertificateInstallationRes) grammar.Table {
	return grammar.Table{
		certInstallResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certInstallResS1, Simple: true,
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
		certInstallResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certInstallResS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeCertificateChain(r)
					v.ContractCertChain = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeCertificateChain(w, v.ContractCertChain)
				},
			},
		}},
		certInstallResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certInstallResS3, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxKeyBytes)
					v.EncryptedPrivateKey = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.EncryptedPrivateKey, MaxKeyBytes)
				},
			},
		}},
		certInstallResS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certInstallResS4,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeKeyValue(r)
					v.DHPublicKey = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeKeyValue(w, v.DHPublicKey)
				},
			},
		}},
		certInstallResS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxEMAIDChars)
					v.EMAID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.EMAID, MaxEMAIDChars)
				},
			},
		}},
	}
}

// DecodeCertificateInstallationRes decodes a CertificateInstallationRes
// body from r.
func DecodeCertificateInstallationRes(r grammar.BitSource) (CertificateInstallationRes, error) {
	var v CertificateInstallationRes
	err := grammar.Decode(r, certificateInstallationResTable(&v), certInstallResS0)
	return v, err
}

// EncodeCertificateInstallationRes encodes v to w.
func EncodeCertificateInstallationRes(w grammar.BitSink, v CertificateInstallationRes) error {
	return grammar.Encode(w, certificateInstallationResTable(&v), certInstallResS0)
}

// CertificateUpdateReq asks for the contract certificate chain to be
// renewed ahead of expiry.
type CertificateUpdateReq struct {
	EMAID     string
	CertChain CertificateChain
}

const (
	certUpdateReqS0 = iota
	certUpdateReqS1
)

func certificateUpdateReqTable(v *CertificateUpdateReq) grammar.Table {
	return grammar.Table{
		certUpdateReqS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certUpdateReqS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxEMAIDChars)
					v.EMAID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.EMAID, MaxEMAIDChars)
				},
			},
		}},
		certUpdateReqS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeCertificateChain(r)
					v.CertChain = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeCertificateChain(w, v.CertChain)
				},
			},
		}},
	}
}

// DecodeCertificateUpdateReq decodes a CertificateUpdateReq body from r.
func DecodeCertificateUpdateReq(r grammar.BitSource) (CertificateUpdateReq, error) {
	var v CertificateUpdateReq
	err := grammar.Decode(r, certificateUpdateReqTable(&v), certUpdateReqS0)
	return v, err
}

// EncodeCertificateUpdateReq encodes v to w.
func EncodeCertificateUpdateReq(w grammar.BitSink, v CertificateUpdateReq) error {
	return grammar.Encode(w, certificateUpdateReqTable(&v), certUpdateReqS0)
}

// CertificateUpdateRes mirrors CertificateInstallationRes's shape: a
// renewed chain, re-encrypted private key and key agreement material.
type CertificateUpdateRes struct {
	ResponseCode        ResponseCode
	ContractCertChain   CertificateChain
	EncryptedPrivateKey []byte
	DHPublicKey         KeyValue
	EMAID               string
}

const (
	certUpdateResS0 = iota
	certUpdateResS1
	certUpdateResS2
	certUpdateResS3
	certUpdateResS4
)

// certificateUpdateResTable has the same field sequence as
// CertificateInstallationRes's table; kept as a separate function
// (rather than a shared helper) since the two types are independent
// wire contracts that happen to coincide today.
func certificateUpdateResTable(v *CertificateUpdateRes) grammar.Table {
	return grammar.Table{
		certUpdateResS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certUpdateResS1, Simple: true,
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
		certUpdateResS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certUpdateResS2,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeCertificateChain(r)
					v.ContractCertChain = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeCertificateChain(w, v.ContractCertChain)
				},
			},
		}},
		certUpdateResS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certUpdateResS3, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxKeyBytes)
					v.EncryptedPrivateKey = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.EncryptedPrivateKey, MaxKeyBytes)
				},
			},
		}},
		certUpdateResS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: certUpdateResS4,
				Decode: func(r grammar.BitSource) error {
					val, err := DecodeKeyValue(r)
					v.DHPublicKey = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return EncodeKeyValue(w, v.DHPublicKey)
				},
			},
		}},
		certUpdateResS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxEMAIDChars)
					v.EMAID = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.EMAID, MaxEMAIDChars)
				},
			},
		}},
	}
}

// DecodeCertificateUpdateRes decodes a CertificateUpdateRes body from r.
func DecodeCertificateUpdateRes(r grammar.BitSource) (CertificateUpdateRes, error) {
	var v CertificateUpdateRes
	err := grammar.Decode(r, certificateUpdateResTable(&v), certUpdateResS0)
	return v, err
}

// EncodeCertificateUpdateRes encodes v to w.
func EncodeCertificateUpdateRes(w grammar.BitSink, v CertificateUpdateRes) error {
	return grammar.Encode(w, certificateUpdateResTable(&v), certUpdateResS0)
}
