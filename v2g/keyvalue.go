package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// KeyValue is the DSA/RSA public key choice used by CertificateInstallationRes
// (spec §3.1: "KeyValue DSA/RSA choice is explicit"). Exactly one of DSA or
// RSA is populated.
type KeyValue struct {
	DSA []byte
	RSA []byte
}

const (
	keyValueChoiceState = iota
	keyValueDoneState
)

func keyValueTable(v *KeyValue) grammar.Table {
	return grammar.Table{
		keyValueChoiceState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: keyValueDoneState, Simple: true,
				Present: func() bool { return v.DSA != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxKeyBytes)
					v.DSA = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.DSA, MaxKeyBytes)
				},
			},
			{Kind: grammar.EventStart, Next: keyValueDoneState, Simple: true,
				Present: func() bool { return v.RSA != nil },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxKeyBytes)
					v.RSA = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.RSA, MaxKeyBytes)
				},
			},
		}},
		keyValueDoneState: {Transitions: []grammar.Transition{
			{Kind: grammar.EventEnd, Next: grammar.EEOnly},
		}},
	}
}

// DecodeKeyValue decodes a KeyValue choice from r.
func DecodeKeyValue(r grammar.BitSource) (KeyValue, error) {
	var v KeyValue
	err := grammar.Decode(r, keyValueTable(&v), keyValueChoiceState)
	return v, err
}

// EncodeKeyValue encodes v to w.
func EncodeKeyValue(w grammar.BitSink, v KeyValue) error {
	return grammar.Encode(w, keyValueTable(&v), keyValueChoiceState)
}

// CertificateChain is certificateChainType: the leaf X.509 certificate
// plus an ordered, bounded list of intermediate sub-certificates (spec
// §3.1).
type CertificateChain struct {
	Certificate     []byte
	SubCertificates [][]byte
}

const certificateChainLeafState = 0

func certificateChainTable(v *CertificateChain) grammar.Table {
	arrayBase := certificateChainLeafState + 1
	next := arrayBase + MaxCertificatesInChain + 1
	chain := grammar.ArrayChain(arrayBase, MaxCertificatesInChain, next, true,
		func(i int) bool { return i < len(v.SubCertificates) },
		func(r grammar.BitSource, i int) error {
			val, err := wire.DecodeBinary(r, MaxCertificateBytes)
			v.SubCertificates = append(v.SubCertificates, val)
			return err
		},
		func(w grammar.BitSink, i int) error {
			return wire.EncodeBinary(w, v.SubCertificates[i], MaxCertificateBytes)
		},
	)
	table := make(grammar.Table, next+1)
	table[certificateChainLeafState] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: arrayBase, Simple: true,
			Decode: func(r grammar.BitSource) error {
				val, err := wire.DecodeBinary(r, MaxCertificateBytes)
				v.Certificate = val
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return wire.EncodeBinary(w, v.Certificate, MaxCertificateBytes)
			},
		},
	}}
	copy(table[arrayBase:], chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeCertificateChain decodes a certificateChainType from r.
func DecodeCertificateChain(r grammar.BitSource) (CertificateChain, error) {
	var v CertificateChain
	err := grammar.Decode(r, certificateChainTable(&v), certificateChainLeafState)
	return v, err
}

// EncodeCertificateChain encodes v to w. See EncodePMaxSchedule for why
// the bound is checked explicitly.
func EncodeCertificateChain(w grammar.BitSink, v CertificateChain) error {
	if len(v.SubCertificates) > MaxCertificatesInChain {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"SubCertificates"}, "certificate chain length exceeds bound")
	}
	return grammar.Encode(w, certificateChainTable(&v), certificateChainLeafState)
}

// SignatureType is the bounded XML-DSig payload attached to a Header:
// one digest per signed reference plus the signature value itself. The
// full XML-DSig KeyInfo/Transforms structure is out of scope; only the
// byte payloads callers need to verify or produce a signature are kept.
type SignatureType struct {
	DigestValue    []byte
	SignatureValue []byte
}

const (
	signatureS0 = iota
	signatureS1
)

func signatureTable(v *SignatureType) grammar.Table {
	return grammar.Table{
		signatureS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: signatureS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxDigestBytes)
					v.DigestValue = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.DigestValue, MaxDigestBytes)
				},
			},
		}},
		signatureS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBinary(r, MaxSignatureBytes)
					v.SignatureValue = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBinary(w, v.SignatureValue, MaxSignatureBytes)
				},
			},
		}},
	}
}

// DecodeSignature decodes a SignatureType from r.
func DecodeSignature(r grammar.BitSource) (SignatureType, error) {
	var v SignatureType
	err := grammar.Decode(r, signatureTable(&v), signatureS0)
	return v, err
}

// EncodeSignature encodes v to w.
func EncodeSignature(w grammar.BitSink, v SignatureType) error {
	return grammar.Encode(w, signatureTable(&v), signatureS0)
}
