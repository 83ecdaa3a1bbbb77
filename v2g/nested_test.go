package v2g

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
)

func TestHeaderRoundTripAllFieldsAbsent(t *testing.T) {
	src := Header{SessionID: []byte{0x01, 0x02}}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeHeader(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeHeader(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestHeaderRoundTripAllFieldsPresent(t *testing.T) {
	src := Header{
		SessionID:       []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x01, 0x02},
		Notification:    EVSENotificationStopCharging,
		HasNotification: true,
		Signature: SignatureType{
			DigestValue:    []byte{1, 2, 3, 4},
			SignatureValue: []byte{5, 6, 7, 8},
		},
		HasSignature: true,
	}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeHeader(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeHeader(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestEVChargeParameterACBranch(t *testing.T) {
	ac := ACEVChargeParameter{
		EAmount:      PhysicalValue{Multiplier: 0, Unit: UnitSymbolWattHours, Value: 20000},
		EVMaxVoltage: PhysicalValue{Multiplier: 0, Unit: UnitSymbolVolt, Value: 400},
		EVMaxCurrent: PhysicalValue{Multiplier: 0, Unit: UnitSymbolAmpere, Value: 32},
		EVMinCurrent: PhysicalValue{Multiplier: 0, Unit: UnitSymbolAmpere, Value: 0},
	}
	src := EVChargeParameter{AC: &ac}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeEVChargeParameter(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeEVChargeParameter(r)
	require.NoError(t, err)
	require.Nil(t, got.DC)
	require.Equal(t, *src.AC, *got.AC)
}

func TestEVChargeParameterDCBranch(t *testing.T) {
	dc := DCEVChargeParameter{
		Status:         DCEVStatus{Ready: true, ErrorCode: DCEVErrorCodeNoError, RESSSOC: 55},
		MaxVoltage:     PhysicalValue{Unit: UnitSymbolVolt, Value: 500},
		MaxCurrent:     PhysicalValue{Unit: UnitSymbolAmpere, Value: 125},
		EnergyCapacity: PhysicalValue{Unit: UnitSymbolWattHours, Value: 30000},
	}
	src := EVChargeParameter{DC: &dc}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeEVChargeParameter(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeEVChargeParameter(r)
	require.NoError(t, err)
	require.Nil(t, got.AC)
	require.Equal(t, *src.DC, *got.DC)
}

func TestKeyValueRSABranch(t *testing.T) {
	src := KeyValue{RSA: []byte{1, 2, 3, 4, 5}}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeKeyValue(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeKeyValue(r)
	require.NoError(t, err)
	require.Nil(t, got.DSA)
	require.Equal(t, src.RSA, got.RSA)
}

func TestCertificateChainRoundTrip(t *testing.T) {
	src := CertificateChain{
		Certificate:     []byte{0xDE, 0xAD, 0xBE, 0xEF},
		SubCertificates: [][]byte{{0x01}, {0x02, 0x02}},
	}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeCertificateChain(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeCertificateChain(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestEVSEStatusRoundTrips(t *testing.T) {
	acSrc := ACEVSEStatus{Notification: EVSENotificationReNegotiation, RCD: true}
	var acBuf bytes.Buffer
	acW := bitio.NewWriter(bufio.NewWriter(&acBuf))
	require.NoError(t, EncodeACEVSEStatus(acW, acSrc))
	require.NoError(t, acW.Flush())
	acGot, err := DecodeACEVSEStatus(bitio.NewReader(bufio.NewReader(bytes.NewReader(acBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, acSrc, acGot)

	dcSrc := DCEVSEStatus{
		Notification: EVSENotificationNone,
		Isolation:    IsolationStatusValid,
		StatusCode:   DCEVSEStatusCodeEVSEReady,
	}
	var dcBuf bytes.Buffer
	dcW := bitio.NewWriter(bufio.NewWriter(&dcBuf))
	require.NoError(t, EncodeDCEVSEStatus(dcW, dcSrc))
	require.NoError(t, dcW.Flush())
	dcGot, err := DecodeDCEVSEStatus(bitio.NewReader(bufio.NewReader(bytes.NewReader(dcBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, dcSrc, dcGot)
}
