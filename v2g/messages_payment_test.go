package v2g

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
)

func TestPaymentServiceSelectionRoundTrip(t *testing.T) {
	req := PaymentServiceSelectionReq{
		SelectedPaymentOption: PaymentOptionContract,
		SelectedServiceIDs:    []uint16{1, 2, 3},
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodePaymentServiceSelectionReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodePaymentServiceSelectionReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)
}

func TestPaymentDetailsRoundTrip(t *testing.T) {
	req := PaymentDetailsReq{
		EMAID: "DEABC00000001",
		CertChain: CertificateChain{
			Certificate:     []byte{1, 2, 3},
			SubCertificates: [][]byte{{4, 5}},
		},
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodePaymentDetailsReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodePaymentDetailsReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)

	res := PaymentDetailsRes{ResponseCode: ResponseCodeOK, GenChallenge: []byte("0123456789ABCDEF")[:16]}
	var resBuf bytes.Buffer
	resW := bitio.NewWriter(bufio.NewWriter(&resBuf))
	require.NoError(t, EncodePaymentDetailsRes(resW, res))
	require.NoError(t, resW.Flush())
	gotRes, err := DecodePaymentDetailsRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(resBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, res, gotRes)
}

func TestAuthorizationRoundTrip(t *testing.T) {
	req := AuthorizationReq{}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeAuthorizationReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodeAuthorizationReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)
}

func TestCertificateInstallationRoundTrip(t *testing.T) {
	req := CertificateInstallationReq{
		OEMProvisioningCert: []byte{0xAA, 0xBB},
		RootCertificateIDs:  [][]byte{{1, 2, 3, 4}, {5, 6}},
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeCertificateInstallationReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodeCertificateInstallationReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)

	res := CertificateInstallationRes{
		ResponseCode:        ResponseCodeOK,
		ContractCertChain:   CertificateChain{Certificate: []byte{1}},
		EncryptedPrivateKey: []byte{2, 2, 2},
		DHPublicKey:         KeyValue{RSA: []byte{3, 3}},
		EMAID:               "DEABC00000002",
	}
	var resBuf bytes.Buffer
	resW := bitio.NewWriter(bufio.NewWriter(&resBuf))
	require.NoError(t, EncodeCertificateInstallationRes(resW, res))
	require.NoError(t, resW.Flush())
	gotRes, err := DecodeCertificateInstallationRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(resBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, res, gotRes)
}
