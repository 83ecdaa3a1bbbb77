package v2g

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
)

func TestCableCheckRoundTrip(t *testing.T) {
	req := CableCheckReq{Status: DCEVStatus{Ready: true, RESSSOC: 42}}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeCableCheckReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodeCableCheckReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)

	resAbsent := CableCheckRes{ResponseCode: ResponseCodeOK, EVSEProcessing: EVSEProcessingOngoing}
	var absentBuf bytes.Buffer
	absentW := bitio.NewWriter(bufio.NewWriter(&absentBuf))
	require.NoError(t, EncodeCableCheckRes(absentW, resAbsent))
	require.NoError(t, absentW.Flush())
	gotAbsent, err := DecodeCableCheckRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(absentBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, resAbsent, gotAbsent)

	resPresent := CableCheckRes{
		ResponseCode:       ResponseCodeOK,
		EVSEProcessing:     EVSEProcessingFinished,
		IsolationStatus:    IsolationStatusValid,
		HasIsolationStatus: true,
	}
	var presentBuf bytes.Buffer
	presentW := bitio.NewWriter(bufio.NewWriter(&presentBuf))
	require.NoError(t, EncodeCableCheckRes(presentW, resPresent))
	require.NoError(t, presentW.Flush())
	gotPresent, err := DecodeCableCheckRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(presentBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, resPresent, gotPresent)
}

func TestPreChargeRoundTrip(t *testing.T) {
	req := PreChargeReq{
		Status:        DCEVStatus{Ready: true},
		TargetVoltage: PhysicalValue{Value: 400, Multiplier: 0},
		TargetCurrent: PhysicalValue{Value: 2, Multiplier: 0},
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodePreChargeReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodePreChargeReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)

	res := PreChargeRes{
		ResponseCode:   ResponseCodeOK,
		Status:         DCEVSEStatus{Notification: EVSENotificationNone},
		PresentVoltage: PhysicalValue{Value: 398, Multiplier: 0},
	}
	var resBuf bytes.Buffer
	resW := bitio.NewWriter(bufio.NewWriter(&resBuf))
	require.NoError(t, EncodePreChargeRes(resW, res))
	require.NoError(t, resW.Flush())
	gotRes, err := DecodePreChargeRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(resBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, res, gotRes)
}

func TestCurrentDemandRoundTrip(t *testing.T) {
	req := CurrentDemandReq{
		Status:               DCEVStatus{Ready: true, RESSSOC: 55},
		TargetCurrent:        PhysicalValue{Value: 100, Multiplier: 0},
		TargetVoltage:        PhysicalValue{Value: 400, Multiplier: 0},
		MaximumCurrentLimit:  PhysicalValue{Value: 125, Multiplier: 0},
		HasMaxCurrentLimit:   true,
		BulkChargingComplete: false,
		ChargingComplete:     false,
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeCurrentDemandReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodeCurrentDemandReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)

	reqNoLimit := CurrentDemandReq{Status: DCEVStatus{Ready: true}, ChargingComplete: true}
	var noLimitBuf bytes.Buffer
	noLimitW := bitio.NewWriter(bufio.NewWriter(&noLimitBuf))
	require.NoError(t, EncodeCurrentDemandReq(noLimitW, reqNoLimit))
	require.NoError(t, noLimitW.Flush())
	gotNoLimit, err := DecodeCurrentDemandReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(noLimitBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, reqNoLimit, gotNoLimit)

	res := CurrentDemandRes{
		ResponseCode:         ResponseCodeOK,
		Status:               DCEVSEStatus{Notification: EVSENotificationNone},
		PresentCurrent:       PhysicalValue{Value: 98, Multiplier: 0},
		PresentVoltage:       PhysicalValue{Value: 399, Multiplier: 0},
		CurrentLimitAchieved: true,
		VoltageLimitAchieved: true,
	}
	var resBuf bytes.Buffer
	resW := bitio.NewWriter(bufio.NewWriter(&resBuf))
	require.NoError(t, EncodeCurrentDemandRes(resW, res))
	require.NoError(t, resW.Flush())
	gotRes, err := DecodeCurrentDemandRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(resBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, res, gotRes)

	// The two achieved flags are independent wire bits; confirm they don't
	// get coupled together when they differ.
	resMixed := res
	resMixed.CurrentLimitAchieved = true
	resMixed.VoltageLimitAchieved = false
	var mixedBuf bytes.Buffer
	mixedW := bitio.NewWriter(bufio.NewWriter(&mixedBuf))
	require.NoError(t, EncodeCurrentDemandRes(mixedW, resMixed))
	require.NoError(t, mixedW.Flush())
	gotMixed, err := DecodeCurrentDemandRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(mixedBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, resMixed, gotMixed)
}

func TestWeldingDetectionRoundTrip(t *testing.T) {
	req := WeldingDetectionReq{Status: DCEVStatus{Ready: true}}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeWeldingDetectionReq(w, req))
	require.NoError(t, w.Flush())
	got, err := DecodeWeldingDetectionReq(bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, req, got)

	res := WeldingDetectionRes{
		ResponseCode:   ResponseCodeOK,
		Status:         DCEVSEStatus{Notification: EVSENotificationNone},
		PresentVoltage: PhysicalValue{Value: 3, Multiplier: 0},
	}
	var resBuf bytes.Buffer
	resW := bitio.NewWriter(bufio.NewWriter(&resBuf))
	require.NoError(t, EncodeWeldingDetectionRes(resW, res))
	require.NoError(t, resW.Flush())
	gotRes, err := DecodeWeldingDetectionRes(bitio.NewReader(bufio.NewReader(bytes.NewReader(resBuf.Bytes()))))
	require.NoError(t, err)
	require.Equal(t, res, gotRes)
}
