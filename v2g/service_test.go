package v2g

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

func TestChargeServiceAllModesRoundTrip(t *testing.T) {
	src := ChargeService{
		Service: Service{ID: 1, Category: ServiceCategoryEVCharging, IsFreeOfCharge: true},
		SupportedModes: []EnergyTransferMode{
			EnergyTransferModeACSinglePhase,
			EnergyTransferModeACThreePhase,
			EnergyTransferModeDCBasic,
			EnergyTransferModeDCCombo,
			EnergyTransferModeDCExtended,
			EnergyTransferModeDCUnique,
		},
	}
	require.Len(t, src.SupportedModes, MaxSupportedEnergyTransferModes)

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeChargeService(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeChargeService(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestChargeServiceSeventhModeRejected(t *testing.T) {
	src := ChargeService{
		Service: Service{ID: 1, Category: ServiceCategoryEVCharging},
		SupportedModes: []EnergyTransferMode{
			EnergyTransferModeACSinglePhase,
			EnergyTransferModeACThreePhase,
			EnergyTransferModeDCBasic,
			EnergyTransferModeDCCombo,
			EnergyTransferModeDCExtended,
			EnergyTransferModeDCUnique,
			EnergyTransferModeACSinglePhase, // a 7th entry, one past the bound
		},
	}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	err := EncodeChargeService(w, src)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}

func TestServiceRoundTripOptionalFieldsAbsent(t *testing.T) {
	src := Service{ID: 5, Category: ServiceCategoryInternet}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeService(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeService(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}
