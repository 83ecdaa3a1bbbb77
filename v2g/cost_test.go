package v2g

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
)

// TestCostRoundTripMultiplierAbsent exercises spec §8 scenario S1: a
// CostType whose amountMultiplier is never set takes the S2 short path
// straight to END instead of visiting S3.
func TestCostRoundTripMultiplierAbsent(t *testing.T) {
	src := Cost{Kind: CostKindRelativePricePercentage, Amount: 0}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeCost(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeCost(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
	require.False(t, got.HasMultiplier)
}

func TestCostRoundTripMultiplierPresent(t *testing.T) {
	src := Cost{Kind: CostKindCarbonDioxideEmission, Amount: 42, AmountMultiplier: -2, HasMultiplier: true}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeCost(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeCost(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

// TestSalesTariffEntryCostBreakdown wires a Cost breakdown into a
// SalesTariffEntry instead of an abstract EPriceLevel, round-tripping both
// the optional EPriceLevel-absent and Cost-present cases together.
func TestSalesTariffEntryCostBreakdown(t *testing.T) {
	src := SalesTariffEntry{
		TimeInterval: RelativeTimeInterval{Start: 0},
		Cost:         Cost{Kind: CostKindRelativePricePercentage, Amount: 0},
		HasCost:      true,
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeSalesTariffEntry(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeSalesTariffEntry(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
	require.False(t, got.HasEPriceLevel)
}

func TestSalesTariffEntryEPriceLevelAndCostBothPresent(t *testing.T) {
	src := SalesTariffEntry{
		TimeInterval:   RelativeTimeInterval{Start: 60},
		EPriceLevel:    3,
		HasEPriceLevel: true,
		Cost:           Cost{Kind: CostKindRenewableGenerationPercentage, Amount: 7, AmountMultiplier: 1, HasMultiplier: true},
		HasCost:        true,
	}
	var buf bytes.Buffer
	w := bitio.NewWriter(bufio.NewWriter(&buf))
	require.NoError(t, EncodeSalesTariffEntry(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeSalesTariffEntry(r)
	require.NoError(t, err)
	require.Equal(t, src, got)
}
