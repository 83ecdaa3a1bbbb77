package v2g

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

func encodeTuple(t *testing.T, v SAScheduleTuple) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeSAScheduleTuple(w, v))
	require.NoError(t, w.Flush())
	return buf.Bytes()
}

func decodeTuple(t *testing.T, b []byte) SAScheduleTuple {
	t.Helper()
	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(b)))
	v, err := DecodeSAScheduleTuple(r)
	require.NoError(t, err)
	return v
}

// TestSAScheduleTupleIDBias exercises the exact worked example in spec §8
// scenario S4: SAScheduleTupleID is biased by 1 onto an 8-bit field, so
// ID=1 is wire byte 0x00 and ID=255 is wire byte 0xFE.
func TestSAScheduleTupleIDBias(t *testing.T) {
	low := SAScheduleTuple{ID: 1, Schedule: PMaxSchedule{}}
	bytesLow := encodeTuple(t, low)
	require.NotEmpty(t, bytesLow)

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, w.WriteBits(0, 1)) // ID event code
	require.NoError(t, w.WriteBits(0x00, 8))
	require.NoError(t, w.WriteBits(0, 1)) // deviation terminator
	require.NoError(t, w.WriteBits(0, 1)) // PMaxSchedule event code
	require.NoError(t, w.WriteBits(2, 2)) // empty PMaxSchedule: END (code 1), then END of its closing state (code 0)
	require.NoError(t, w.WriteBits(1, 1)) // SAScheduleTuple: END (no SalesTariff)
	require.NoError(t, w.Flush())
	require.Equal(t, buf.Bytes(), bytesLow)

	decodedLow := decodeTuple(t, bytesLow)
	require.Equal(t, uint8(1), decodedLow.ID)

	high := SAScheduleTuple{ID: 255, Schedule: PMaxSchedule{}}
	decodedHigh := decodeTuple(t, encodeTuple(t, high))
	require.Equal(t, uint8(255), decodedHigh.ID)
}

func TestSAScheduleTupleRoundTripWithSalesTariff(t *testing.T) {
	src := SAScheduleTuple{
		ID: 42,
		Schedule: PMaxSchedule{Entries: []PMaxScheduleEntry{
			{TimeInterval: RelativeTimeInterval{Start: 0, Duration: 3600, HasDuration: true},
				PMax: PhysicalValue{Multiplier: 1, Unit: UnitSymbolWatt, Value: 1100}},
		}},
		SalesTariff: SalesTariff{
			Description: "peak",
			Entries: []SalesTariffEntry{
				{TimeInterval: RelativeTimeInterval{Start: 0}, EPriceLevel: 3, HasEPriceLevel: true},
			},
		},
		HasSalesTariff: true,
	}
	got := decodeTuple(t, encodeTuple(t, src))
	require.Equal(t, src, got)
}

func TestSAScheduleListRejectsPastMaximum(t *testing.T) {
	src := SAScheduleList{}
	for i := 0; i < MaxSAScheduleTuples; i++ {
		src.Tuples = append(src.Tuples, SAScheduleTuple{ID: uint8(i + 1)})
	}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, EncodeSAScheduleList(w, src))
	require.NoError(t, w.Flush())

	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	got, err := DecodeSAScheduleList(r)
	require.NoError(t, err)
	require.Len(t, got.Tuples, MaxSAScheduleTuples)

	// A list one tuple over the bound must be rejected rather than
	// silently truncated.
	overflowing := SAScheduleList{}
	for i := 0; i <= MaxSAScheduleTuples; i++ {
		overflowing.Tuples = append(overflowing.Tuples, SAScheduleTuple{ID: uint8(i + 1)})
	}
	var buf2 bytes.Buffer
	bw2 := bufio.NewWriter(&buf2)
	w2 := bitio.NewWriter(bw2)
	err = EncodeSAScheduleList(w2, overflowing)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}
