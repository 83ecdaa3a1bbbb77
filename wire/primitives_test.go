package wire

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

func roundTripBuffers() (*bitio.Writer, func() *bitio.Reader) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	return w, func() *bitio.Reader {
		return bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	}
}

func TestVarUintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 129, 16383, 16384, 1 << 20, 1<<32 - 1}
	w, reader := roundTripBuffers()
	for _, c := range cases {
		require.NoError(t, EncodeVarUint(w, c))
	}
	require.NoError(t, w.Flush())

	r := reader()
	for _, c := range cases {
		got, err := DecodeVarUint(r, 64)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestVarUintOverflowRejected(t *testing.T) {
	w, reader := roundTripBuffers()
	require.NoError(t, EncodeVarUint(w, 1<<20))
	require.NoError(t, w.Flush())

	r := reader()
	_, err := DecodeVarUint(r, 16)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}

func TestVarIntRoundTripIncludingMostNegative(t *testing.T) {
	cases := []int64{0, 1, -1, 127, -128, 1 << 30, -(1 << 30)}
	w, reader := roundTripBuffers()
	for _, c := range cases {
		require.NoError(t, EncodeVarInt(w, c))
	}
	require.NoError(t, w.Flush())

	r := reader()
	for _, c := range cases {
		got, err := DecodeVarInt(r, 64)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}
}

func TestRangedIntBiasAndBits(t *testing.T) {
	// unitMultiplierType: 3 bits, min -3, max 3.
	require.Equal(t, 3, RangedBits(-3, 3))
	// percentValueType: 7 bits, e.g. 0..100.
	require.Equal(t, 7, RangedBits(0, 100))
	// SAScheduleTupleID: 8 bits, min 1, max 256.
	require.Equal(t, 8, RangedBits(1, 256))

	w, reader := roundTripBuffers()
	require.NoError(t, EncodeRangedInt(w, 1, 8, 1, 256))   // wire value 0x00
	require.NoError(t, EncodeRangedInt(w, 255, 8, 1, 256)) // wire value 0xFE
	require.NoError(t, w.Flush())

	r := reader()
	v, err := DecodeRangedInt(r, 8, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, v)
	v, err = DecodeRangedInt(r, 8, 1)
	require.NoError(t, err)
	require.EqualValues(t, 255, v)
}

func TestRangedIntOutOfBoundsRejected(t *testing.T) {
	w, _ := roundTripBuffers()
	err := EncodeRangedInt(w, 300, 8, 1, 256)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}

func TestEnumRoundTripAndDomainCheck(t *testing.T) {
	const cardinality = 6 // SupportedEnergyTransferMode max members
	require.Equal(t, 3, EnumBits(cardinality))

	w, reader := roundTripBuffers()
	for i := 0; i < cardinality; i++ {
		require.NoError(t, EncodeEnum(w, i, cardinality))
	}
	require.NoError(t, w.Flush())

	r := reader()
	for i := 0; i < cardinality; i++ {
		v, err := DecodeEnum(r, cardinality)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestEnumOutOfDomainRejected(t *testing.T) {
	w, _ := roundTripBuffers()
	err := EncodeEnum(w, 6, 6)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.UnknownEventCode, nil, ""))
}

func TestStringRoundTripAndCapacity(t *testing.T) {
	w, reader := roundTripBuffers()
	require.NoError(t, EncodeString(w, "hello, EVCC", 32))
	require.NoError(t, w.Flush())

	r := reader()
	got, err := DecodeString(r, 32)
	require.NoError(t, err)
	require.Equal(t, "hello, EVCC", got)
}

func TestStringCapacityExceededOnEncode(t *testing.T) {
	w, _ := roundTripBuffers()
	err := EncodeString(w, "too long for the field", 4)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}

func TestStringCapacityExceededOnDecode(t *testing.T) {
	w, reader := roundTripBuffers()
	require.NoError(t, EncodeString(w, "123456", 32))
	require.NoError(t, w.Flush())

	r := reader()
	_, err := DecodeString(r, 4)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}

func TestBinaryRoundTripAndCapacity(t *testing.T) {
	evccid := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	w, reader := roundTripBuffers()
	require.NoError(t, EncodeBinary(w, evccid, 6))
	require.NoError(t, w.Flush())

	r := reader()
	got, err := DecodeBinary(r, 6)
	require.NoError(t, err)
	require.Equal(t, evccid, got)
}

func TestBinaryCapacityExceeded(t *testing.T) {
	w, _ := roundTripBuffers()
	err := EncodeBinary(w, make([]byte, 10), 6)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.CapacityExceeded, nil, ""))
}
