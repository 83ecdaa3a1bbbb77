package bitio

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadBitsRoundTrip(t *testing.T) {
	widths := []int{1, 2, 3, 5, 7, 8, 9, 13, 16, 21, 32}

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewWriter(bw)

	values := make([]int, len(widths))
	for i, n := range widths {
		v := (1 << n) - 1 // all-ones pattern for this width
		if n > 1 {
			v ^= 1 << (n - 2) // perturb so it isn't just all-ones
		}
		values[i] = v
		require.NoError(t, w.WriteBits(v, n))
	}
	require.NoError(t, w.Flush())

	br := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	r := NewReader(br)
	for i, n := range widths {
		got, err := r.ReadBits(n)
		require.NoError(t, err)
		require.Equal(t, values[i], got, "width %d", n)
	}
}

func TestReadBitThenReadBits(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewWriter(bw)
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.WriteBits(0x5A, 8))
	require.NoError(t, w.WriteBit(0))
	require.NoError(t, w.Flush())

	br := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	r := NewReader(br)
	b, err := r.ReadBit()
	require.NoError(t, err)
	require.Equal(t, 1, b)
	v, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, 0x5A, v)
	b, err = r.ReadBit()
	require.NoError(t, err)
	require.Equal(t, 0, b)
}

func TestAlignPadsWithZero(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewWriter(bw)
	require.NoError(t, w.WriteBits(0x3, 3))
	require.NoError(t, w.Align())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x3 << 5}, buf.Bytes())
}

func TestReadBytesUnaligned(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewWriter(bw)
	require.NoError(t, w.WriteBits(0x1, 4))
	require.NoError(t, w.WriteBytes([]byte{0xAB, 0xCD, 0xEF}))
	require.NoError(t, w.WriteBits(0x1, 4))
	require.NoError(t, w.Flush())

	br := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	r := NewReader(br)
	v, err := r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, 0x1, v)

	got := make([]byte, 3)
	require.NoError(t, r.ReadBytes(got))
	require.Equal(t, []byte{0xAB, 0xCD, 0xEF}, got)

	v, err = r.ReadBits(4)
	require.NoError(t, err)
	require.Equal(t, 0x1, v)
}

func TestReadBitsEndOfStream(t *testing.T) {
	br := bufio.NewReader(bytes.NewReader([]byte{0xFF}))
	r := NewReader(br)
	_, err := r.ReadBits(8)
	require.NoError(t, err)
	_, err = r.ReadBits(1)
	require.ErrorIs(t, err, ErrEndOfStream)
}
