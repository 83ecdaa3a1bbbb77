package grammar

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// numbers is a minimal type wrapping a bounded array of 3-bit unsigned
// integers, used to exercise ArrayChain in isolation.
type numbers struct {
	values []uint32
}

const maxNumbers = 3

func numbersTable(n *numbers) Table {
	chain := ArrayChain(0, maxNumbers, maxNumbers+1, true,
		func(i int) bool { return i < len(n.values) },
		func(r BitSource, i int) error {
			v, err := wire.DecodeNBitUint(r, 3)
			n.values = append(n.values, v)
			return err
		},
		func(w BitSink, i int) error {
			return wire.EncodeNBitUint(w, n.values[i], 3)
		},
	)
	table := make(Table, len(chain)+1)
	copy(table, chain)
	table[maxNumbers+1] = State{Transitions: []Transition{{Kind: EventEnd, Next: EEOnly}}}
	return table
}

func TestArrayChainRoundTrip(t *testing.T) {
	src := &numbers{values: []uint32{1, 2, 3}}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, Encode(w, numbersTable(src), 0))
	require.NoError(t, w.Flush())

	dst := &numbers{}
	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, Decode(r, numbersTable(dst), 0))
	require.Equal(t, src.values, dst.values)
}

func TestArrayChainEmpty(t *testing.T) {
	src := &numbers{}
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	require.NoError(t, Encode(w, numbersTable(src), 0))
	require.NoError(t, w.Flush())

	dst := &numbers{}
	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, Decode(r, numbersTable(dst), 0))
	require.Empty(t, dst.values)
}

func TestArrayChainRejectsPastMaximum(t *testing.T) {
	// Hand-encode 4 occurrences directly against the wire format: at the
	// state for the 4th item (index == maxNumbers), only END (event code 0)
	// is legal, so event code 1 there is out of range.
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := bitio.NewWriter(bw)
	for i := 0; i < maxNumbers; i++ {
		require.NoError(t, w.WriteBits(0, 1)) // "occurrence" event code
		require.NoError(t, w.WriteBits(i, 3))
		require.NoError(t, w.WriteBits(0, 1)) // deviation terminator
	}
	require.NoError(t, w.WriteBits(1, 1)) // illegal 4th "occurrence" event code
	require.NoError(t, w.Flush())

	dst := &numbers{}
	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	err := Decode(r, numbersTable(dst), 0)
	require.Error(t, err)
	require.ErrorIs(t, err, v2gerr.New(v2gerr.UnknownEventCode, nil, ""))
}
