package v2gtp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/v2g-exi/codec/v2g"
)

func TestWriteReadFrameRoundTrip(t *testing.T) {
	msg := v2g.V2GMessage{
		Header: v2g.Header{SessionID: []byte{1, 2, 3, 4}},
		Body:   v2g.Body{SessionStopReq: &v2g.SessionStopReq{State: v2g.ChargingSessionTerminate}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, &msg))

	got, err := ReadFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestReadFrameRejectsOversizeLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x7F, 0xFF, 0xFF, 0xFF}) // length far beyond maxFrameLen
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}

func TestReadFrameOnTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 10}) // declares 10 bytes, provides none
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}
