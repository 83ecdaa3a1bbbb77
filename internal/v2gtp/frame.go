// Package v2gtp provides a thin length-prefixed framing helper for sending
// and receiving EXI-encoded V2G_Message documents over a stream connection,
// plus the structured logging around that boundary. Framing, timeouts, and
// TLS/TCP setup for the real V2GTP/SECC discovery exchange are out of scope;
// this only carries one fixed-size length prefix ahead of the payload
// decode_document/encode_document already know how to produce.
package v2gtp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/v2g-exi/codec/v2g"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. Defaults to a no-op logger so callers
// that never configure logging pay nothing for it.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the package logger; ReadFrame/WriteFrame calls made
// after it returns log through l. It is not synchronized with frame calls
// running concurrently.
func SetLogger(l *zap.Logger) {
	logger = l
}

// maxFrameLen bounds a single frame's payload to keep a corrupt or hostile
// length prefix from driving an unbounded allocation.
const maxFrameLen = 1 << 20

// ReadFrame reads one length-prefixed EXI document from r and decodes it.
func ReadFrame(r io.Reader) (v2g.V2GMessage, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return v2g.V2GMessage{}, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > maxFrameLen {
		Logger().Warn("v2gtp: frame exceeds size limit", zap.Uint32("length", n))
		return v2g.V2GMessage{}, fmt.Errorf("v2gtp: frame length %d exceeds limit %d", n, maxFrameLen)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return v2g.V2GMessage{}, err
	}

	msg, err := v2g.DecodeDocument(bytes.NewReader(payload))
	if err != nil {
		Logger().Error("v2gtp: decode_document failed", zap.Error(err))
		return v2g.V2GMessage{}, err
	}
	Logger().Debug("v2gtp: frame decoded", zap.Uint32("length", n))
	return msg, nil
}

// WriteFrame encodes msg and writes it to w as one length-prefixed frame.
func WriteFrame(w io.Writer, msg *v2g.V2GMessage) error {
	var buf bytes.Buffer
	if err := v2g.EncodeDocument(&buf, msg); err != nil {
		Logger().Error("v2gtp: encode_document failed", zap.Error(err))
		return err
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(buf.Len()))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	Logger().Debug("v2gtp: frame written", zap.Int("length", buf.Len()))
	return nil
}
