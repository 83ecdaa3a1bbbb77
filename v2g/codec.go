package v2g

import (
	"bufio"
	"io"

	"github.com/v2g-exi/codec/bitio"
	"github.com/v2g-exi/codec/v2gerr"
)

// ExiHeader is the fixed single-byte EXI document header this profile
// emits and expects: distinguishing bits 10, no options, final format
// version 0. A full EXI header can carry an options document and
// alignment padding; neither appears on this wire (spec §6.1).
const ExiHeader byte = 0x80

// rootEventCodeWidth is the width of the document-level event code that
// selects the root element. V2G_Message is the sole root, so decode only
// ever needs to recognize its own code(s); width matches the reference
// schema's global element count rather than growing with this package.
const rootEventCodeWidth = 7

// CanonicalRootEventCode is the root event code EncodeDocument always
// emits. 76 is accepted as a legacy namespace-prefixed alias on decode but
// never produced.
const CanonicalRootEventCode = 0

const legacyRootEventCode = 76

// DecodeDocument reads one complete V2G_Message from stream: the fixed
// EXI header, the root event code, then the message body via
// DecodeV2GMessage.
func DecodeDocument(stream io.Reader) (V2GMessage, error) {
	r := bitio.NewReader(bufio.NewReader(stream))

	header, err := r.ReadByte()
	if err != nil {
		return V2GMessage{}, err
	}
	if header != ExiHeader {
		return V2GMessage{}, v2gerr.New(v2gerr.HeaderMismatch, nil, "unexpected EXI document header byte")
	}

	rootCode, err := r.ReadBits(rootEventCodeWidth)
	if err != nil {
		return V2GMessage{}, err
	}
	if rootCode != CanonicalRootEventCode && rootCode != legacyRootEventCode {
		return V2GMessage{}, v2gerr.New(v2gerr.UnsupportedSubEvent, []string{"V2GMessage"}, "unrecognized root event code")
	}

	return DecodeV2GMessage(r)
}

// EncodeDocument writes msg to stream as a complete EXI document: the
// fixed header, the canonical root event code, then the message body via
// EncodeV2GMessage.
func EncodeDocument(stream io.Writer, msg *V2GMessage) error {
	bw := bufio.NewWriter(stream)
	w := bitio.NewWriter(bw)

	if err := w.WriteByte(ExiHeader); err != nil {
		return err
	}
	if err := w.WriteBits(CanonicalRootEventCode, rootEventCodeWidth); err != nil {
		return err
	}
	if err := EncodeV2GMessage(w, *msg); err != nil {
		return err
	}
	return w.Flush()
}
