package codec

import (
	"bytes"
	"fmt"

	"github.com/aarondl/irccore/ircerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Codec is a pluggable wire framer: it turns a byte buffer into discrete
// items of type T (proto.Message for Parsed, string for Raw) and turns
// items back into bytes ready to write.
//
// Decode is call-by-call rather than a continuously-running loop: the
// caller owns the buffer and re-invokes Decode as more bytes arrive,
// advancing past the byte count Decode reports as consumed. Decode keeps
// no cursor of its own: each call scans buf from its first byte, so an
// incomplete line is scanned again on every call until its terminator
// arrives.
type Codec[T any] interface {
	// Decode scans buf from offset 0, returning the next decoded
	// item and the number of bytes consumed (including the line
	// terminator). consumed is 0 when no complete item is yet available
	// and the caller should read more bytes before calling again.
	Decode(buf []byte) (item T, consumed int, err error)

	// Encode renders an item to its wire bytes, including terminator,
	// with outbound text sanitized against newline injection.
	Encode(item T) ([]byte, error)
}

// NewEncoding resolves a WHATWG encoding label (e.g. "utf-8", "windows-1252",
// "iso-8859-1") to an encoding.Encoding, failing at construction time per
// spec.md §4.2 rather than silently falling back to UTF-8 on first use. A
// nil encoding.Encoding (as held by a zero-value Parsed or Raw) means
// UTF-8 passed through unchanged, so callers that never call NewEncoding
// keep the library's original UTF-8-only behavior.
func NewEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, ircerr.Wrap(ircerr.KindUnknownCodec, err, fmt.Sprintf("codec: unknown encoding label %q", label))
	}
	return enc, nil
}

// decodeText converts wire bytes to text using enc's decoder, with the
// "replace invalid with U+FFFD" policy spec.md §4.2 calls for (the
// decoders x/text/encoding vends already replace rather than error on
// malformed input). A nil enc treats buf as already UTF-8.
func decodeText(enc encoding.Encoding, buf []byte) (string, error) {
	if enc == nil {
		return string(buf), nil
	}
	decoded, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return "", ircerr.Wrap(ircerr.KindCodecFailed, err, "codec: decode failed")
	}
	return string(decoded), nil
}

// encodeText converts s to wire bytes using enc's encoder. A nil enc
// returns s's UTF-8 bytes unchanged.
func encodeText(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		return []byte(s), nil
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, ircerr.Wrap(ircerr.KindCodecFailed, err, "codec: encode failed")
	}
	return encoded, nil
}

// nextLine locates the next newline-terminated line in buf starting at
// offset 0, returning the line content (without terminator) and the total
// number of bytes consumed (including the terminator). consumed is 0 if
// buf contains no terminator yet.
func nextLine(buf []byte) (line []byte, consumed int) {
	idx := bytes.IndexByte(buf, '\n')
	if idx < 0 {
		return nil, 0
	}
	end := idx
	if end > 0 && buf[end-1] == '\r' {
		end--
	}
	return buf[:end], idx + 1
}
