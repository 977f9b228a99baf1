package codec

import (
	"github.com/aarondl/irccore/proto"
	"golang.org/x/text/encoding"
)

// Parsed is a Codec[proto.Message]: it decodes complete wire messages into
// the proto grammar tree and serializes proto.Message values back to
// bytes, sanitizing outbound text first. It is the capability-rich
// representation most of session and client are built against.
type Parsed struct {
	// Encoding transcodes wire bytes to/from the proto grammar's UTF-8
	// text, per the configured WHATWG label (see NewEncoding). A nil
	// Encoding, as held by the Parsed{} zero value, means the wire is
	// already UTF-8 and no transcoding happens.
	Encoding encoding.Encoding
}

var _ Codec[proto.Message] = Parsed{}
var _ proto.WireCommand[proto.Message] = Parsed{}

// Decode implements Codec.
func (c Parsed) Decode(buf []byte) (proto.Message, int, error) {
	line, consumed := nextLine(buf)
	if consumed == 0 {
		return proto.Message{}, 0, nil
	}
	text, err := decodeText(c.Encoding, line)
	if err != nil {
		return proto.Message{}, consumed, err
	}
	msg, err := proto.Parse(text)
	if err != nil {
		return proto.Message{}, consumed, err
	}
	return msg, consumed, nil
}

// Encode implements Codec. It serializes the full wire line (already
// terminated by proto.Serialize), sanitizes that line as a whole, and
// transcodes the sanitized text to the configured encoding: an injected
// "\r\n"/"\r"/"\n" earlier in the line is an earlier match than the
// legitimate terminator Serialize appended, so Sanitize truncates right
// there and the forged continuation never reaches the wire. A clean
// line's only match is its own trailing terminator, so it passes through
// unchanged.
func (c Parsed) Encode(item proto.Message) ([]byte, error) {
	return encodeText(c.Encoding, Sanitize(proto.Serialize(item)))
}

// --- proto.WireCommand[proto.Message] ----------------------------------

func (Parsed) NewRaw(cmd string, args ...string) proto.Message {
	return proto.Message{Command: proto.NewRaw(cmd, args...)}
}

func (Parsed) NewPing(payload string) proto.Message {
	return proto.Message{Command: proto.NewPing(payload)}
}

func (Parsed) NewPong(payload string) proto.Message {
	return proto.Message{Command: proto.NewPong(payload)}
}

func (Parsed) NewCapEnd() proto.Message {
	return proto.Message{Command: proto.NewCapEnd()}
}

func (Parsed) NewNick(nick string) proto.Message {
	return proto.Message{Command: proto.NewNick(nick)}
}

func (Parsed) NewUser(username, realname string) proto.Message {
	return proto.Message{Command: proto.NewUser(username, realname)}
}

func (Parsed) NewJoin(channel, key string) proto.Message {
	return proto.Message{Command: proto.NewJoin(channel, key)}
}

func (Parsed) NewAuthenticatedJoin(channel, key string) proto.Message {
	return proto.Message{Command: proto.NewAuthenticatedJoin(channel, key)}
}

func (Parsed) NewPart(channel, reason string) proto.Message {
	return proto.Message{Command: proto.NewPart(channel, reason)}
}

func (Parsed) NewQuit(msg string) proto.Message {
	return proto.Message{Command: proto.NewQuit(msg)}
}

func (Parsed) NewPass(password string) proto.Message {
	return proto.Message{Command: proto.NewPass(password)}
}

func (Parsed) NewNickserv(args string) proto.Message {
	return proto.Message{Command: proto.NewNickserv(args)}
}

func (Parsed) IsEndOfMotd(item proto.Message) bool { return proto.IsEndOfMotd(item) }
func (Parsed) IsErrNoMotd(item proto.Message) bool { return proto.IsErrNoMotd(item) }
func (Parsed) IsPong(item proto.Message) bool      { return proto.IsPong(item) }
func (Parsed) IsQuit(item proto.Message) bool      { return proto.IsQuit(item) }
func (Parsed) AsPing(item proto.Message) (string, bool) {
	return proto.AsPing(item)
}
