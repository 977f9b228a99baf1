package codec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aarondl/irccore/proto"
	"golang.org/x/text/encoding"
)

// rawLine matches the shape of an IRC line without building a parse tree:
// an optional prefix, the command token, the space-separated positional
// arguments, and an optional trailing parameter. Grounded on the teacher's
// original regex-based parser (parse/parse.go's ircRegex), kept alive here
// as the uninterpreted-representation codec rather than the default, since
// the grammar package now hand-rolls its parser for tag/overflow support
// that a single regex can't express.
var rawLine = regexp.MustCompile(
	`^(?:@\S+ )?(?::(\S+) )?([A-Za-z0-9]+)((?: (?:[^:\s][^\s]*))*)(?: :(.*))?\s*$`)

// Raw is a Codec[string]: it decodes complete wire lines as-is (no tree
// construction) and exposes the proto.WireCommand predicates via regexp
// matching against the raw command token, for callers that only need to
// react to a handful of commands without paying for a full parse.
type Raw struct {
	// Encoding transcodes wire bytes to/from the string this Codec
	// exposes, same contract as Parsed.Encoding. Nil means UTF-8.
	Encoding encoding.Encoding
}

var _ Codec[string] = Raw{}
var _ proto.WireCommand[string] = Raw{}

// Decode implements Codec.
func (c Raw) Decode(buf []byte) (string, int, error) {
	line, consumed := nextLine(buf)
	if consumed == 0 {
		return "", 0, nil
	}
	text, err := decodeText(c.Encoding, line)
	if err != nil {
		return "", consumed, err
	}
	if !rawLine.MatchString(text) {
		return "", consumed, fmt.Errorf("codec: invalid irc line: %q", text)
	}
	return text, consumed, nil
}

// Encode implements Codec. See Parsed.Encode for why sanitization runs
// after the terminator is appended rather than before.
func (c Raw) Encode(item string) ([]byte, error) {
	return encodeText(c.Encoding, Sanitize(item+"\r\n"))
}

func rawCommand(line string) string {
	m := rawLine.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[2])
}

// --- proto.WireCommand[string] ------------------------------------------

func (Raw) NewRaw(cmd string, args ...string) string {
	return strings.TrimSpace(strings.ToUpper(cmd) + " " + strings.Join(args, " "))
}

func (Raw) NewPing(payload string) string { return "PING :" + payload }
func (Raw) NewPong(payload string) string { return "PONG :" + payload }
func (Raw) NewCapEnd() string             { return "CAP END" }
func (Raw) NewNick(nick string) string    { return "NICK :" + nick }

func (Raw) NewUser(username, realname string) string {
	return fmt.Sprintf("USER %s 0 * :%s", username, realname)
}

func (Raw) NewJoin(channel, key string) string {
	if len(key) == 0 {
		return "JOIN " + channel
	}
	return "JOIN " + channel + " " + key
}

func (r Raw) NewAuthenticatedJoin(channel, key string) string {
	return r.NewJoin(channel, key)
}

func (Raw) NewPart(channel, reason string) string {
	if len(reason) == 0 {
		return "PART " + channel
	}
	return "PART " + channel + " :" + reason
}

func (Raw) NewQuit(msg string) string {
	if len(msg) == 0 {
		msg = "Powered by github.com/aarondl/irccore"
	}
	return "QUIT :" + msg
}

func (Raw) NewPass(password string) string { return "PASS :" + password }
func (Raw) NewNickserv(args string) string { return "NICKSERV " + args }

var pingRegex = regexp.MustCompile(`^PING(?: :?(.*))?$`)

func (Raw) IsEndOfMotd(item string) bool { return rawCommand(item) == "376" }
func (Raw) IsErrNoMotd(item string) bool { return rawCommand(item) == "422" }
func (Raw) IsPong(item string) bool      { return rawCommand(item) == "PONG" }
func (Raw) IsQuit(item string) bool      { return rawCommand(item) == "QUIT" }

func (Raw) AsPing(item string) (string, bool) {
	m := pingRegex.FindStringSubmatch(strings.TrimSpace(item))
	if m == nil {
		return "", false
	}
	return m[1], true
}
