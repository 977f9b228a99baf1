package proto

import "strings"

// CTCPDelim delimits a CTCP request/reply inside a PRIVMSG/NOTICE body.
const CTCPDelim = '\x01'

// IsCTCP reports whether body is a CTCP-framed payload: it is at least two
// bytes long and starts and ends with CTCPDelim. An empty payload
// ("\x01\x01") counts as CTCP-framed.
func IsCTCP(body string) bool {
	return len(body) >= 2 && body[0] == CTCPDelim && body[len(body)-1] == CTCPDelim
}

// UnpackCTCP splits a CTCP body into its space-tokenized fields, with the
// delimiters already stripped. An empty payload yields a nil slice.
func UnpackCTCP(body string) []string {
	if !IsCTCP(body) {
		return nil
	}
	inner := body[1 : len(body)-1]
	if len(inner) == 0 {
		return nil
	}
	return strings.Fields(inner)
}

// PackCTCP wraps tag and the space-joined data fields in CTCP delimiters.
func PackCTCP(tag string, data ...string) string {
	var b strings.Builder
	b.WriteByte(CTCPDelim)
	b.WriteString(tag)
	for _, d := range data {
		b.WriteByte(' ')
		b.WriteString(d)
	}
	b.WriteByte(CTCPDelim)
	return b.String()
}
