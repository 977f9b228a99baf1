/*
Package codec frames a byte stream into discrete IRC lines, applies
character-encoding transcoding, and sanitizes outbound text against
newline injection before it reaches the wire.
*/
package codec

import "strings"

// Sanitize truncates s at the first line-terminator sequence it contains
// ("\r\n", "\r", or "\n", preferring "\r\n" when a position could match
// more than one), leaving s unchanged if none is found. This guarantees
// the framed write that follows can append its own terminator without the
// caller having smuggled one (or a second message) into the line — the
// injection-free property of spec.md §3/§8.
func Sanitize(s string) string {
	crlf := strings.Index(s, "\r\n")
	cr := strings.IndexByte(s, '\r')
	lf := strings.IndexByte(s, '\n')

	best := -1
	length := 0

	consider := func(idx, l int) {
		if idx < 0 {
			return
		}
		if best < 0 || idx < best {
			best, length = idx, l
		}
	}

	// \r\n takes priority over a lone \r or \n at the same starting
	// position, so check it first; since cr reports the same starting
	// index as crlf in that case (and lf the index one past it), `consider`
	// with `<` leaves the earlier call (crlf) in place due to the strict
	// less-than.
	consider(crlf, 2)
	consider(cr, 1)
	consider(lf, 1)

	if best < 0 {
		return s
	}
	return s[:best+length]
}
