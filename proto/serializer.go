package proto

import "strings"

// Serialize renders a Message to its wire form, terminated by exactly one
// "\r\n" as required by spec.md §3's invariant.
func Serialize(m Message) string {
	var b strings.Builder

	writeTags(&b, m.Tags)

	if m.Prefix != nil {
		b.WriteByte(':')
		b.WriteString(m.Prefix.String())
		b.WriteByte(' ')
	}

	b.WriteString(m.Command.wireName())

	for _, a := range m.Command.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}

	if m.Command.HasTrailing {
		b.WriteString(" :")
		b.WriteString(m.Command.Trailing)
	}

	b.WriteString("\r\n")
	return b.String()
}

// String is a convenience for Serialize(m).
func (m Message) String() string {
	return Serialize(m)
}
