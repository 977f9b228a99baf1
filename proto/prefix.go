package proto

import "strings"

// Prefix is the optional sender-identification field at the start of a
// wire message: either a bare server name or a nick[!user][@host] triple.
//
// Parsing is grounded on the left-to-right state walk of the original
// aatxe/irc Prefix::new_from_str: a '.' seen while still in the Name field
// marks the prefix as a server name unless a later '!' or '@' proves it was
// actually a nick.
type Prefix struct {
	Name     string
	User     string
	Host     string
	IsServer bool
}

type prefixActive int

const (
	activeName prefixActive = iota
	activeUser
	activeHost
)

// ParsePrefix parses a prefix string (without the leading ':').
func ParsePrefix(s string) Prefix {
	var name, user, host strings.Builder
	active := activeName
	isServer := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c == '.' && active == activeName {
			isServer = true
		}

		switch {
		case c == '!' && active == activeName:
			isServer = false
			active = activeUser
		case c == '@' && active != activeHost:
			isServer = false
			active = activeHost
		default:
			switch active {
			case activeName:
				name.WriteByte(c)
			case activeUser:
				user.WriteByte(c)
			case activeHost:
				host.WriteByte(c)
			}
		}
	}

	return Prefix{
		Name:     name.String(),
		User:     user.String(),
		Host:     host.String(),
		IsServer: isServer,
	}
}

// String serializes the prefix back to wire form. Round-trips through
// ParsePrefix except for the degenerate case of an empty user with a
// non-empty host written with a '!' (e.g. "nick!@host"), which parses to an
// empty User and is written back as "nick@host".
func (p Prefix) String() string {
	if p.IsServer {
		return p.Name
	}

	var b strings.Builder
	b.WriteString(p.Name)
	if len(p.User) > 0 {
		b.WriteByte('!')
		b.WriteString(p.User)
	}
	if len(p.Host) > 0 {
		b.WriteByte('@')
		b.WriteString(p.Host)
	}
	return b.String()
}

// Nick returns the nickname portion, which is empty for a server prefix.
func (p Prefix) Nick() string {
	if p.IsServer {
		return ""
	}
	return p.Name
}
