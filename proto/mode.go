package proto

import "strings"

// Polarity distinguishes a mode being set (+) from being unset (-).
type Polarity bool

const (
	Plus  Polarity = true
	Minus Polarity = false
)

// UserModeKind enumerates the fixed set of RFC-and-common user modes.
type UserModeKind rune

// The recognized user mode kinds.
const (
	UserModeAway           UserModeKind = 'a'
	UserModeInvisible      UserModeKind = 'i'
	UserModeWallops        UserModeKind = 'w'
	UserModeRestricted     UserModeKind = 'r'
	UserModeOper           UserModeKind = 'o'
	UserModeLocalOper      UserModeKind = 'O'
	UserModeServerNotices  UserModeKind = 's'
	UserModeMaskedHost     UserModeKind = 'x'
)

// ChannelModeKind enumerates the fixed set of RFC-and-common channel modes.
type ChannelModeKind rune

// The recognized channel mode kinds.
const (
	ChannelModeBan                ChannelModeKind = 'b'
	ChannelModeException          ChannelModeKind = 'e'
	ChannelModeLimit               ChannelModeKind = 'l'
	ChannelModeInviteOnly          ChannelModeKind = 'i'
	ChannelModeInviteException     ChannelModeKind = 'I'
	ChannelModeKey                 ChannelModeKind = 'k'
	ChannelModeModerated           ChannelModeKind = 'm'
	ChannelModeRegisteredOnly      ChannelModeKind = 'r'
	ChannelModeSecret              ChannelModeKind = 's'
	ChannelModeProtectedTopic      ChannelModeKind = 't'
	ChannelModeNoExternalMessages  ChannelModeKind = 'n'
	ChannelModeFounder             ChannelModeKind = 'q'
	ChannelModeAdmin               ChannelModeKind = 'a'
	ChannelModeOper                ChannelModeKind = 'o'
	ChannelModeHalfop               ChannelModeKind = 'h'
	ChannelModeVoice                ChannelModeKind = 'v'
)

// channelModesWithArgs is the set of channel modes that always consume an
// argument, per spec.md §3: {b,e,l,I,k,q,a,o,h,v}.
var channelModesWithArgs = map[rune]bool{
	'b': true, 'e': true, 'l': true, 'I': true, 'k': true,
	'q': true, 'a': true, 'o': true, 'h': true, 'v': true,
}

// UserMode is a single +/- user mode application. Kind is UserModeKind(0)
// with IsUnknown true and Unknown holding the character for an
// unrecognized character.
type UserMode struct {
	Polarity Polarity
	Kind     UserModeKind
	Unknown  rune
	IsUnknown bool
}

// ChannelMode is a single +/- channel mode application, with an optional
// argument for modes that take one.
type ChannelMode struct {
	Polarity  Polarity
	Kind      ChannelModeKind
	Unknown   rune
	IsUnknown bool
	Arg       string
	HasArg    bool
}

// TakesArg reports whether this channel mode kind consumes an argument.
func (k ChannelModeKind) TakesArg() bool {
	return channelModesWithArgs[rune(k)]
}

// ParseUserModes parses a user mode string such as "+i-w" with no
// arguments (user modes never take one in this grammar).
func ParseUserModes(s string) ([]UserMode, error) {
	if len(s) == 0 {
		return nil, nil
	}

	var modes []UserMode
	polarity := Plus
	sawPolarity := false

	for _, c := range s {
		switch c {
		case '+':
			polarity = Plus
			sawPolarity = true
		case '-':
			polarity = Minus
			sawPolarity = true
		default:
			if !sawPolarity {
				return nil, &ModeError{Kind: ErrMissingModeModifier}
			}
			um := UserMode{Polarity: polarity}
			switch UserModeKind(c) {
			case UserModeAway, UserModeInvisible, UserModeWallops, UserModeRestricted,
				UserModeOper, UserModeLocalOper, UserModeServerNotices, UserModeMaskedHost:
				um.Kind = UserModeKind(c)
			default:
				um.IsUnknown = true
				um.Unknown = c
			}
			modes = append(modes, um)
		}
	}
	return modes, nil
}

// ParseChannelModes parses a channel mode string plus the whitespace
// separated arguments that follow it (args is everything after the mode
// string, already tokenized). Each mode with TakesArg() consumes the next
// unconsumed element of args.
func ParseChannelModes(modeStr string, args []string) ([]ChannelMode, error) {
	if len(modeStr) == 0 {
		return nil, nil
	}

	var modes []ChannelMode
	polarity := Plus
	sawPolarity := false
	argIdx := 0

	for _, c := range modeStr {
		switch c {
		case '+':
			polarity = Plus
			sawPolarity = true
		case '-':
			polarity = Minus
			sawPolarity = true
		default:
			if !sawPolarity {
				return nil, &ModeError{Kind: ErrMissingModeModifier}
			}
			cm := ChannelMode{Polarity: polarity}
			kind := ChannelModeKind(c)
			switch kind {
			case ChannelModeBan, ChannelModeException, ChannelModeLimit,
				ChannelModeInviteOnly, ChannelModeInviteException, ChannelModeKey,
				ChannelModeModerated, ChannelModeRegisteredOnly, ChannelModeSecret,
				ChannelModeProtectedTopic, ChannelModeNoExternalMessages,
				ChannelModeFounder, ChannelModeAdmin, ChannelModeOper,
				ChannelModeHalfop, ChannelModeVoice:
				cm.Kind = kind
				if kind.TakesArg() && argIdx < len(args) {
					cm.Arg = args[argIdx]
					cm.HasArg = true
					argIdx++
				}
			default:
				cm.IsUnknown = true
				cm.Unknown = c
			}
			modes = append(modes, cm)
		}
	}
	return modes, nil
}

// FormatChannelModes serializes a batch of channel modes back to "+xyz arg1 arg2" form.
func FormatChannelModes(modes []ChannelMode) (modeStr string, args []string) {
	var b strings.Builder
	var cur Polarity
	first := true

	for _, m := range modes {
		if first || m.Polarity != cur {
			if m.Polarity == Plus {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			cur = m.Polarity
			first = false
		}
		if m.IsUnknown {
			b.WriteRune(m.Unknown)
		} else {
			b.WriteRune(rune(m.Kind))
		}
		if m.HasArg {
			args = append(args, m.Arg)
		}
	}
	return b.String(), args
}

// FormatUserModes serializes a batch of user modes back to "+xy-z" form.
func FormatUserModes(modes []UserMode) string {
	var b strings.Builder
	var cur Polarity
	first := true

	for _, m := range modes {
		if first || m.Polarity != cur {
			if m.Polarity == Plus {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			cur = m.Polarity
			first = false
		}
		if m.IsUnknown {
			b.WriteRune(m.Unknown)
		} else {
			b.WriteRune(rune(m.Kind))
		}
	}
	return b.String()
}
