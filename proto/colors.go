package proto

import "strings"

// Formatting control characters recognized by IsFormatted/StripFormatting.
const (
	fmtBold      = '\x02'
	fmtUnderline = '\x1F'
	fmtReverse   = '\x16'
	fmtNormal    = '\x0F'
	fmtColor     = '\x03'
)

// IsFormatted reports whether s contains any bold, underline, reverse,
// normal, or color control character.
func IsFormatted(s string) bool {
	return strings.ContainsAny(s, string([]rune{fmtBold, fmtUnderline, fmtReverse, fmtNormal, fmtColor}))
}

// colorState is the state of the color-stripping scanner. State names and
// transitions mirror the reference color grammar exactly, including its one
// quirk: a second color digit is only consumed when the first digit was
// '1' (color codes run 0-15 but the grammar greedily allows a second digit
// 0-5 after a leading 1, since codes are notionally 0-99). This is
// preserved literally per spec.md's Open Question: "changing it would
// alter test fixtures."
type colorState int

const (
	csText colorState = iota
	csColorCode
	csForeground1
	csForeground2
	csComma
	csBackground1
)

func isBase10Digit(c rune) bool { return c >= '0' && c <= '9' }
func isBase6Digit(c rune) bool  { return c >= '0' && c <= '5' }

// StripFormatting removes all bold/underline/reverse/normal/color control
// sequences from s, including color-code digits and the foreground/
// background separator comma. Returns s unchanged when nothing needed
// stripping (no new allocation in that case).
func StripFormatting(s string) string {
	if !IsFormatted(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	state := csText
	var fg1, bg1 rune

	for _, c := range s {
		keep, next := colorStep(state, fg1, bg1, c)
		switch state {
		case csColorCode:
			if isBase10Digit(c) {
				fg1 = c
			}
		case csComma:
			if isBase10Digit(c) {
				bg1 = c
			}
		}
		state = next
		if keep {
			b.WriteRune(c)
		}
	}

	return b.String()
}

// colorStep computes the next state and whether the current character
// should be retained in the output, given the current state and the
// pending foreground/background first-digit (fg1/bg1, meaningful only in
// the states that recorded them).
func colorStep(state colorState, fg1, bg1, c rune) (keep bool, next colorState) {
	switch state {
	case csText, csForeground1, csForeground2:
		if c == fmtColor {
			return false, csColorCode
		}
		if state == csText {
			return !isFormatChar(c), csText
		}
		if state == csForeground1 {
			if fg1 == '1' && isBase6Digit(c) {
				return false, csForeground2
			}
			if isBase6Digit(c) {
				return true, csText
			}
			if c == ',' {
				return false, csComma
			}
			return true, csText
		}
		// csForeground2
		if c == ',' {
			return false, csComma
		}
		return true, csText

	case csColorCode:
		if isBase10Digit(c) {
			return false, csForeground1
		}
		return true, csText

	case csComma:
		if isBase10Digit(c) {
			return false, csBackground1
		}
		return true, csText

	case csBackground1:
		if isBase6Digit(c) {
			return bg1 != '1', csText
		}
		return true, csText
	}

	return true, csText
}

func isFormatChar(c rune) bool {
	return c == fmtBold || c == fmtUnderline || c == fmtReverse || c == fmtNormal || c == fmtColor
}
