package codec

import "testing"

func TestSanitizeNoTerminator(t *testing.T) {
	if got := Sanitize("hello there"); got != "hello there" {
		t.Errorf("expected unchanged string, got %q", got)
	}
}

func TestSanitizeTruncatesAtCRLF(t *testing.T) {
	got := Sanitize("hello\r\nJOIN #evil")
	want := "hello\r\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizeTruncatesAtLoneLF(t *testing.T) {
	got := Sanitize("hello\nJOIN #evil")
	want := "hello\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizeTruncatesAtLoneCR(t *testing.T) {
	got := Sanitize("hello\rJOIN #evil")
	want := "hello\r"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizePrefersCRLFOverLoneVariants(t *testing.T) {
	// An LF appears later in the string too, but the earlier \r\n at the
	// same starting position must win.
	got := Sanitize("a\r\nb\nc")
	want := "a\r\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizeEarliestOccurrenceWins(t *testing.T) {
	got := Sanitize("a\nb\r\nc")
	want := "a\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
