package codec

import "testing"

func TestNewEncodingResolvesLabel(t *testing.T) {
	for _, label := range []string{"utf-8", "UTF-8", "windows-1252", "iso-8859-1"} {
		if _, err := NewEncoding(label); err != nil {
			t.Errorf("NewEncoding(%q): %v", label, err)
		}
	}
}

func TestNewEncodingRejectsUnknownLabel(t *testing.T) {
	if _, err := NewEncoding("not-a-real-encoding"); err == nil {
		t.Error("expected an error for an unknown encoding label")
	}
}

func TestDecodeTextTranscodesFromEncoding(t *testing.T) {
	enc, err := NewEncoding("windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	// 0xE9 is 'é' in windows-1252, not valid standalone UTF-8.
	got, err := decodeText(enc, []byte{'P', 'I', 'N', 'G', ' ', ':', 0xE9})
	if err != nil {
		t.Fatal(err)
	}
	if got != "PING :é" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeTextTranscodesToEncoding(t *testing.T) {
	enc, err := NewEncoding("windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	got, err := encodeText(enc, "café")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'c', 'a', 'f', 0xE9}
	if string(got) != string(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeEncodeTextNilIsUTF8Passthrough(t *testing.T) {
	s, err := decodeText(nil, []byte("héllo"))
	if err != nil {
		t.Fatal(err)
	}
	if s != "héllo" {
		t.Errorf("got %q", s)
	}
	b, err := encodeText(nil, "héllo")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "héllo" {
		t.Errorf("got %q", b)
	}
}

func TestNextLineNeedsTerminator(t *testing.T) {
	line, consumed := nextLine([]byte("no terminator yet"))
	if consumed != 0 || line != nil {
		t.Errorf("expected (nil, 0), got (%q, %d)", line, consumed)
	}
}

func TestNextLineStripsOptionalCR(t *testing.T) {
	line, consumed := nextLine([]byte("PING :1\r\nPING :2\r\n"))
	if string(line) != "PING :1" {
		t.Errorf("expected %q, got %q", "PING :1", line)
	}
	if consumed != len("PING :1\r\n") {
		t.Errorf("expected consumed=%d, got %d", len("PING :1\r\n"), consumed)
	}
}

func TestNextLineBareLF(t *testing.T) {
	line, consumed := nextLine([]byte("PING :1\n"))
	if string(line) != "PING :1" {
		t.Errorf("expected %q, got %q", "PING :1", line)
	}
	if consumed != len("PING :1\n") {
		t.Errorf("expected consumed=%d, got %d", len("PING :1\n"), consumed)
	}
}
