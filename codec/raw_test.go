package codec

import "testing"

func TestRawDecodeValidLine(t *testing.T) {
	line, consumed, err := Raw{}.Decode([]byte(":nick!user@host PRIVMSG #chan :hello\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(":nick!user@host PRIVMSG #chan :hello\r\n") {
		t.Errorf("unexpected consumed: %d", consumed)
	}
	if line != ":nick!user@host PRIVMSG #chan :hello" {
		t.Errorf("unexpected line: %q", line)
	}
}

func TestRawDecodeNeedsMoreData(t *testing.T) {
	_, consumed, err := Raw{}.Decode([]byte("PING :1"))
	if consumed != 0 || err != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", consumed, err)
	}
}

func TestRawEncodeSanitizes(t *testing.T) {
	b, err := Raw{}.Encode("PRIVMSG #chan :hello\r\nJOIN #evil")
	if err != nil {
		t.Fatal(err)
	}
	want := "PRIVMSG #chan :hello\r\n"
	if string(b) != want {
		t.Errorf("got %q, want %q", b, want)
	}
}

func TestRawEncodeTranscodesConfiguredEncoding(t *testing.T) {
	enc, err := NewEncoding("windows-1252")
	if err != nil {
		t.Fatal(err)
	}
	b, err := (Raw{Encoding: enc}).Encode("PRIVMSG #chan :café")
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte("PRIVMSG #chan :caf"), 0xE9, '\r', '\n')
	if string(b) != string(want) {
		t.Errorf("got %v, want %v", b, want)
	}
}

func TestRawConstructors(t *testing.T) {
	if got := (Raw{}).NewPing("abc"); got != "PING :abc" {
		t.Errorf("got %q", got)
	}
	if got := (Raw{}).NewJoin("#chan", "key"); got != "JOIN #chan key" {
		t.Errorf("got %q", got)
	}
	if got := (Raw{}).NewUser("test", "Test User"); got != "USER test 0 * :Test User" {
		t.Errorf("got %q", got)
	}
}

func TestRawPredicates(t *testing.T) {
	r := Raw{}
	if !r.IsEndOfMotd(":server 376 nick :End of MOTD") {
		t.Error("expected 376 to be recognized as end of motd")
	}
	if !r.IsErrNoMotd(":server 422 nick :MOTD File is missing") {
		t.Error("expected 422 to be recognized as err no motd")
	}
	if !r.IsPong(":server PONG server :abc") {
		t.Error("expected PONG to be recognized")
	}
	if !r.IsQuit(":nick!user@host QUIT :bye") {
		t.Error("expected QUIT to be recognized")
	}
}

func TestRawAsPing(t *testing.T) {
	payload, ok := (Raw{}).AsPing("PING :abc123")
	if !ok || payload != "abc123" {
		t.Errorf("expected (abc123, true), got (%q, %v)", payload, ok)
	}
	if _, ok := (Raw{}).AsPing("PONG :abc"); ok {
		t.Error("PONG should not be recognized by AsPing")
	}
}
