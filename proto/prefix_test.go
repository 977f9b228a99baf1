package proto

import "testing"

func TestParsePrefixFull(t *testing.T) {
	p := ParsePrefix("nick!user@host")
	if p.Name != "nick" || p.User != "user" || p.Host != "host" || p.IsServer {
		t.Errorf("unexpected prefix: %+v", p)
	}
}

func TestParsePrefixNickOnly(t *testing.T) {
	p := ParsePrefix("nick")
	if p.Name != "nick" || len(p.User) != 0 || len(p.Host) != 0 || p.IsServer {
		t.Errorf("unexpected prefix: %+v", p)
	}
	if p.Nick() != "nick" {
		t.Errorf("expected Nick() to be nick, got %q", p.Nick())
	}
}

func TestParsePrefixServer(t *testing.T) {
	p := ParsePrefix("irc.example.com")
	if !p.IsServer {
		t.Error("expected a dotted name to be a server")
	}
	if p.Nick() != "" {
		t.Errorf("expected empty Nick() for a server, got %q", p.Nick())
	}
	if p.String() != "irc.example.com" {
		t.Errorf("expected round trip, got %q", p.String())
	}
}

func TestParsePrefixStringRoundTrip(t *testing.T) {
	for _, s := range []string{"nick!user@host", "nick"} {
		p := ParsePrefix(s)
		if got := p.String(); got != s {
			t.Errorf("String() round trip for %q: got %q", s, got)
		}
	}
}
