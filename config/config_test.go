package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func decode(t *testing.T, body string) *Config {
	t.Helper()
	var c Config
	if _, err := toml.Decode(body, &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return &c
}

func TestConfigDefaults(t *testing.T) {
	c := decode(t, `
nickname = "mybot"
server = "irc.example.org"
`)

	if c.Username() != "mybot" {
		t.Errorf("expected Username to default to nickname, got %q", c.Username())
	}
	if c.Realname() != "mybot" {
		t.Errorf("expected Realname to default to nickname, got %q", c.Realname())
	}
	if c.Encoding() != "utf-8" {
		t.Errorf("expected Encoding to default to utf-8, got %q", c.Encoding())
	}
	if c.Port() != DefaultPort {
		t.Errorf("expected default plaintext port, got %d", c.Port())
	}
	if c.PingTime() != DefaultPingTime {
		t.Errorf("expected default ping time, got %v", c.PingTime())
	}
	if c.PingTimeout() != DefaultPingTimeout {
		t.Errorf("expected default ping timeout, got %v", c.PingTimeout())
	}
	if got := c.GhostSequence(); len(got) != 1 || got[0] != "GHOST" {
		t.Errorf("expected default ghost sequence [GHOST], got %v", got)
	}
	if _, ok := c.Password(); ok {
		t.Error("expected no password by default")
	}
	if _, ok := c.NickPassword(); ok {
		t.Error("expected no nick password by default")
	}
}

func TestConfigTLSDefaultPort(t *testing.T) {
	c := decode(t, `
nickname = "mybot"
server = "irc.example.org"
use_tls = true
`)
	if c.Port() != DefaultTLSPort {
		t.Errorf("expected default TLS port, got %d", c.Port())
	}
}

func TestConfigExplicitPortOverridesDefault(t *testing.T) {
	c := decode(t, `
nickname = "mybot"
server = "irc.example.org"
use_tls = true
port = 7000
`)
	if c.Port() != 7000 {
		t.Errorf("expected explicit port to win, got %d", c.Port())
	}
}

func TestConfigOverridesAndChannelKeys(t *testing.T) {
	c := decode(t, `
nickname = "mybot"
username = "identd"
realname = "My Bot"
server = "irc.example.org"

channels = ["#one", "#two"]
[channel_keys]
  "#two" = "secretkey"

nick_password = "hunter2"
should_ghost = true
ghost_sequence = ["RECOVER", "RELEASE"]
`)

	if c.Username() != "identd" {
		t.Errorf("expected explicit username, got %q", c.Username())
	}
	if c.Realname() != "My Bot" {
		t.Errorf("expected explicit realname, got %q", c.Realname())
	}
	if !c.ShouldGhost() {
		t.Error("expected should_ghost true")
	}
	seq := c.GhostSequence()
	if len(seq) != 2 || seq[0] != "RECOVER" || seq[1] != "RELEASE" {
		t.Errorf("expected explicit ghost sequence, got %v", seq)
	}
	if pw, ok := c.NickPassword(); !ok || pw != "hunter2" {
		t.Errorf("expected nick password hunter2, got (%q, %v)", pw, ok)
	}

	if _, ok := c.ChannelKey("#one"); ok {
		t.Error("expected #one to have no key")
	}
	if key, ok := c.ChannelKey("#two"); !ok || key != "secretkey" {
		t.Errorf("expected #two key secretkey, got (%q, %v)", key, ok)
	}
}

func TestConfigPingOverrides(t *testing.T) {
	// time.Duration decodes from TOML as a plain integer of nanoseconds,
	// since BurntSushi/toml has no built-in notion of a duration literal.
	c := decode(t, `
nickname = "mybot"
server = "irc.example.org"
ping_time = 60000000000
ping_timeout = 5000000000
`)
	if c.PingTime() != 60*time.Second {
		t.Errorf("expected 60s ping time, got %v", c.PingTime())
	}
	if c.PingTimeout() != 5*time.Second {
		t.Errorf("expected 5s ping timeout, got %v", c.PingTimeout())
	}
}
