/*
Package config provides the concrete, file-backed Values implementation:
a single-network TOML configuration, loaded with github.com/BurntSushi/toml
the way the teacher's config package loads its multi-network one. The
core (session/transport/client) never imports this file — it depends only
on the Values interface in values.go.

An example configuration looks like this:

	nickname = "mybot"
	alt_nicks = ["mybot_", "mybot__"]
	username = "mybot"
	realname = "My Bot"

	server = "irc.example.org"
	port = 6697
	use_tls = true

	channels = ["#one", "#two"]
	[channel_keys]
	  "#two" = "secretkey"

	nick_password = "hunter2"
	should_ghost = true
	ghost_sequence = ["RECOVER", "RELEASE"]
*/
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Default port numbers, selected by UseTLS, mirroring the historical
// IRC plaintext/TLS split.
const (
	DefaultPort    = 6667
	DefaultTLSPort = 6697

	DefaultPingTime    = 180 * time.Second
	DefaultPingTimeout = 10 * time.Second
)

// defaultGhostSequence is sent, in order, before reclaiming the primary
// nick once an alternate had to be used.
var defaultGhostSequence = []string{"GHOST"}

// Config is the concrete, file-backed implementation of Values.
type Config struct {
	NicknameValue string   `toml:"nickname"`
	AltNicksValue []string `toml:"alt_nicks"`
	UsernameValue string   `toml:"username"`
	RealnameValue string   `toml:"realname"`

	ServerValue   string `toml:"server"`
	PortValue     int    `toml:"port"`
	PasswordValue string `toml:"password"`

	UseTLSValue   bool   `toml:"use_tls"`
	EncodingValue string `toml:"encoding"`

	ChannelsValue    []string          `toml:"channels"`
	ChannelKeysValue map[string]string `toml:"channel_keys"`

	UModesValue   string `toml:"umodes"`
	UserInfoValue string `toml:"user_info"`
	VersionValue  string `toml:"version"`
	SourceValue   string `toml:"source"`

	PingTimeValue    time.Duration `toml:"ping_time"`
	PingTimeoutValue time.Duration `toml:"ping_timeout"`

	NickPasswordValue  string   `toml:"nick_password"`
	ShouldGhostValue   bool     `toml:"should_ghost"`
	GhostSequenceValue []string `toml:"ghost_sequence"`

	RequestCapabilitiesValue []string `toml:"request_capabilities"`

	ProxyTypeValue   string `toml:"proxy_type"`
	ProxyServerValue string `toml:"proxy_server"`
	ProxyPortValue   int    `toml:"proxy_port"`
}

var _ Values = (*Config)(nil)

// Load reads and decodes a TOML configuration file at path.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, errors.Wrapf(err, "config: failed to load %s", path)
	}
	return &c, nil
}

func (c *Config) Nickname() string   { return c.NicknameValue }
func (c *Config) AltNicks() []string { return c.AltNicksValue }

func (c *Config) Username() string {
	if len(c.UsernameValue) == 0 {
		return c.NicknameValue
	}
	return c.UsernameValue
}

func (c *Config) Realname() string {
	if len(c.RealnameValue) == 0 {
		return c.NicknameValue
	}
	return c.RealnameValue
}

func (c *Config) Server() string { return c.ServerValue }

func (c *Config) Port() int {
	if c.PortValue != 0 {
		return c.PortValue
	}
	if c.UseTLSValue {
		return DefaultTLSPort
	}
	return DefaultPort
}

func (c *Config) Password() (string, bool) {
	return c.PasswordValue, len(c.PasswordValue) > 0
}

func (c *Config) UseTLS() bool { return c.UseTLSValue }

func (c *Config) Encoding() string {
	if len(c.EncodingValue) == 0 {
		return "utf-8"
	}
	return c.EncodingValue
}

func (c *Config) Channels() []string { return c.ChannelsValue }

func (c *Config) ChannelKey(channel string) (string, bool) {
	key, ok := c.ChannelKeysValue[channel]
	return key, ok
}

func (c *Config) UModes() string   { return c.UModesValue }
func (c *Config) UserInfo() string { return c.UserInfoValue }
func (c *Config) Version() string  { return c.VersionValue }
func (c *Config) Source() string   { return c.SourceValue }

func (c *Config) PingTime() time.Duration {
	if c.PingTimeValue != 0 {
		return c.PingTimeValue
	}
	return DefaultPingTime
}

func (c *Config) PingTimeout() time.Duration {
	if c.PingTimeoutValue != 0 {
		return c.PingTimeoutValue
	}
	return DefaultPingTimeout
}

func (c *Config) NickPassword() (string, bool) {
	return c.NickPasswordValue, len(c.NickPasswordValue) > 0
}

func (c *Config) ShouldGhost() bool { return c.ShouldGhostValue }

func (c *Config) GhostSequence() []string {
	if len(c.GhostSequenceValue) == 0 {
		return defaultGhostSequence
	}
	return c.GhostSequenceValue
}

func (c *Config) RequestCapabilities() []string { return c.RequestCapabilitiesValue }

func (c *Config) ProxyType() string   { return c.ProxyTypeValue }
func (c *Config) ProxyServer() string { return c.ProxyServerValue }
func (c *Config) ProxyPort() int      { return c.ProxyPortValue }
