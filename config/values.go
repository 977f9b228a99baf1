/*
Package config defines the minimal configuration-reader interface the
core depends on, plus an optional concrete TOML-backed loader.
*/
package config

import "time"

// Values is the reader of typed configuration values spec.md §1 names as
// an external collaborator: the core depends only on this interface, not
// on any particular file format or loader, the same way the teacher's
// config.NetCTX is consulted through getter methods rather than its raw
// map.
type Values interface {
	// Nickname is the primary nickname to register with. Required.
	Nickname() string
	// AltNicks is the fallback list tried in order on ERR_NICKNAMEINUSE /
	// ERR_ERRONEOUSNICKNAME.
	AltNicks() []string
	// Username is the ident sent in USER. Defaults to Nickname if empty.
	Username() string
	// Realname is the GECOS sent in USER. Defaults to Nickname if empty.
	Realname() string

	// Server is the host to dial. Required.
	Server() string
	// Port is the TCP port to dial. 0 means "use the TLS-aware default".
	Port() int
	// Password is the PASS sent before NICK/USER, if any.
	Password() (string, bool)

	// UseTLS selects a TLS connection. Affects the default Port.
	UseTLS() bool
	// Encoding is a WHATWG character-encoding label, e.g. "utf-8".
	Encoding() string

	// Channels lists the channels joined once registration completes.
	Channels() []string
	// ChannelKey returns the join key configured for channel, if any.
	ChannelKey(channel string) (string, bool)

	// UModes is a user mode string (e.g. "+ix") applied once registered.
	UModes() string
	// UserInfo answers CTCP USERINFO.
	UserInfo() string
	// Version answers CTCP VERSION.
	Version() string
	// Source answers CTCP SOURCE.
	Source() string

	// PingTime is how long inbound silence is tolerated before the
	// PingTimeout grace period begins.
	PingTime() time.Duration
	// PingTimeout is the grace period after PingTime before the
	// connection is declared dead.
	PingTimeout() time.Duration

	// NickPassword is the NickServ IDENTIFY password, if any.
	NickPassword() (string, bool)
	// ShouldGhost enables the NickServ ghost/recover sequence when an
	// alternate nick had to be used.
	ShouldGhost() bool
	// GhostSequence lists the NickServ subcommands sent, in order,
	// before re-claiming the primary nick (default ["GHOST"]).
	GhostSequence() []string

	// RequestCapabilities lists IRCv3 capabilities requested via CAP
	// REQ during registration. Empty means no CAP negotiation beyond
	// the unconditional CAP END.
	RequestCapabilities() []string

	// ProxyType, ProxyServer, and ProxyPort describe an optional SOCKS5
	// proxy to dial through ("socks5", or "" for a direct connection).
	ProxyType() string
	ProxyServer() string
	ProxyPort() int
}
