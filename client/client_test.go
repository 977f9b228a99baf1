package client

import (
	"testing"
	"time"

	"github.com/aarondl/irccore/config"
	"github.com/aarondl/irccore/mocks"
)

type fakeConfig struct {
	nickname, username, realname string
	proxyType, proxyServer       string
	proxyPort                    int
	encoding                     string
}

var _ config.Values = (*fakeConfig)(nil)

func (c *fakeConfig) Nickname() string                { return c.nickname }
func (c *fakeConfig) AltNicks() []string              { return nil }
func (c *fakeConfig) Username() string                { return c.username }
func (c *fakeConfig) Realname() string                { return c.realname }
func (c *fakeConfig) Server() string                  { return "irc.example.org" }
func (c *fakeConfig) Port() int                       { return 0 }
func (c *fakeConfig) Password() (string, bool)        { return "", false }
func (c *fakeConfig) UseTLS() bool                    { return false }
func (c *fakeConfig) Encoding() string {
	if len(c.encoding) == 0 {
		return "utf-8"
	}
	return c.encoding
}
func (c *fakeConfig) Channels() []string              { return nil }
func (c *fakeConfig) ChannelKey(string) (string, bool) { return "", false }
func (c *fakeConfig) UModes() string                  { return "" }
func (c *fakeConfig) UserInfo() string                { return "" }
func (c *fakeConfig) Version() string                 { return "" }
func (c *fakeConfig) Source() string                  { return "" }
func (c *fakeConfig) PingTime() time.Duration         { return time.Hour }
func (c *fakeConfig) PingTimeout() time.Duration      { return time.Hour }
func (c *fakeConfig) NickPassword() (string, bool)    { return "", false }
func (c *fakeConfig) ShouldGhost() bool               { return false }
func (c *fakeConfig) GhostSequence() []string         { return nil }
func (c *fakeConfig) RequestCapabilities() []string   { return nil }
func (c *fakeConfig) ProxyType() string               { return c.proxyType }
func (c *fakeConfig) ProxyServer() string             { return c.proxyServer }
func (c *fakeConfig) ProxyPort() int                  { return c.proxyPort }

func TestNewWiresSessionOverConn(t *testing.T) {
	cfg := &fakeConfig{nickname: "test", username: "test", realname: "test"}
	conn, server := mocks.Pipe()
	defer server.Close()

	c, err := New(conn, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.Identify()

	server.SetReadDeadline(time.Now().Add(2 * time.Second))
	want := "CAP END\r\nNICK :test\r\nUSER test 0 * :test\r\n"
	buf := make([]byte, 0, len(want))
	tmp := make([]byte, 256)
	for len(buf) < len(want) {
		n, err := server.Read(tmp)
		if err != nil {
			t.Fatalf("read: %v (got so far %q)", err, buf)
		}
		buf = append(buf, tmp[:n]...)
	}
	if string(buf) != want {
		t.Errorf("got %q, want %q", buf, want)
	}
}

func TestNewClosePropagatesToConn(t *testing.T) {
	cfg := &fakeConfig{nickname: "test", username: "test", realname: "test"}
	conn, server := mocks.Pipe()
	defer server.Close()

	c, err := New(conn, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := server.Write([]byte("PING :x\r\n")); err == nil {
		t.Error("expected writing to the peer of a closed pipe to fail")
	}
}

func TestProxyDialerDirect(t *testing.T) {
	d, err := proxyDialer(&fakeConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if d == nil {
		t.Error("expected a non-nil direct dialer")
	}
}

func TestProxyDialerSOCKS5(t *testing.T) {
	cfg := &fakeConfig{proxyType: "socks5", proxyServer: "proxy.example.org", proxyPort: 1080}
	d, err := proxyDialer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d == nil {
		t.Error("expected a non-nil SOCKS5 dialer")
	}
}

func TestProxyDialerUnsupportedType(t *testing.T) {
	cfg := &fakeConfig{proxyType: "unsupported"}
	if _, err := proxyDialer(cfg); err == nil {
		t.Error("expected an error for an unsupported proxy type")
	}
}

func TestProxyDialerHTTPUnsupported(t *testing.T) {
	cfg := &fakeConfig{proxyType: "http", proxyServer: "proxy.example.org", proxyPort: 8080}
	if _, err := proxyDialer(cfg); err == nil {
		t.Error("expected an error: golang.org/x/net/proxy has no built-in http CONNECT dialer")
	}
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	cfg := &fakeConfig{nickname: "test", username: "test", realname: "test", encoding: "not-a-real-encoding"}
	conn, server := mocks.Pipe()
	defer server.Close()
	defer conn.Close()

	if _, err := New(conn, cfg, nil); err == nil {
		t.Error("expected an error for an unrecognized encoding label")
	}
}
