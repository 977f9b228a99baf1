/*
Package client is the top-level Facade of spec.md §4.6: given a dialed
connection (or a config.Values to dial one itself), it wires together a
codec, a transport.Supervisor, and a session.Session, and exposes the
combined Sender/Stream/convenience-command surface an application
actually uses, grounded on the teacher's bot/server.go createConnection/
createTlsConfig dial logic.
*/
package client

import (
	"crypto/tls"
	"net"
	"strconv"

	"github.com/aarondl/irccore/codec"
	"github.com/aarondl/irccore/config"
	"github.com/aarondl/irccore/ircerr"
	"github.com/aarondl/irccore/proto"
	"github.com/aarondl/irccore/session"
	"github.com/aarondl/irccore/transport"
	"github.com/pkg/errors"
	"golang.org/x/net/proxy"
	"gopkg.in/inconshreveable/log15.v2"
)

// Client wires a Supervisor carrying proto.Message over the Parsed codec
// to a Session, and forwards the convenience surface of spec.md §4.6.
type Client struct {
	*session.Session

	cfg  config.Values
	log  log15.Logger
	sup  *transport.Supervisor[proto.Message]
	conn net.Conn
}

// Dial opens a TCP (optionally TLS, optionally proxied) connection to
// cfg.Server/cfg.Port per cfg.ProxyType/ProxyServer/ProxyPort, and
// returns a Client ready for Identify. log may be nil.
func Dial(cfg config.Values, log log15.Logger) (*Client, error) {
	conn, err := dial(cfg)
	if err != nil {
		return nil, ircerr.Wrap(ircerr.KindIO, err, "client: dial failed")
	}
	c, err := New(conn, cfg, log)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an already-established connection. The caller retains
// ownership of dialing; Client takes over Close. Returns an error of
// ircerr.KindUnknownCodec if cfg.Encoding names a label
// golang.org/x/text/encoding/htmlindex doesn't recognize.
func New(conn net.Conn, cfg config.Values, log log15.Logger) (*Client, error) {
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}

	enc, err := codec.NewEncoding(cfg.Encoding())
	if err != nil {
		return nil, err
	}

	wireCodec := codec.Parsed{Encoding: enc}
	var c codec.Codec[proto.Message] = wireCodec
	sup := transport.New[proto.Message](conn, c, wireCodec, cfg.PingTime(), cfg.PingTimeout())
	sup.Start()

	stream, err := sup.Stream()
	if err != nil {
		// Stream is only ever called once per Supervisor, here, so it
		// cannot fail.
		panic(err)
	}

	sess := session.New(cfg, sup.Sender(), stream, log.New("pkg", "session"))

	return &Client{
		Session: sess,
		cfg:     cfg,
		log:     log,
		sup:     sup,
		conn:    conn,
	}, nil
}

// Close tears down the Supervisor and the underlying connection.
func (c *Client) Close() error {
	return c.sup.Close()
}

func dial(cfg config.Values) (net.Conn, error) {
	port := cfg.Port()
	if port == 0 {
		if cfg.UseTLS() {
			port = 6697
		} else {
			port = 6667
		}
	}
	addr := net.JoinHostPort(cfg.Server(), strconv.Itoa(port))

	dialer, err := proxyDialer(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "client: dial %s", addr)
	}

	if cfg.UseTLS() {
		tlsConn := tls.Client(conn, &tls.Config{ServerName: cfg.Server()})
		if err := tlsConn.Handshake(); err != nil {
			conn.Close()
			return nil, errors.Wrap(err, "client: tls handshake failed")
		}
		return tlsConn, nil
	}
	return conn, nil
}

// proxyDialer builds the proxy.Dialer cfg.ProxyType describes ("socks5",
// or "" for a direct connection), grounded on the SOCKS5 proxy wiring
// other retrieved IRC clients use ahead of net.Dial. golang.org/x/net/proxy
// only has built-in dialer support for socks5/socks5h; an "http" CONNECT
// proxy would need a hand-rolled proxy.Dialer registered via
// proxy.RegisterDialerType, which this package doesn't fabricate.
func proxyDialer(cfg config.Values) (proxy.Dialer, error) {
	typ := cfg.ProxyType()
	if len(typ) == 0 {
		return proxy.Direct, nil
	}

	addr := net.JoinHostPort(cfg.ProxyServer(), strconv.Itoa(cfg.ProxyPort()))

	switch typ {
	case "socks5":
		return proxy.SOCKS5("tcp", addr, nil, proxy.Direct)
	default:
		return nil, ircerr.New(ircerr.KindInvalidConfig, "client: unsupported proxy type "+typ)
	}
}
