/*
Package ircerr defines the typed error taxonomy shared by codec,
transport, session, and client, grounded on the teacher's sentinel-error-
plus-pkg/errors-wrap idiom (bot/bot.go, bot/server.go, bot/api_server.go).
*/
package ircerr

import "github.com/pkg/errors"

// Kind classifies an Error into one of the categories spec.md §7 requires
// callers be able to switch on.
type Kind int

const (
	// KindUnknown is the zero value; never set on a returned Error.
	KindUnknown Kind = iota

	// KindIO covers socket/file read-write failures.
	KindIO
	// KindTLS covers certificate/handshake failures.
	KindTLS
	// KindDNS covers host resolution failures.
	KindDNS
	// KindProxy covers SOCKS/HTTP proxy CONNECT failures.
	KindProxy
	// KindInvalidMessage covers grammar parse/serialize failures.
	KindInvalidMessage
	// KindInvalidConfig covers malformed or missing configuration.
	KindInvalidConfig
	// KindPingTimeout covers a supervised connection receiving no inbound
	// message at all for the ping interval plus the ping timeout.
	KindPingTimeout
	// KindNoUsableNick covers registration exhausting every alternate
	// nickname without success.
	KindNoUsableNick
	// KindAsyncChannelClosed covers a send to a Sender whose channel
	// has already been closed by Transport shutdown.
	KindAsyncChannelClosed
	// KindStreamAlreadyConfigured covers a caller attaching a second
	// consumer to a Transport Supervisor's single-consumer stream.
	KindStreamAlreadyConfigured
	// KindUnknownCodec covers an unrecognized encoding label at
	// construction, per codec.NewEncoding.
	KindUnknownCodec
	// KindCodecFailed covers a Codec returning a decode/encode error
	// other than a known grammar failure.
	KindCodecFailed
	// KindPoisonedLog covers a logging sink that failed and should not
	// be retried.
	KindPoisonedLog
)

var kindNames = map[Kind]string{
	KindIO:                      "io",
	KindTLS:                     "tls",
	KindDNS:                     "dns",
	KindProxy:                   "proxy",
	KindInvalidMessage:          "invalid_message",
	KindInvalidConfig:           "invalid_config",
	KindPingTimeout:             "ping_timeout",
	KindNoUsableNick:            "no_usable_nick",
	KindAsyncChannelClosed:      "async_channel_closed",
	KindStreamAlreadyConfigured: "stream_already_configured",
	KindUnknownCodec:            "unknown_codec",
	KindCodecFailed:             "codec_failed",
	KindPoisonedLog:             "poisoned_log",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Error is the concrete error type returned across package boundaries: a
// Kind plus a wrapped cause, following the teacher's sentinel-error style
// (bot: <condition>) but with a structured Kind a caller can switch on
// instead of comparing error strings or using errors.Is against a large
// sentinel set.
type Error struct {
	Kind Kind
	msg  string
	// cause is the original error passed to Wrap, returned verbatim by
	// Unwrap so errors.Is/errors.As see through this Error regardless of
	// what the formatted string looks like.
	cause error
	// formatted carries the github.com/pkg/errors-wrapped cause, used only
	// by Error() so %+v still prints a stack trace from the original
	// Wrap call site.
	formatted error
}

// New builds an Error of the given kind with a message, no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Wrap builds an Error of the given kind, wrapping cause with msg context
// via github.com/pkg/errors so %+v still prints a stack trace from the
// original site, while Unwrap keeps returning cause directly so the
// errors.Is/errors.As chain isn't affected by pkg/errors' own wrapper type.
func Wrap(kind Kind, cause error, msg string) *Error {
	if cause == nil {
		return New(kind, msg)
	}
	return &Error{Kind: kind, msg: msg, cause: cause, formatted: errors.Wrap(cause, msg)}
}

func (e *Error) Error() string {
	if e.formatted != nil {
		return e.formatted.Error()
	}
	return e.msg
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, ircerr.New(ircerr.KindPingTimeout, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
