/*
Package session maintains per-connection protocol state shared across the
send and receive paths: registration, alt-nick fallback, channel/user
tracking, and the CTCP responder, grounded on the teacher's
data/state.go Update(ev) dispatch and bot/core_handler.go's
registration-completion hook.
*/
package session

import (
	"strings"
	"sync"

	"github.com/aarondl/irccore/config"
	"github.com/aarondl/irccore/ircerr"
	"github.com/aarondl/irccore/proto"
	"github.com/aarondl/irccore/transport"
	"gopkg.in/inconshreveable/log15.v2"
)

// Item is a single inbound item yielded by Session.Stream.
type Item = transport.Item[proto.Message]

// Session is a long-lived, concurrency-safe holder of per-connection
// state: the channel map, alt-nick index, current nickname, the outbound
// Sender, and the takeable-once application stream.
type Session struct {
	cfg    config.Values
	log    log15.Logger
	sender *transport.Sender[proto.Message]

	streamMu    sync.Mutex
	streamTaken bool
	inCh        <-chan transport.Item[proto.Message]
	outCh       chan Item

	chMu     sync.RWMutex
	channels map[string]*Channel // keyed lowercase

	nickMu      sync.RWMutex
	currentNick string
	altIndex    int

	regMu sync.Mutex
	state regState
}

// New constructs a Session wrapping a transport.Supervisor's sender/
// stream halves. log may be nil, in which case log15's discard handler
// is used.
func New(cfg config.Values, sender *transport.Sender[proto.Message], inbound <-chan transport.Item[proto.Message], log log15.Logger) *Session {
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}

	s := &Session{
		cfg:      cfg,
		log:      log,
		sender:   sender,
		inCh:     inbound,
		outCh:    make(chan Item),
		channels: make(map[string]*Channel),
	}
	go s.pump()
	return s
}

// Sender returns a cloneable handle to the outbound half.
func (s *Session) Sender() *transport.Sender[proto.Message] {
	return s.sender.Clone()
}

// Stream returns the application-visible inbound channel. A second call
// fails with KindStreamAlreadyConfigured.
func (s *Session) Stream() (<-chan Item, error) {
	s.streamMu.Lock()
	defer s.streamMu.Unlock()
	if s.streamTaken {
		return nil, ircerr.New(ircerr.KindStreamAlreadyConfigured, "session: stream already taken")
	}
	s.streamTaken = true
	return s.outCh, nil
}

// CurrentNick returns the last nickname the server appears to have
// accepted for this connection.
func (s *Session) CurrentNick() string {
	s.nickMu.RLock()
	defer s.nickMu.RUnlock()
	return s.currentNick
}

// Channel returns the tracked state for a joined channel, or nil.
func (s *Session) Channel(name string) *Channel {
	s.chMu.RLock()
	defer s.chMu.RUnlock()
	return s.channels[strings.ToLower(name)]
}

func (s *Session) send(msg proto.Message) {
	if err := s.sender.Send(msg); err != nil {
		s.log.Warn("session: send failed", "err", err)
	}
}

// pump drains the transport's inbound channel, updates session state for
// each message, and forwards it to the application-visible channel —
// the "driver/read task" of spec.md §5, collapsed into one goroutine
// since Go's channel model doesn't need a separate polled future.
func (s *Session) pump() {
	defer close(s.outCh)

	for item := range s.inCh {
		if item.Err != nil {
			s.outCh <- item
			if item.Fatal {
				return
			}
			continue
		}

		if s.update(item.Message) {
			s.outCh <- Item{Err: ircerr.New(ircerr.KindNoUsableNick, "session: alt-nick list exhausted"), Fatal: true}
			return
		}
		s.outCh <- item
	}
}

// update applies the inbound state-update table of spec.md §4.5 before
// the message is handed to the application. It returns true if alt-nick
// fallback has just been exhausted, in which case the caller should
// surface NoUsableNick and stop without forwarding msg.
func (s *Session) update(msg proto.Message) bool {
	if exhausted := s.handleRegistration(msg); exhausted {
		return true
	}

	switch msg.Command.Kind {
	case proto.KindJOIN:
		s.onJoin(msg)
	case proto.KindPART:
		s.onPart(msg)
	case proto.KindKICK:
		s.onKick(msg)
	case proto.KindQUIT:
		s.onQuit(msg)
	case proto.KindNICK:
		s.onNick(msg)
	case proto.KindChannelMODE:
		s.onChannelMode(msg)
	case proto.KindPRIVMSG, proto.KindNOTICE:
		s.handleCTCP(msg)
	case proto.KindResponse:
		if msg.Command.Numeric == proto.RPL_NAMREPLY {
			s.onNamReply(msg)
		}
	}

	return false
}

func (s *Session) onJoin(msg proto.Message) {
	if len(msg.Command.Args) == 0 {
		return
	}
	chanName := msg.Command.Args[0]
	nick := msg.SourceNick()

	if strings.EqualFold(nick, s.CurrentNick()) {
		s.chMu.Lock()
		s.channels[strings.ToLower(chanName)] = NewChannel(chanName)
		s.chMu.Unlock()
		return
	}

	s.chMu.RLock()
	ch, ok := s.channels[strings.ToLower(chanName)]
	s.chMu.RUnlock()
	if ok {
		ch.AddUser(NewUserFromPrefix(*msg.Prefix))
	}
}

func (s *Session) onPart(msg proto.Message) {
	if len(msg.Command.Args) == 0 {
		return
	}
	chanName := msg.Command.Args[0]
	nick := msg.SourceNick()

	if strings.EqualFold(nick, s.CurrentNick()) {
		s.chMu.Lock()
		delete(s.channels, strings.ToLower(chanName))
		s.chMu.Unlock()
		return
	}

	if ch := s.Channel(chanName); ch != nil {
		ch.RemoveUser(nick)
	}
}

func (s *Session) onKick(msg proto.Message) {
	if len(msg.Command.Args) < 2 {
		return
	}
	chanName, target := msg.Command.Args[0], msg.Command.Args[1]

	if strings.EqualFold(target, s.CurrentNick()) {
		s.chMu.Lock()
		delete(s.channels, strings.ToLower(chanName))
		s.chMu.Unlock()
		return
	}

	if ch := s.Channel(chanName); ch != nil {
		ch.RemoveUser(target)
	}
}

func (s *Session) onQuit(msg proto.Message) {
	nick := msg.SourceNick()
	if strings.EqualFold(nick, s.CurrentNick()) {
		return
	}

	s.chMu.RLock()
	chans := make([]*Channel, 0, len(s.channels))
	for _, ch := range s.channels {
		chans = append(chans, ch)
	}
	s.chMu.RUnlock()

	for _, ch := range chans {
		ch.RemoveUser(nick)
	}
}

func (s *Session) onNick(msg proto.Message) {
	oldNick := msg.SourceNick()
	if !msg.Command.HasTrailing {
		return
	}
	newNick := msg.Command.Trailing

	if strings.EqualFold(oldNick, s.CurrentNick()) {
		s.nickMu.Lock()
		s.currentNick = newNick
		s.nickMu.Unlock()
	}

	s.chMu.RLock()
	defer s.chMu.RUnlock()
	for _, ch := range s.channels {
		if ch.User(oldNick) != nil {
			ch.RenameUser(oldNick, newNick)
		}
	}
}

func (s *Session) onChannelMode(msg proto.Message) {
	if len(msg.Command.Args) < 2 {
		return
	}
	chanName := msg.Command.Args[0]
	ch := s.Channel(chanName)
	if ch == nil {
		return
	}

	modes, err := proto.ParseChannelModes(msg.Command.Args[1], msg.Command.Args[2:])
	if err != nil {
		return
	}
	for _, m := range modes {
		if !m.HasArg {
			continue
		}
		if u := ch.User(m.Arg); u != nil {
			u.ApplyChannelMode(m)
		}
	}
}

func (s *Session) onNamReply(msg proto.Message) {
	if len(msg.Command.Args) < 3 || !msg.Command.HasTrailing {
		return
	}
	chanName := msg.Command.Args[2]

	s.chMu.Lock()
	ch, ok := s.channels[strings.ToLower(chanName)]
	if !ok {
		ch = NewChannel(chanName)
		s.channels[strings.ToLower(chanName)] = ch
	}
	s.chMu.Unlock()

	for _, tok := range strings.Fields(msg.Command.Trailing) {
		u := NewUser("")
		ApplyNamePrefix(u, tok)
		u.Nick = strings.TrimLeft(tok, "~&@%+")
		ch.AddUser(u)
	}
}
