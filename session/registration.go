package session

import (
	"strings"

	"github.com/aarondl/irccore/proto"
)

// regState is the registration FSM's state, per spec.md §4.5's diagram:
// Start (not modeled as a distinct value; Identify sends its messages and
// moves straight to AwaitingMOTD) -> AwaitingMOTD -> Ready.
type regState int

const (
	regAwaitingMOTD regState = iota
	regReady
)

// Identify executes the Start->AwaitingMOTD prefix of the registration
// FSM: capability negotiation (if configured), PASS (if configured),
// NICK, USER. Safe to call only once per connection.
func (s *Session) Identify() {
	if caps := s.cfg.RequestCapabilities(); len(caps) > 0 {
		s.send(proto.Message{Command: proto.NewCapLs()})
		s.send(proto.Message{Command: proto.NewCapReq(strings.Join(caps, " "))})
	}
	s.send(proto.Message{Command: proto.NewCapEnd()})

	if pw, ok := s.cfg.Password(); ok {
		s.send(proto.Message{Command: proto.NewPass(pw)})
	}

	s.nickMu.Lock()
	s.currentNick = s.cfg.Nickname()
	s.nickMu.Unlock()

	s.send(proto.Message{Command: proto.NewNick(s.cfg.Nickname())})
	s.send(proto.Message{Command: proto.NewUser(s.cfg.Username(), s.cfg.Realname())})

	s.regMu.Lock()
	s.state = regAwaitingMOTD
	s.regMu.Unlock()
}

// handleRegistration reacts to inbound messages relevant to the
// registration FSM: nickname collisions while AwaitingMOTD, and the
// end-of-MOTD transition to Ready that triggers ghost/identify/umodes/
// auto-join. Reports exhausted as true if alt-nick fallback is exhausted;
// the caller then surfaces a KindNoUsableNick ircerr as a fatal Item.
func (s *Session) handleRegistration(msg proto.Message) (exhausted bool) {
	s.regMu.Lock()
	state := s.state
	s.regMu.Unlock()

	if state != regReady {
		if isNickCollision(msg) {
			return s.advanceAltNick()
		}
		if proto.IsEndOfMotd(msg) || proto.IsErrNoMotd(msg) {
			s.regMu.Lock()
			s.state = regReady
			s.regMu.Unlock()
			s.onReady()
		}
	}
	return false
}

func isNickCollision(msg proto.Message) bool {
	return msg.Command.Kind == proto.KindResponse &&
		(msg.Command.Numeric == proto.ERR_NICKNAMEINUSE || msg.Command.Numeric == proto.ERR_ERRONEOUSNICKNAME)
}

// advanceAltNick sends the next alt_nick, or reports exhaustion once every
// alternate (plus the primary) has been rejected — property 5 of spec.md
// §8: "given alt_nicks of length N, after N+1 consecutive
// ERR_NICKNAMEINUSE events the stream yields NoUsableNick and closes."
func (s *Session) advanceAltNick() bool {
	alts := s.cfg.AltNicks()

	s.nickMu.Lock()
	idx := s.altIndex
	s.altIndex++
	s.nickMu.Unlock()

	if idx >= len(alts) {
		return true
	}

	next := alts[idx]
	s.nickMu.Lock()
	s.currentNick = next
	s.nickMu.Unlock()

	s.send(proto.Message{Command: proto.NewNick(next)})
	return false
}

// onReady runs the Ready-state actions of spec.md §4.5's FSM diagram:
// ghost/recover sequence (if an alt nick had to be used), NickServ
// IDENTIFY, umodes, and channel auto-join.
func (s *Session) onReady() {
	s.nickMu.RLock()
	usedAlt := s.altIndex > 0
	s.nickMu.RUnlock()

	if usedAlt && s.cfg.ShouldGhost() {
		if pw, ok := s.cfg.NickPassword(); ok {
			primary := s.cfg.Nickname()
			for _, seq := range s.cfg.GhostSequence() {
				s.send(proto.Message{Command: proto.NewNickserv(seq + " " + primary + " " + pw)})
			}
			s.send(proto.Message{Command: proto.NewNick(primary)})
			s.nickMu.Lock()
			s.currentNick = primary
			s.altIndex = 0
			s.nickMu.Unlock()
		}
	}

	if pw, ok := s.cfg.NickPassword(); ok {
		s.send(proto.Message{Command: proto.NewNickserv("IDENTIFY " + pw)})
	}

	if umodes := s.cfg.UModes(); len(umodes) > 0 {
		s.nickMu.RLock()
		nick := s.currentNick
		s.nickMu.RUnlock()
		s.send(proto.Message{Command: proto.NewUserMode(nick, umodes)})
	}

	for _, ch := range s.cfg.Channels() {
		if key, ok := s.cfg.ChannelKey(ch); ok {
			s.send(proto.Message{Command: proto.NewJoin(ch, key)})
		} else {
			s.send(proto.Message{Command: proto.NewJoin(ch, "")})
		}
	}
}
