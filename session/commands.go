package session

import (
	"strings"

	"github.com/aarondl/irccore/proto"
)

// The following are the convenience send methods of spec.md §4.6,
// generalized onto Session since both Session and client.Client need
// them and Client is a thin wrapper over a Session.

// Join joins a channel, with an optional key.
func (s *Session) Join(channel, key string) { s.send(proto.Message{Command: proto.NewJoin(channel, key)}) }

// Part leaves a channel, eagerly dropping its tracked state per spec.md
// §4.5's outbound rule ("PART(chan): eagerly drop chanlists[chan]").
func (s *Session) Part(channel, reason string) {
	s.chMu.Lock()
	delete(s.channels, strings.ToLower(channel))
	s.chMu.Unlock()
	s.send(proto.Message{Command: proto.NewPart(channel, reason)})
}

// Privmsg sends a channel/user message.
func (s *Session) Privmsg(target, text string) { s.send(proto.Message{Command: proto.NewPrivmsg(target, text)}) }

// Notice sends a notice.
func (s *Session) Notice(target, text string) { s.send(proto.Message{Command: proto.NewNotice(target, text)}) }

// Topic sets (or, if topic is empty, queries) a channel topic.
func (s *Session) Topic(channel, topic string) {
	s.send(proto.Message{Command: proto.NewTopic(channel, topic, len(topic) == 0)})
}

// Kick removes a user from a channel.
func (s *Session) Kick(channel, nick, reason string) {
	s.send(proto.Message{Command: proto.NewKick(channel, nick, reason)})
}

// Mode applies a channel mode string with optional mode arguments.
func (s *Session) Mode(channel, modes string, args ...string) {
	s.send(proto.Message{Command: proto.NewChannelMode(channel, modes, args...)})
}

// Samode issues a services-assisted MODE.
func (s *Session) Samode(channel, modes, arg string) {
	s.send(proto.Message{Command: proto.NewSamode(channel, modes, arg)})
}

// Sanick issues a services-assisted NICK change.
func (s *Session) Sanick(oldNick, newNick string) {
	s.send(proto.Message{Command: proto.NewSanick(oldNick, newNick)})
}

// Invite invites a user to a channel.
func (s *Session) Invite(nick, channel string) {
	s.send(proto.Message{Command: proto.NewInvite(nick, channel)})
}

// Quit disconnects, using a default message when msg is empty.
func (s *Session) Quit(msg string) { s.send(proto.Message{Command: proto.NewQuit(msg)}) }

// Authenticate sends a SASL AUTHENTICATE line.
func (s *Session) Authenticate(data string) {
	s.send(proto.Message{Command: proto.NewAuthenticate(data)})
}

// CapReq requests additional IRCv3 capabilities outside of Identify's
// initial negotiation.
func (s *Session) CapReq(capabilities string) {
	s.send(proto.Message{Command: proto.NewCapReq(capabilities)})
}

// CTCPAction sends a CTCP ACTION (the conventional "/me does a thing").
func (s *Session) CTCPAction(target, action string) {
	s.send(proto.Message{Command: proto.NewPrivmsg(target, proto.PackCTCP("ACTION", action))})
}
