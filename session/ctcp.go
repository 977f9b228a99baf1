package session

import (
	"strings"
	"time"

	"github.com/aarondl/irccore/proto"
)

// handleCTCP recognizes a CTCP-framed PRIVMSG body and replies over
// NOTICE to the appropriate target, per spec.md §4.5's request/reply
// table. Grounded on the teacher's irc/ctcp.go pack/unpack helpers; the
// FINGER/VERSION/SOURCE/PING/TIME/USERINFO table itself is supplemented
// from spec.md since the teacher's data package has no CTCP responder.
func (s *Session) handleCTCP(msg proto.Message) {
	if msg.Command.Kind != proto.KindPRIVMSG || !msg.Command.HasTrailing {
		return
	}
	if !proto.IsCTCP(msg.Command.Trailing) {
		return
	}

	fields := proto.UnpackCTCP(msg.Command.Trailing)
	if len(fields) == 0 {
		return
	}

	target := msg.ResponseTarget()
	tag := strings.ToUpper(fields[0])
	var arg string
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], " ")
	}

	switch tag {
	case "FINGER":
		s.reply(target, "FINGER", s.cfg.Realname()+" ("+s.cfg.Username()+")")
	case "VERSION":
		version := s.cfg.Version()
		if len(version) == 0 {
			version = "irccore"
		}
		s.reply(target, "VERSION", version)
	case "SOURCE":
		if src := s.cfg.Source(); len(src) > 0 {
			s.reply(target, "SOURCE", src)
		}
		s.reply(target, "SOURCE", "")
	case "PING":
		if len(arg) > 0 {
			s.reply(target, "PING", arg)
		}
	case "TIME":
		s.reply(target, "TIME", time.Now().Format(time.RFC1123Z))
	case "USERINFO":
		s.reply(target, "USERINFO", s.cfg.UserInfo())
	}
}

// reply sends a NOTICE containing a CTCP-framed tag/data payload.
func (s *Session) reply(target, tag, data string) {
	var payload string
	if len(data) > 0 {
		payload = proto.PackCTCP(tag, data)
	} else {
		payload = proto.PackCTCP(tag)
	}
	s.send(proto.Message{Command: proto.NewNotice(target, payload)})
}
