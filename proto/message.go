package proto

// Message is the full wire message: an optional IRCv3 tag list, an
// optional prefix, and a command.
type Message struct {
	Tags    []Tag
	Prefix  *Prefix
	Command Command
}

// SourceNick returns the nickname of the sender, or "" if there is no
// prefix or the prefix is a server name.
func (m Message) SourceNick() string {
	if m.Prefix == nil {
		return ""
	}
	return m.Prefix.Nick()
}

// ResponseTarget returns the channel for a PRIVMSG/NOTICE directed at a
// channel, and the source nickname otherwise — the target a reply to this
// message should be sent to.
func (m Message) ResponseTarget() string {
	if (m.Command.Kind == KindPRIVMSG || m.Command.Kind == KindNOTICE) && len(m.Command.Args) > 0 {
		if IsChannelName(m.Command.Args[0]) {
			return m.Command.Args[0]
		}
	}
	return m.SourceNick()
}

// Tag returns the value (and presence) of a tag by key.
func (m Message) Tag(key string) (string, bool) {
	return Get(m.Tags, key)
}
