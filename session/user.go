package session

import "github.com/aarondl/irccore/proto"

// User is a session-local view of a channel member: identity plus the set
// of access levels currently granted, generalized from the teacher's
// data/user.go + data/channeluser_meta.go pairing of a global User and a
// per-channel ChannelUser into one value scoped to a single channel
// membership, matching spec.md §3's "ordered set of access levels, cached
// highest level".
type User struct {
	Nick     string
	Username string
	Host     string

	levels  map[AccessLevel]bool
	highest AccessLevel
}

// NewUser constructs a User from a bare nickname.
func NewUser(nick string) *User {
	return &User{Nick: nick, levels: make(map[AccessLevel]bool)}
}

// NewUserFromPrefix constructs a User from a parsed message prefix.
func NewUserFromPrefix(p proto.Prefix) *User {
	return &User{Nick: p.Name, Username: p.User, Host: p.Host, levels: make(map[AccessLevel]bool)}
}

// GrantAccess adds level to the user's level set and updates the cached
// highest level if level is now the max.
func (u *User) GrantAccess(level AccessLevel) {
	if u.levels == nil {
		u.levels = make(map[AccessLevel]bool)
	}
	u.levels[level] = true
	if level > u.highest {
		u.highest = level
	}
}

// RevokeAccess removes level from the user's level set and recomputes the
// cached highest level from what remains — property 4 of spec.md §8
// ("highest_access_level equals the maximum of the current access-levels
// multiset").
func (u *User) RevokeAccess(level AccessLevel) {
	delete(u.levels, level)
	u.highest = LevelMember
	for l := range u.levels {
		if l > u.highest {
			u.highest = l
		}
	}
}

// HighestAccess returns the cached highest access level.
func (u *User) HighestAccess() AccessLevel {
	return u.highest
}

// ApplyNamePrefix grants access levels implied by NAMREPLY/WHOREPLY prefix
// symbols (e.g. "@" in "@nick"), granting one level per leading
// recognized symbol and stopping at the first unrecognized byte. It
// returns nothing; callers strip the symbols from the nickname themselves.
func ApplyNamePrefix(u *User, token string) {
	for len(token) > 0 {
		level, ok := prefixLevels[token[0]]
		if !ok {
			break
		}
		u.GrantAccess(level)
		token = token[1:]
	}
}

// ApplyChannelMode updates the user's access levels for a MODE(chan,
// modes) application affecting this user, per spec.md §4.5's "for each
// mode with a user argument, call user.update_access_level(mode)".
func (u *User) ApplyChannelMode(m proto.ChannelMode) {
	if m.IsUnknown {
		return
	}
	level, ok := modeKindLevels[byte(m.Kind)]
	if !ok {
		return
	}
	if m.Polarity == proto.Plus {
		u.GrantAccess(level)
	} else {
		u.RevokeAccess(level)
	}
}
