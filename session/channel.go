package session

import "strings"

// Channel is a session-local view of a joined channel: its users in
// observed order (NAMREPLY/JOIN arrival order, not sorted), generalized
// from the teacher's data/state.go channelUsers map-of-maps into an
// ordered structure so the property 7 NAMREPLY test (spec.md §8 S7)
// observes users in the order the server listed them.
type Channel struct {
	Name  string
	Topic string

	users []*User
	index map[string]int // lowercased nick -> position in users
}

// NewChannel constructs an empty Channel.
func NewChannel(name string) *Channel {
	return &Channel{Name: name, index: make(map[string]int)}
}

// User looks up a member by nickname, case-insensitively.
func (c *Channel) User(nick string) *User {
	if i, ok := c.index[strings.ToLower(nick)]; ok {
		return c.users[i]
	}
	return nil
}

// Users returns the channel's members in observed order. The returned
// slice is owned by the caller.
func (c *Channel) Users() []*User {
	out := make([]*User, len(c.users))
	copy(out, c.users)
	return out
}

// AddUser appends u to the channel if it is not already present,
// returning the (possibly pre-existing) User for the nick.
func (c *Channel) AddUser(u *User) *User {
	key := strings.ToLower(u.Nick)
	if i, ok := c.index[key]; ok {
		return c.users[i]
	}
	c.index[key] = len(c.users)
	c.users = append(c.users, u)
	return u
}

// RemoveUser deletes a member by nickname, case-insensitively.
func (c *Channel) RemoveUser(nick string) {
	key := strings.ToLower(nick)
	i, ok := c.index[key]
	if !ok {
		return
	}
	c.users = append(c.users[:i], c.users[i+1:]...)
	delete(c.index, key)
	for k, v := range c.index {
		if v > i {
			c.index[k] = v - 1
		}
	}
}

// RenameUser moves a member from oldNick to newNick, preserving its User
// value (and access levels) in place.
func (c *Channel) RenameUser(oldNick, newNick string) {
	oldKey, newKey := strings.ToLower(oldNick), strings.ToLower(newNick)
	i, ok := c.index[oldKey]
	if !ok {
		return
	}
	c.users[i].Nick = newNick
	delete(c.index, oldKey)
	c.index[newKey] = i
}
