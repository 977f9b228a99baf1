package session

import (
	"testing"

	"github.com/aarondl/irccore/proto"
)

func TestUserGrantAndRevokeUpdatesHighest(t *testing.T) {
	u := NewUser("nick")
	u.GrantAccess(LevelVoice)
	if u.HighestAccess() != LevelVoice {
		t.Fatalf("expected LevelVoice, got %v", u.HighestAccess())
	}
	u.GrantAccess(LevelOper)
	if u.HighestAccess() != LevelOper {
		t.Fatalf("expected LevelOper, got %v", u.HighestAccess())
	}
	u.RevokeAccess(LevelOper)
	if u.HighestAccess() != LevelVoice {
		t.Fatalf("expected highest to fall back to LevelVoice, got %v", u.HighestAccess())
	}
	u.RevokeAccess(LevelVoice)
	if u.HighestAccess() != LevelMember {
		t.Fatalf("expected LevelMember once all levels are revoked, got %v", u.HighestAccess())
	}
}

func TestApplyNamePrefixConsumesRecognizedSymbols(t *testing.T) {
	u := NewUser("")
	ApplyNamePrefix(u, "@+nick")
	if u.HighestAccess() != LevelOper {
		t.Fatalf("expected @ to grant LevelOper, got %v", u.HighestAccess())
	}
}

func TestApplyChannelModeGrantsAndRevokes(t *testing.T) {
	u := NewUser("nick")
	u.ApplyChannelMode(proto.ChannelMode{Polarity: proto.Plus, Kind: proto.ChannelModeOper, HasArg: true, Arg: "nick"})
	if u.HighestAccess() != LevelOper {
		t.Fatalf("expected LevelOper, got %v", u.HighestAccess())
	}
	u.ApplyChannelMode(proto.ChannelMode{Polarity: proto.Minus, Kind: proto.ChannelModeOper, HasArg: true, Arg: "nick"})
	if u.HighestAccess() != LevelMember {
		t.Fatalf("expected LevelMember after -o, got %v", u.HighestAccess())
	}
}

func TestApplyChannelModeIgnoresUnknown(t *testing.T) {
	u := NewUser("nick")
	u.ApplyChannelMode(proto.ChannelMode{IsUnknown: true, Unknown: 'z'})
	if u.HighestAccess() != LevelMember {
		t.Fatalf("expected unknown modes to be ignored, got %v", u.HighestAccess())
	}
}
