package session

import "testing"

func TestChannelAddAndLookupCaseInsensitive(t *testing.T) {
	ch := NewChannel("#chan")
	ch.AddUser(NewUser("Alice"))
	if ch.User("alice") == nil {
		t.Fatal("expected case-insensitive lookup to find Alice")
	}
}

func TestChannelAddIsIdempotent(t *testing.T) {
	ch := NewChannel("#chan")
	ch.AddUser(NewUser("Alice"))
	ch.AddUser(NewUser("Alice"))
	if len(ch.Users()) != 1 {
		t.Fatalf("expected a single Alice entry, got %d", len(ch.Users()))
	}
}

func TestChannelPreservesObservedOrder(t *testing.T) {
	ch := NewChannel("#chan")
	ch.AddUser(NewUser("Carol"))
	ch.AddUser(NewUser("Alice"))
	ch.AddUser(NewUser("Bob"))

	users := ch.Users()
	want := []string{"Carol", "Alice", "Bob"}
	for i, w := range want {
		if users[i].Nick != w {
			t.Errorf("position %d: expected %q, got %q", i, w, users[i].Nick)
		}
	}
}

func TestChannelRemoveUserReindexes(t *testing.T) {
	ch := NewChannel("#chan")
	ch.AddUser(NewUser("Alice"))
	ch.AddUser(NewUser("Bob"))
	ch.AddUser(NewUser("Carol"))

	ch.RemoveUser("Bob")
	if ch.User("Bob") != nil {
		t.Error("expected Bob to be removed")
	}
	if ch.User("Carol") == nil {
		t.Error("expected Carol to still be findable after reindexing")
	}
	if len(ch.Users()) != 2 {
		t.Fatalf("expected 2 remaining users, got %d", len(ch.Users()))
	}
}

func TestChannelRenameUser(t *testing.T) {
	ch := NewChannel("#chan")
	ch.AddUser(NewUser("Alice"))
	ch.RenameUser("Alice", "AliceNew")

	if ch.User("Alice") != nil {
		t.Error("expected old nick to no longer resolve")
	}
	u := ch.User("AliceNew")
	if u == nil || u.Nick != "AliceNew" {
		t.Fatal("expected new nick to resolve to the renamed user")
	}
}
