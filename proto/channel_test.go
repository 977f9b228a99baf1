package proto

import "testing"

func TestIsChannelName(t *testing.T) {
	for _, name := range []string{"#chan", "&local", "+modeless", "!safe123"} {
		if !IsChannelName(name) {
			t.Errorf("expected %q to be a channel name", name)
		}
	}
	for _, name := range []string{"nick", "", "123"} {
		if IsChannelName(name) {
			t.Errorf("expected %q to not be a channel name", name)
		}
	}
}
