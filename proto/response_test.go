package proto

import "testing"

func TestParseResponse(t *testing.T) {
	r, ok := ParseResponse("001")
	if !ok || r != RPL_WELCOME {
		t.Errorf("expected RPL_WELCOME, got %v %v", r, ok)
	}
	if _, ok := ParseResponse("PING"); ok {
		t.Error("expected a non-numeric token to fail")
	}
	if _, ok := ParseResponse("1"); ok {
		t.Error("expected a short numeric token to fail")
	}
}

func TestResponseIsError(t *testing.T) {
	if RPL_WELCOME.IsError() {
		t.Error("001 should not be an error")
	}
	if !Response(433).IsError() {
		t.Error("433 (ERR_NICKNAMEINUSE) should be an error")
	}
}

func TestResponseCode3Padding(t *testing.T) {
	if got := RPL_WELCOME.code3(); got != "001" {
		t.Errorf("expected 001, got %q", got)
	}
}
