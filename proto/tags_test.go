package proto

import "testing"

func TestParseTagsKeyValueAndBare(t *testing.T) {
	tags := parseTags("time=2020-01-01;account;msgid=abc123")
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d: %+v", len(tags), tags)
	}
	if tags[0].Key != "time" || tags[0].Value != "2020-01-01" || !tags[0].HasValue {
		t.Errorf("unexpected tag 0: %+v", tags[0])
	}
	if tags[1].Key != "account" || tags[1].HasValue {
		t.Errorf("unexpected tag 1: %+v", tags[1])
	}
}

func TestParseTagsEmptySegmentsIgnored(t *testing.T) {
	tags := parseTags(";;a=1;;")
	if len(tags) != 1 || tags[0].Key != "a" {
		t.Errorf("expected only a=1 to survive, got %+v", tags)
	}
}

func TestGetTag(t *testing.T) {
	tags := []Tag{{Key: "a", Value: "1", HasValue: true}, {Key: "b"}}
	if v, ok := Get(tags, "a"); !ok || v != "1" {
		t.Errorf("expected a=1, got %q %v", v, ok)
	}
	if _, ok := Get(tags, "missing"); ok {
		t.Error("expected missing key to be absent")
	}
}
