package middleware

import (
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	signed, err := SignSession(testSecret, "sid-42", time.Hour)
	if err != nil {
		t.Fatalf("SignSession: %v", err)
	}

	sid, err := ParseSession(testSecret, signed)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}
	if sid != "sid-42" {
		t.Errorf("session id = %q, want sid-42", sid)
	}
}

func TestParseSessionWrongSecret(t *testing.T) {
	signed, err := SignSession(testSecret, "sid-42", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseSession("another-secret", signed); err == nil {
		t.Error("expected verification failure with the wrong secret")
	}
}

func TestParseSessionExpired(t *testing.T) {
	signed, err := SignSession(testSecret, "sid-42", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseSession(testSecret, signed); err == nil {
		t.Error("expected an expired-token error")
	}
}

func TestParseSessionGarbage(t *testing.T) {
	if _, err := ParseSession(testSecret, "not.a.jwt"); err == nil {
		t.Error("expected a parse error for garbage input")
	}
}
