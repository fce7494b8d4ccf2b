package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewHMACStrategyDefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.ttl != 12*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}

	custom := NewHMACStrategy("secret", Options{TTL: time.Hour})
	if custom.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", custom.ttl)
	}
}

func TestHMACStrategyIssueAndVerify(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if err := strategy.Verify(token); err != nil {
		t.Fatalf("verify token: %v", err)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	cases := []string{
		"not-base64!!",
		base64.StdEncoding.EncodeToString([]byte("no-separator")),
		base64.StdEncoding.EncodeToString([]byte("123:bad-signature")),
	}
	for _, token := range cases {
		if err := strategy.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyRejectsExpired(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	token, err := strategy.Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if err := strategy.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestHMACStrategyRejectsForeignSecret(t *testing.T) {
	issuer := NewHMACStrategy("secret-a", Options{TTL: time.Minute})
	verifier := NewHMACStrategy("secret-b", Options{TTL: time.Minute})

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken across secrets, got %v", err)
	}
}

func TestHMACStrategyRejectsTamperedPayload(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.Issue()
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	_, sig, _ := strings.Cut(string(raw), ":")
	forged := base64.StdEncoding.EncodeToString([]byte("9999999999:" + sig))
	if err := strategy.Verify(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}
}
