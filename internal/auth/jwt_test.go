package auth_test

import (
	"testing"
	"time"

	"github.com/geocoder89/campushub/internal/auth"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret-key", time.Hour)

	token, err := m.GenerateAccessToken("64f1c0a2b3d4e5f60718293a", "a@b.com")

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)

	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if claims.UserID != "64f1c0a2b3d4e5f60718293a" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}

	if claims.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}

	if claims.ExpiresAt == nil {
		t.Fatal("expected an expiry")
	}

	ttl := time.Until(claims.ExpiresAt.Time)

	if ttl < 59*time.Minute || ttl > time.Hour {
		t.Fatalf("expiry not ~1h out: %v", ttl)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	// negative TTL puts exp in the past at issuance
	m := auth.NewManager("test-secret-key", -time.Minute)

	token, err := m.GenerateAccessToken("64f1c0a2b3d4e5f60718293a", "a@b.com")

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := m.VerifyAccessToken(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	m := auth.NewManager("test-secret-key", time.Hour)
	other := auth.NewManager("a-different-secret", time.Hour)

	token, err := m.GenerateAccessToken("64f1c0a2b3d4e5f60718293a", "a@b.com")

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := other.VerifyAccessToken(token); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := auth.NewManager("test-secret-key", time.Hour)

	if _, err := m.VerifyAccessToken("not.a.jwt"); err == nil {
		t.Fatal("expected malformed token to fail")
	}
}
