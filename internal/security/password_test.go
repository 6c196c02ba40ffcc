package security_test

import (
	"testing"

	"github.com/geocoder89/campushub/internal/security"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := security.HashPassword("pw")

	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if hash == "pw" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := security.CheckPassword(hash, "pw"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}

	if err := security.CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
