package auth

import (
	"errors"
	"strings"
	"testing"

	"taskboard/internal/domain"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	// Cost 4 keeps tests fast.
	hasher := NewPasswordHasher(4)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "" || hash == "password123" {
		t.Fatalf("expected opaque hash, got %q", hash)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !hasher.Compare("password123", hash) {
		t.Fatal("expected correct password to match")
	}
	if hasher.Compare("wrong-password", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("expected two hashes of the same password to differ")
	}
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	hasher := NewPasswordHasher(4)

	_, err := hasher.Hash("")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)
	if hasher.cost != DefaultBcryptCost {
		t.Fatalf("expected cost %d, got %d", DefaultBcryptCost, hasher.cost)
	}
}
