package utils

import "testing"

func TestHashPassword_ProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == "" || second == "" {
		t.Fatal("expected non-empty hashes")
	}
	// bcrypt salts every hash, so equal inputs must not collide.
	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestCheckPassword_Match(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := CheckPassword("s3cret", hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected password to match its own hash")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := CheckPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("expected clean mismatch, got error: %v", err)
	}
	if ok {
		t.Error("expected mismatch, got match")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("s3cret", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("expected error for malformed hash, got nil")
	}
	if ok {
		t.Error("expected ok=false for malformed hash")
	}
}
