package cryptoadapter

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	first, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if !hasher.Verify("s3cret", first) || !hasher.Verify("s3cret", second) {
		t.Fatalf("expected both hashes to verify")
	}
	if hasher.Verify("wrong", first) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestBcryptHasherRejectsMalformedHash(t *testing.T) {
	hasher := BcryptHasher{Cost: bcrypt.MinCost}
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$04$short"} {
		if hasher.Verify("s3cret", hash) {
			t.Fatalf("expected verify to fail for %q", hash)
		}
	}
}
