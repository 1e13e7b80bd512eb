package helpers

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatalf("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "S3cret!pass") {
		t.Fatalf("expected hash to verify against original password")
	}
	if CompareHashAndPassword(hash, "other-password") {
		t.Fatalf("expected mismatch for wrong password")
	}
}
