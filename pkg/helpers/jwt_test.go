package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte("super-secret")}

	tok, err := m.Generate(42, "store_owner")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Role != "store_owner" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "store_owner")
	}
}

func TestParse_NoTTLTokenHasNoExpiry(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte("k")}
	tok, err := m.Generate(1, "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry claim, got %v", claims.ExpiresAt)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte("k"), TTL: -1 * time.Second}
	tok, err := m.Generate(1, "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte("right-secret")}
	tok, err := m.Generate(7, "admin")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	other := &TokenManager{Secret: []byte("wrong-secret")}
	if _, err := other.Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_TamperedPayload(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte("k")}
	tok, err := m.Generate(7, "user")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Flip a character in the payload segment; the signature must no longer
	// verify and no partial identity may come back.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := m.Parse(tampered)
	if err == nil {
		t.Fatalf("expected error for tampered token, got claims %+v", claims)
	}
	if claims != nil {
		t.Fatalf("expected nil claims on failure, got %+v", claims)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte("k")}
	if _, err := m.Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
