package service

import (
	"context"
	"strings"
	"testing"

	"stockroom-api/internal/cache"
	"stockroom-api/internal/model"
)

func newTokenService(t *testing.T) *TokenService {
	t.Helper()

	store := cache.NewMemoryCache()
	t.Cleanup(func() { store.Close() })

	return NewTokenService(store)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, model.TokenData{KeyLabel: "ci"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if !strings.HasPrefix(token, TokenPrefix) {
		t.Errorf("token %q missing %q prefix", token, TokenPrefix)
	}
	// inv_ plus 32 random bytes hex-encoded.
	if len(token) != len(TokenPrefix)+64 {
		t.Errorf("unexpected token length %d", len(token))
	}

	data, err := svc.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if data.KeyLabel != "ci" {
		t.Errorf("expected key label 'ci', got %q", data.KeyLabel)
	}
	if !data.ExpiresAt.After(data.CreatedAt) {
		t.Errorf("expiry %v not after creation %v", data.ExpiresAt, data.CreatedAt)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	cases := []string{
		"",
		"inv",
		"not-a-token",
		TokenPrefix + "deadbeef", // well-formed prefix, never issued
	}
	for _, token := range cases {
		if _, err := svc.ValidateToken(ctx, token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}

func TestRevokeToken(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, model.TokenData{KeyLabel: "ops"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if err := svc.RevokeToken(ctx, token); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	if _, err := svc.ValidateToken(ctx, token); err == nil {
		t.Error("expected validation to fail after revoke")
	}
}

func TestTokensAreUnique(t *testing.T) {
	svc := newTokenService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := svc.GenerateToken(ctx, model.TokenData{KeyLabel: "loop"})
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued: %q", token)
		}
		seen[token] = true
	}
}
