package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"stockroom-api/internal/cache"
	"stockroom-api/internal/model"
)

const (
	// TokenPrefix is the prefix for all session tokens
	TokenPrefix = "inv_"

	// TokenTTL is the default token lifetime (1 hour)
	TokenTTL = 1 * time.Hour

	// tokenKeyPrefix is the cache key prefix for tokens
	tokenKeyPrefix = "stockroom:token:"
)

// TokenService handles session token generation and validation.
// Tokens are opaque strings whose data lives in the cache.
type TokenService struct {
	store cache.Cache
}

// NewTokenService creates a new token service.
func NewTokenService(store cache.Cache) *TokenService {
	if store == nil {
		return nil
	}
	return &TokenService{store: store}
}

// GenerateToken creates a new session token and stores it in the cache.
func (s *TokenService) GenerateToken(ctx context.Context, data model.TokenData) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	token := TokenPrefix + hex.EncodeToString(tokenBytes)

	data.CreatedAt = time.Now()
	data.ExpiresAt = data.CreatedAt.Add(TokenTTL)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize token data: %w", err)
	}

	if err := s.store.Set(ctx, tokenKeyPrefix+token, jsonData, TokenTTL); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	log.Printf("[TokenService] Generated token for key %q, expires=%v", data.KeyLabel, data.ExpiresAt)
	return token, nil
}

// ValidateToken checks if a token is valid and returns its data.
func (s *TokenService) ValidateToken(ctx context.Context, token string) (*model.TokenData, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	if len(token) < len(TokenPrefix) || token[:len(TokenPrefix)] != TokenPrefix {
		return nil, fmt.Errorf("invalid token format")
	}

	key := tokenKeyPrefix + token
	jsonData, err := s.store.Get(ctx, key)
	if err == cache.ErrCacheMiss {
		return nil, fmt.Errorf("token not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	var data model.TokenData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to parse token data: %w", err)
	}

	if time.Now().After(data.ExpiresAt) {
		s.store.Delete(ctx, key)
		return nil, fmt.Errorf("token expired")
	}

	return &data, nil
}

// RevokeToken deletes a token from the cache.
func (s *TokenService) RevokeToken(ctx context.Context, token string) error {
	return s.store.Delete(ctx, tokenKeyPrefix+token)
}

// RefreshToken extends the TTL of an existing token.
func (s *TokenService) RefreshToken(ctx context.Context, token string) error {
	key := tokenKeyPrefix + token

	jsonData, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("token not found: %w", err)
	}

	var data model.TokenData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return err
	}

	data.ExpiresAt = time.Now().Add(TokenTTL)

	newJSON, _ := json.Marshal(data)
	return s.store.Set(ctx, key, newJSON, TokenTTL)
}
