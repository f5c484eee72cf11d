package handler

import (
	"encoding/json"
	"net/http"

	"stockroom-api/internal/middleware"
	"stockroom-api/internal/model"
	"stockroom-api/internal/repository"
	"stockroom-api/internal/service"
	"stockroom-api/pkg/apierror"
	"stockroom-api/pkg/response"
)

// AuthHandler exchanges access keys for session tokens.
type AuthHandler struct {
	tokenService *service.TokenService
	keys         []string
	keyRepo      repository.AccessKeyRepository
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokenService *service.TokenService, keys []string, keyRepo repository.AccessKeyRepository) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		keys:         keys,
		keyRepo:      keyRepo,
	}
}

// TokenRequest represents the request body for token generation.
type TokenRequest struct {
	Key string `json:"key"`
}

// TokenResponse represents the response for token generation.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// GenerateToken handles POST /api/auth/token
func (h *AuthHandler) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.Key == "" {
		response.Error(w, apierror.BadRequest("key is required"))
		return
	}

	label := h.resolveKey(r, req.Key)
	if label == "" {
		response.Error(w, apierror.Unauthorized("Invalid access key"))
		return
	}

	token, err := h.tokenService.GenerateToken(r.Context(), model.TokenData{KeyLabel: label})
	if err != nil {
		response.Error(w, apierror.ServerError("failed to generate token"))
		return
	}

	response.OK(w, TokenResponse{
		Token:     token,
		ExpiresIn: int(service.TokenTTL.Seconds()),
	})
}

// RevokeToken handles POST /api/auth/revoke
func (h *AuthHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerCredential(r)
	if token == "" {
		response.Error(w, apierror.BadRequest("bearer token required"))
		return
	}

	if err := h.tokenService.RevokeToken(r.Context(), token); err != nil {
		response.Error(w, apierror.ServerError("failed to revoke token"))
		return
	}

	response.Message(w, "Token revoked")
}

// resolveKey checks the static key list, then the optional key store.
// Returns the key label, or "" when the key is unknown.
func (h *AuthHandler) resolveKey(r *http.Request, key string) string {
	for _, valid := range h.keys {
		if key == valid {
			return "static"
		}
	}

	if h.keyRepo != nil {
		if record, err := h.keyRepo.ValidateKey(r.Context(), key); err == nil {
			return record.Label
		}
	}

	return ""
}
