package middleware

import (
	"context"
	"net/http"
	"strings"

	"stockroom-api/internal/model"
	"stockroom-api/internal/repository"
	"stockroom-api/internal/service"
	"stockroom-api/pkg/apierror"
)

// TokenDataKey is the context key for validated token data.
const TokenDataKey contextKey = "token_data"

// AuthConfig holds the dependencies of the authentication gate.
type AuthConfig struct {
	// TokenService validates opaque session tokens.
	TokenService *service.TokenService

	// Keys are static access keys accepted as raw bearer credentials.
	Keys []string

	// KeyRepo is the optional MySQL-backed access-key store.
	KeyRepo repository.AccessKeyRepository
}

// NewAuthMiddleware creates the authentication gate. A rejected request is
// answered with 401 and never reaches the handler behind the gate.
func NewAuthMiddleware(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := BearerCredential(r)
			if credential == "" {
				writeError(w, apierror.Unauthorized("Authentication required"))
				return
			}

			// Session tokens carry the token prefix.
			if strings.HasPrefix(credential, service.TokenPrefix) {
				if cfg.TokenService == nil {
					writeError(w, apierror.Unauthorized("Invalid or expired token"))
					return
				}
				tokenData, err := cfg.TokenService.ValidateToken(r.Context(), credential)
				if err != nil {
					writeError(w, apierror.Unauthorized("Invalid or expired token"))
					return
				}

				ctx := context.WithValue(r.Context(), TokenDataKey, tokenData)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// Fall back to raw access keys.
			if key := lookupKey(r.Context(), cfg, credential); key != nil {
				next.ServeHTTP(w, r)
				return
			}

			writeError(w, apierror.Unauthorized("Invalid access key"))
		})
	}
}

// BearerCredential extracts the credential from the Authorization header,
// with X-Token accepted as an alternative.
func BearerCredential(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.Header.Get("X-Token")
}

// lookupKey resolves an access key against the static list, then the
// optional key store. Returns nil when the key is unknown.
func lookupKey(ctx context.Context, cfg AuthConfig, credential string) *model.AccessKey {
	for _, valid := range cfg.Keys {
		if credential == valid {
			return &model.AccessKey{Key: credential, Label: "static"}
		}
	}

	if cfg.KeyRepo != nil {
		if key, err := cfg.KeyRepo.ValidateKey(ctx, credential); err == nil {
			return key
		}
	}

	return nil
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}

// GetTokenDataFromContext retrieves token data from request context.
func GetTokenDataFromContext(ctx context.Context) *model.TokenData {
	if data, ok := ctx.Value(TokenDataKey).(*model.TokenData); ok {
		return data
	}
	return nil
}
