package middleware

import (
	"context"
	"net/http"
	"strings"

	"bizbalance/internal/service"
)

type contextKey string

const (
	AgentIDKey contextKey = "agentId"
	VIPIDKey   contextKey = "vipId"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAgent validates an agent JWT from the Authorization header
func (m *AuthMiddleware) RequireAgent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateAgentToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AgentIDKey, claims.AgentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireVIP validates a VIP JWT from the Authorization header or query param
func (m *AuthMiddleware) RequireVIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// Try query param for WebSocket
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateVIPToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, VIPIDKey, claims.VIPID)
		ctx = context.WithValue(ctx, AgentIDKey, claims.AgentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAgentID extracts the agent id from context
func GetAgentID(ctx context.Context) string {
	if v := ctx.Value(AgentIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetVIPID extracts the VIP id from context
func GetVIPID(ctx context.Context) string {
	if v := ctx.Value(VIPIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
