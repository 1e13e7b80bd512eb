package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/store-rating-api/pkg/helpers"
	"github.com/ratehub/store-rating-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth is the authentication gate for every route mounted behind it. It
// extracts the bearer token, verifies it, and attaches the asserted
// {user id, role} to the context. Missing, malformed, and tampered tokens
// all collapse into the same 401 before any handler logic runs.
//
// The gate enforces authentication only; role checks are a per-handler
// concern.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortMessage(c, http.StatusUnauthorized, "missing authorization token")
			return
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			response.AbortMessage(c, http.StatusUnauthorized, "invalid authorization token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// UserRole returns the authenticated role set by Auth.
func UserRole(c *gin.Context) string {
	return c.GetString(CtxUserRoleKey)
}
