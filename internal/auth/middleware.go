package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tduyile04/document-management-api/internal/models"
)

const identityKey = "identity"

// Middleware authenticates the request from its token alone and stores the
// resulting identity claim in the request context. No server-side session
// state is consulted.
func Middleware(tokens *Tokens) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := tokenFromRequest(ctx)
		if raw == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"message": "No token provided",
			})
			ctx.Abort()
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"message": "Failed to authenticate token",
			})
			ctx.Abort()
			return
		}

		ctx.Set(identityKey, claims.Identity())
		ctx.Next()
	}
}

// tokenFromRequest accepts the Authorization header, with or without a
// Bearer prefix, or the legacy x-access-token header.
func tokenFromRequest(ctx *gin.Context) string {
	token := ctx.GetHeader("Authorization")
	if token == "" {
		token = ctx.GetHeader("x-access-token")
	}
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}

// CurrentIdentity returns the identity claim set by Middleware.
func CurrentIdentity(ctx *gin.Context) (models.Identity, bool) {
	value, ok := ctx.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}
