package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pennyflow/pennyflow_backend/appctx"
	"github.com/pennyflow/pennyflow_backend/utils"
)

// AuthMiddleware validates the Bearer token and resolves the verified user
// id into the request context. Handlers never see the token, only the id.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		const bearer = "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		auth = auth[len(bearer):]

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		customClaim, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		userID, err := uuid.Parse(customClaim.UserId)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), appctx.ContextKeyUserId, userID.String())
		ctx = appctx.Set(ctx, appctx.ContextKeyToken, auth)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// UserIdFromContext returns the verified user id placed by AuthMiddleware.
func UserIdFromContext(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := appctx.GetString(ctx, appctx.ContextKeyUserId)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
