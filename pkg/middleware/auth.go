package middleware

import (
	"net/http"
	"strings"

	"gympoint/internal/models/db_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const authContextKey = "auth_user"

// JWTAuthMiddleware validates the bearer token and resolves the caller into
// an explicit user (with role sub-identities) stored on the request context.
// Roles are read from the database per request so a role change takes effect
// immediately, not at the next token refresh.
func JWTAuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Logged in user does not exist. Please, login again.")
			c.Abort()
			return
		}

		c.Set(authContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (*db_models.User, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*db_models.User)
	return user, ok
}

func requireRole(check func(*db_models.User) bool, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Not logged in.")
			c.Abort()
			return
		}
		if !check(user) {
			utils.RespondError(c, http.StatusForbidden, "Not enough privileges. User is not "+role+".")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole((*db_models.User).IsAdmin, "an admin")
}

func RequireInstructor() gin.HandlerFunc {
	return requireRole((*db_models.User).IsInstructor, "an instructor")
}

func RequireClient() gin.HandlerFunc {
	return requireRole((*db_models.User).IsClient, "a client")
}
