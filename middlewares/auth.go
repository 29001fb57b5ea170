package middlewares

import (
	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

// AuthMiddleware resolves the session cookie and (if given) enforces a
// role. On success the user id, role and restaurant id are available via
// the utils context helpers.
func AuthMiddleware(auth *services.AuthService, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			resp.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		user, err := auth.ResolveSession(token)
		if err != nil {
			resp.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", user.Role)
		if user.RestaurantID != nil {
			c.Set("restaurantId", *user.RestaurantID)
		}

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
