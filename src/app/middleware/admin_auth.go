package middleware

import (
	"github.com/gin-gonic/gin"

	"survivordraft/src/app/http/response"
	"survivordraft/src/core/usecase"
)

// AdminPasswordHeader carries the shared admin password on outcome-entry
// requests.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth enforces that the request carries the configured admin password.
func AdminAuth(auth *usecase.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		password := c.GetHeader(AdminPasswordHeader)
		if password == "" {
			response.Unauthorized(c, "missing "+AdminPasswordHeader+" header", requestID)
			c.Abort()
			return
		}

		if err := auth.Verify(password); err != nil {
			response.Unauthorized(c, err.Error(), requestID)
			c.Abort()
			return
		}

		c.Next()
	}
}
