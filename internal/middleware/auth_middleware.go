package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Darshan-Yash/Periodic-table/internal/services"
	"github.com/Darshan-Yash/Periodic-table/internal/transport/httpdto"
	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and puts the subject email on
// the request context for downstream handlers.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		subject, err := service.VerifyToken(token)
		if err != nil {
			detail := "Invalid token"
			if errors.Is(err, ptable_errors.ErrTokenExpired) {
				detail = "Token has expired"
			}
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(detail))
			c.Abort()
			return
		}

		ctx := services.WithSubject(c.Request.Context(), subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
