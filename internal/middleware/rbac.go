package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/response"
)

// RequireRole checks that the authenticated user holds the given role.
// Must run after RequireAuth.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if claims.Role != role {
			code := response.ErrForbidden
			switch role {
			case model.RoleTeacher:
				code = response.ErrTeacherAccessOnly
			case model.RoleStudent:
				code = response.ErrStudentAccessOnly
			}
			response.AbortFail(c, http.StatusForbidden, code)
			return
		}

		c.Next()
	}
}
