package middleware

import (
	"strings"

	"shopapi/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// RequireRole は AuthJWT の後ろに置く。
// roleが無い/違う場合はどちらも401。
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := UserRole(c)
			if !ok {
				return unauthorized(c)
			}
			for _, r := range roles {
				if strings.EqualFold(role, string(r)) {
					return next(c)
				}
			}
			return unauthorized(c)
		}
	}
}

// Adminだけ許可
func AdminRoleGuard() echo.MiddlewareFunc {
	return RequireRole(model.RoleAdmin)
}
