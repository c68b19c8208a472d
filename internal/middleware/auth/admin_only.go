package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (g *Gate) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := g.sessionFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   "authentication required",
			})
		}
		if !sess.IsAdmin() {
			return c.JSON(http.StatusForbidden, echo.Map{
				"success": false,
				"error":   "admin access required",
			})
		}
		setUserContext(c, sess)
		return next(c)
	}
}

func (g *Gate) AdminOnlyPage(target string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := g.sessionFrom(c)
			if !ok || !sess.IsAdmin() {
				return c.Redirect(http.StatusFound, target)
			}
			setUserContext(c, sess)
			return next(c)
		}
	}
}
