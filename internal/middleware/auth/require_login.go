package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (g *Gate) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := g.sessionFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"success": false,
				"error":   "authentication required",
			})
		}
		setUserContext(c, sess)
		return next(c)
	}
}

// RequireLoginPage gates an HTML route: browsers get a redirect instead
// of a JSON error.
func (g *Gate) RequireLoginPage(target string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := g.sessionFrom(c)
			if !ok {
				return c.Redirect(http.StatusFound, target)
			}
			setUserContext(c, sess)
			return next(c)
		}
	}
}
