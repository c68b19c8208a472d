package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/session"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session"

// Gate checks the caller's session against the session store. Pages get
// redirects, APIs get JSON errors.
type Gate struct {
	Sessions session.Store
}

func (g *Gate) sessionFrom(c echo.Context) (session.Session, bool) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return session.Session{}, false
	}
	sess, err := g.Sessions.Get(c.Request().Context(), ck.Value)
	if err != nil {
		return session.Session{}, false
	}
	return sess, true
}

func setUserContext(c echo.Context, sess session.Session) {
	c.Set("username", sess.Username)
	c.Set("role", sess.Role)
}

// Username returns the session username a gate middleware stored on the
// context, or "" on an ungated route.
func Username(c echo.Context) string {
	if v, ok := c.Get("username").(string); ok {
		return v
	}
	return ""
}
