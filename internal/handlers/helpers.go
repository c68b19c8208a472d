package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/docstore"
)

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"success": false, "error": msg})
}

// storageFail maps a repository error to the handler boundary: an
// unreadable document is reported as unavailable, not as an empty one.
func storageFail(c echo.Context, err error) error {
	if errors.Is(err, docstore.ErrUnavailable) {
		return fail(c, http.StatusServiceUnavailable, "storage unavailable")
	}
	return fail(c, http.StatusInternalServerError, "internal error")
}

func CreateCookie(name, value, path string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func DeleteCookie(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
