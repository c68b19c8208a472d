package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aminebt/khadamat/internal/hash"
	"github.com/aminebt/khadamat/internal/logging"
	authmw "github.com/aminebt/khadamat/internal/middleware/auth"
	"github.com/aminebt/khadamat/internal/models"
	"github.com/aminebt/khadamat/internal/repo"
	"github.com/aminebt/khadamat/internal/session"
)

// loginFailed is returned for both unknown-username and bad-password so
// the response does not leak which usernames exist.
const loginFailed = "invalid username or password"

type AuthHandler struct {
	Users        repo.Users
	Sessions     session.Store
	SessionTTL   time.Duration
	CookieSecure bool
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Username string
		Email    string
		Password string
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "username and password are required")
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	}
	if err := h.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			l.Warn("register_conflict", "username", req.Username)
			return fail(c, http.StatusConflict, "username already exists")
		}
		l.Error("register_error", "error", err)
		return storageFail(c, err)
	}

	l.Info("user_registered", "username", req.Username)
	return ok(c)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Username string
		Password string
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	user, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "username", req.Username)
			return fail(c, http.StatusUnauthorized, loginFailed)
		}
		l.Error("login_error", "error", err)
		return storageFail(c, err)
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "username", req.Username)
		return fail(c, http.StatusUnauthorized, loginFailed)
	}

	token, err := h.Sessions.Create(ctx, session.Session{
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		l.Error("login_error", "reason", "cannot create session", "error", err)
		return fail(c, http.StatusInternalServerError, "internal error")
	}

	c.SetCookie(CreateCookie(authmw.CookieName, token, "/", h.SessionTTL, h.CookieSecure))
	l.Info("login_successful", "username", user.Username)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"isAdmin": user.Role == models.RoleAdmin,
	})
}

func (h *AuthHandler) LogOut(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_logout")

	if ck, err := c.Cookie(authmw.CookieName); err == nil && ck.Value != "" {
		if err := h.Sessions.Delete(ctx, ck.Value); err != nil {
			l.Error("logout_error", "reason", "cannot delete session", "error", err)
		}
	}
	c.SetCookie(DeleteCookie(authmw.CookieName, "/"))

	l.Info("logout_successful")
	return ok(c)
}
