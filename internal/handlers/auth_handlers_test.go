package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aminebt/khadamat/internal/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"username": "alice", "email": "alice@example.com", "password": "password"}
	rec := env.do(http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	env.decode(rec, &resp)
	require.Equal(t, true, resp["success"])

	user, err := env.users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEqual(t, "password", user.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{"username": "alice", "password": "password"}
	rec := env.do(http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	env.decode(rec, &resp)
	require.Equal(t, false, resp["success"])

	var doc models.UsersDocument
	require.NoError(t, env.store.View("users", &doc))
	require.Len(t, doc.Users, 1, "conflicting register must not grow the collection")
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/register", map[string]string{"username": "alice"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("alice", "password", models.RoleUser)

	ck, resp := env.login("alice", "password")
	require.Equal(t, true, resp["success"])
	require.Equal(t, false, resp["isAdmin"])
	require.True(t, ck.HttpOnly)

	sess, err := env.sessions.Get(context.Background(), ck.Value)
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)
	require.Equal(t, models.RoleUser, sess.Role)
}

func TestLoginAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("root", "secret", models.RoleAdmin)

	_, resp := env.login("root", "secret")
	require.Equal(t, true, resp["isAdmin"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("alice", "password", models.RoleUser)

	wrongPassword := env.do(http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "nope"})
	unknownUser := env.do(http.MethodPost, "/api/login", map[string]string{"username": "bob", "password": "whatever"})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("alice", "password", models.RoleUser)
	ck, _ := env.login("alice", "password")

	rec := env.do(http.MethodPost, "/api/logout", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	// the server-side session is gone, the old token no longer works
	rec = env.do(http.MethodPost, "/api/request", map[string]any{"service": "Likes", "link": "l", "quantity": 1}, ck)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
