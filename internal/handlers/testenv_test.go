package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/aminebt/khadamat/internal/docstore"
	"github.com/aminebt/khadamat/internal/handlers"
	"github.com/aminebt/khadamat/internal/hash"
	authmw "github.com/aminebt/khadamat/internal/middleware/auth"
	"github.com/aminebt/khadamat/internal/models"
	"github.com/aminebt/khadamat/internal/notify"
	"github.com/aminebt/khadamat/internal/repo"
	"github.com/aminebt/khadamat/internal/repo/jsonrepo"
	"github.com/aminebt/khadamat/internal/session"
	httpserver "github.com/aminebt/khadamat/internal/transport/http"
)

type testEnv struct {
	t        *testing.T
	e        *echo.Echo
	store    *docstore.FileStore
	users    repo.Users
	app      repo.App
	sessions *session.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := docstore.NewFileStore(t.TempDir(), log)
	require.NoError(t, err)
	users := jsonrepo.NewUserRepo(store)
	app := jsonrepo.NewAppRepo(store)

	sessions := session.NewMemoryStore(time.Hour)
	t.Cleanup(sessions.Close)

	e := echo.New()
	gate := &authmw.Gate{Sessions: sessions}
	httpserver.Register(e, &httpserver.Deps{
		Gate: gate,
		AuthHandler: &handlers.AuthHandler{
			Users:      users,
			Sessions:   sessions,
			SessionTTL: time.Hour,
		},
		CatalogHandler: &handlers.CatalogHandler{App: app},
		RequestHandler: &handlers.RequestHandler{App: app, Notifier: notify.NewLogNotifier(log)},
		AdminHandler:   &handlers.AdminHandler{App: app},
		PublicDir:      t.TempDir(),
	})

	return &testEnv{t: t, e: e, store: store, users: users, app: app, sessions: sessions}
}

func (env *testEnv) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder, v any) {
	env.t.Helper()
	require.NoError(env.t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (env *testEnv) seedUser(username, password, role string) {
	env.t.Helper()
	pwHash, err := hash.HashPassword(password)
	require.NoError(env.t, err)
	require.NoError(env.t, env.users.Create(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: pwHash,
		Role:         role,
	}))
}

// login authenticates through the API and returns the session cookie.
func (env *testEnv) login(username, password string) (*http.Cookie, map[string]any) {
	env.t.Helper()
	rec := env.do(http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(env.t, http.StatusOK, rec.Code)

	var resp map[string]any
	env.decode(rec, &resp)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == authmw.CookieName {
			return ck, resp
		}
	}
	env.t.Fatal("login response carries no session cookie")
	return nil, nil
}
