package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

type fakeAuth struct {
	user *models.User
	sid  uuid.UUID
	err  error
	got  string
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*models.User, uuid.UUID, error) {
	f.got = token
	return f.user, f.sid, f.err
}

// whoami отвечает id пользователя из контекста или "anon"
func whoami() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok {
			_, _ = w.Write([]byte("anon"))
			return
		}
		_, _ = w.Write([]byte(u.Name))
	})
}

func TestSessions_Load_OK(t *testing.T) {
	sid := uuid.New()
	auth := &fakeAuth{user: &models.User{ID: 3, Name: "Ridley"}, sid: sid}
	s := &Sessions{Auth: auth, CookieName: "session"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	rr := httptest.NewRecorder()

	s.Load()(whoami()).ServeHTTP(rr, req)

	require.Equal(t, "Ridley", rr.Body.String())
	require.Equal(t, "tok", auth.got)
}

func TestSessions_Load_NoCookie(t *testing.T) {
	auth := &fakeAuth{}
	s := &Sessions{Auth: auth, CookieName: "session"}

	rr := httptest.NewRecorder()
	s.Load()(whoami()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "anon", rr.Body.String())
	require.Empty(t, auth.got)
}

// Отозванная сессия: cookie стирается, запрос анонимный
func TestSessions_Load_Unauthorized(t *testing.T) {
	s := &Sessions{Auth: &fakeAuth{err: serr.ErrUnauthorized}, CookieName: "session"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	rr := httptest.NewRecorder()

	s.Load()(whoami()).ServeHTTP(rr, req)

	require.Equal(t, "anon", rr.Body.String())
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "session", cookies[0].Name)
	require.Equal(t, -1, cookies[0].MaxAge)
	require.False(t, cookies[0].Secure)
}

// С TLS стирающая cookie тоже Secure, как при выходе
func TestSessions_Load_UnauthorizedSecure(t *testing.T) {
	s := &Sessions{Auth: &fakeAuth{err: serr.ErrUnauthorized}, CookieName: "session", Secure: true}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	rr := httptest.NewRecorder()

	s.Load()(whoami()).ServeHTTP(rr, req)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, -1, cookies[0].MaxAge)
	require.True(t, cookies[0].Secure)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessions_Load_StoreError(t *testing.T) {
	s := &Sessions{Auth: &fakeAuth{err: serr.ErrInternal}, CookieName: "session"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	rr := httptest.NewRecorder()

	s.Load()(whoami()).ServeHTTP(rr, req)

	require.Equal(t, "anon", rr.Body.String())
	require.Empty(t, rr.Result().Cookies())
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(whoami())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/add_job", nil))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, LoginPath, rr.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/add_job", nil)
	req = req.WithContext(WithUser(req.Context(), &models.User{ID: 1, Name: "Ridley"}, uuid.New()))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Ridley", rr.Body.String())
	require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestSessionIDFromContext(t *testing.T) {
	sid := uuid.New()
	ctx := WithUser(context.Background(), &models.User{ID: 1}, sid)

	got, ok := SessionIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, sid, got)

	_, ok = SessionIDFromContext(context.Background())
	require.False(t, ok)
}
