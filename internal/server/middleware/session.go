// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

const (
	userKey      ctxKey = "user"
	sessionIDKey ctxKey = "session_id"
)

// LoginPath — куда отправляем неавторизованного пользователя.
const LoginPath = "/login"

// Authenticator проверяет токен из cookie сессии.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, uuid.UUID, error)
}

// Sessions достаёт текущего пользователя из cookie.
type Sessions struct {
	Auth       Authenticator
	CookieName string
	// Secure — cookie только по HTTPS (tls.enabled).
	Secure bool
	Log    *zap.Logger
}

// ClearCookie — cookie, которая стирает сессию в браузере.
func ClearCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// UserFromContext возвращает вошедшего пользователя.
//
// Возвращает:
//   - пользователя
//   - false, если запрос анонимный
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

// SessionIDFromContext возвращает id текущей сессии.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	return id, ok
}

// WithUser кладёт пользователя и сессию в контекст.
func WithUser(ctx context.Context, u *models.User, sessionID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userKey, u)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// Load загружает пользователя по cookie сессии на каждом запросе.
//
// Отсутствие cookie и невалидная сессия не ошибка: запрос идёт дальше анонимным,
// а протухшая cookie стирается. Ошибка хранилища логируется, запрос тоже анонимный.
func (s *Sessions) Load() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(s.CookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, sid, err := s.Auth.Authenticate(r.Context(), c.Value)
			if err != nil {
				if errors.Is(err, serr.ErrUnauthorized) {
					http.SetCookie(w, ClearCookie(s.CookieName, s.Secure))
				} else if s.Log != nil {
					s.Log.Error("load session", zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u, sid)))
		})
	}
}

// RequireAuth пропускает только вошедших пользователей,
// остальных перенаправляет на страницу входа (303).
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		// страницы с данными пользователя не кэшируем
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
