// HTTP-хендлеры входа, выхода и регистрации
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/forms"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/view"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

func (h *Handler) loginPage(r *http.Request, f forms.LoginForm) view.Page {
	p := h.page(r, "Authorization")
	p.Action = "/login"
	p.Form = f
	return p
}

// LoginForm рисует форму входа.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, h.loginPage(r, forms.LoginForm{}))
}

// Login проверяет форму и учётные данные.
//
// Ответы:
//   - 303 на / и cookie сессии при успехе;
//   - 200 с формой и сообщением при незаполненных полях или неверных данных;
//   - 500 при ошибке хранилища.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	f, err := forms.Login(r.PostForm)
	p := h.loginPage(r, f)
	if err != nil {
		h.formFailed(w, r, view.PageLogin, p, err)
		return
	}

	sess, err := h.Svc.Auth.Login(r.Context(), f.Email, f.Password, f.RememberMe)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidCredentials) {
			metrics.AuthEventsTotal.WithLabelValues("login", "rejected").Inc()
		} else {
			metrics.AuthEventsTotal.WithLabelValues("login", "error").Inc()
		}
		h.formFailed(w, r, view.PageLogin, p, err)
		return
	}

	metrics.AuthEventsTotal.WithLabelValues("login", "ok").Inc()
	http.SetCookie(w, h.sessionCookie(sess))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout отзывает сессию, стирает cookie и уводит на главную.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.Cookie.Name); err == nil {
		if err := h.Svc.Auth.Logout(r.Context(), c.Value); err != nil {
			metrics.AuthEventsTotal.WithLabelValues("logout", "error").Inc()
			h.internalError(w, r, err)
			return
		}
	}

	metrics.AuthEventsTotal.WithLabelValues("logout", "ok").Inc()
	http.SetCookie(w, h.clearCookie())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) registerPage(r *http.Request, f forms.RegisterForm) view.Page {
	p := h.page(r, "Registration")
	p.Action = "/register"
	p.Form = f
	return p
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageRegister, h.registerPage(r, forms.RegisterForm{}))
}

// Register создаёт пользователя и отправляет на страницу входа.
//
// Ответы:
//   - 303 на /login при успехе;
//   - 200 с формой: незаполненные поля, пароли не совпадают, email занят;
//   - 500 при ошибке хранилища.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	f, err := forms.Register(r.PostForm)
	// пароли в форму обратно не отдаём
	shown := f
	shown.Password, shown.PasswordAgain = "", ""
	p := h.registerPage(r, shown)
	if err != nil {
		h.formFailed(w, r, view.PageRegister, p, err)
		return
	}

	if _, err := h.Svc.Auth.Register(r.Context(), f.Input()); err != nil {
		result := "rejected"
		if !errors.Is(err, serr.ErrPasswordMismatch) && !errors.Is(err, serr.ErrDuplicateEmail) {
			result = "error"
		}
		metrics.AuthEventsTotal.WithLabelValues("register", result).Inc()
		h.formFailed(w, r, view.PageRegister, p, err)
		return
	}

	metrics.AuthEventsTotal.WithLabelValues("register", "ok").Inc()
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// sessionCookie — cookie на время браузерной сессии или, с "запомнить меня", до истечения.
func (h *Handler) sessionCookie(s service.IssuedSession) *http.Cookie {
	c := &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    s.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.Persistent {
		c.Expires = s.ExpiresAt
		c.MaxAge = int(time.Until(s.ExpiresAt).Seconds())
	}
	return c
}

func (h *Handler) clearCookie() *http.Cookie {
	return middleware.ClearCookie(h.Cookie.Name, h.Cookie.Secure)
}
