// Package api реализует HTTP-обработчики реестра.
//
// Пакет отвечает за:
//   - разбор форм и вызов сервисного слоя;
//   - перерисовку формы с переведённым сообщением при доменной ошибке;
//   - маппинг NotFound в 404 и прочих ошибок в 500 с записью в лог;
//   - выдачу и удаление cookie сессии.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/i18n"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/view"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/shared/logger"
)

// CookieConfig — параметры cookie сессии.
type CookieConfig struct {
	Name string
	// Secure — только HTTPS (tls.enabled).
	Secure bool
}

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи ошибок;
//   - View: рендер HTML-страниц;
//   - I18n: каталог переводов сообщений.
type Handler struct {
	Svc    *service.Services
	Log    *logger.HTTPLogger
	View   *view.Renderer
	I18n   *i18n.Bundle
	Cookie CookieConfig
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, renderer *view.Renderer, bundle *i18n.Bundle, cookie CookieConfig) *Handler {
	return &Handler{
		Svc:    svc,
		Log:    log,
		View:   renderer,
		I18n:   bundle,
		Cookie: cookie,
	}
}

// HealthCheck проверяет одну зависимость (БД, Redis).
type HealthCheck func(ctx context.Context) error

// Health отвечает 200 "ok", если все проверки прошли, иначе 503.
func (h *Handler) Health(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				h.Log.Warn("health check failed", zap.Error(err))
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

func (h *Handler) localizer(r *http.Request) *i18n.Localizer {
	return h.I18n.Localizer(r.Header.Get("Accept-Language"))
}

// page заполняет общие для всех страниц поля.
func (h *Handler) page(r *http.Request, title string) view.Page {
	u, _ := middleware.UserFromContext(r.Context())
	return view.Page{L: h.localizer(r), User: u, Title: title}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, p view.Page) {
	if err := h.View.Render(w, status, name, p); err != nil {
		h.internalError(w, r, err)
	}
}

// internalError логирует причину и отдаёт пользователю общее сообщение.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("uri", r.RequestURI),
		zap.Error(err),
	)
	http.Error(w, h.localizer(r).T(i18n.MsgInternalError), http.StatusInternalServerError)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, h.localizer(r).T(i18n.MsgNotFound), http.StatusNotFound)
}

// idParam читает {id} из пути. Роутер уже пропускает только цифры.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUser — пользователь из контекста. На маршрутах за RequireAuth всегда есть.
func currentUser(r *http.Request) *models.User {
	u, _ := middleware.UserFromContext(r.Context())
	return u
}

// writeResult — метка result для метрик по ошибке сервиса.
func writeResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, serr.ErrNotFound):
		return "not_found"
	case errors.Is(err, serr.ErrUnknownLeader), errors.Is(err, serr.ErrUnknownChief), errors.Is(err, serr.ErrMissingField), errors.Is(err, serr.ErrInvalidNumber):
		return "rejected"
	default:
		return "error"
	}
}

func recordWrite(entity, op string, err error) {
	metrics.RecordWritesTotal.WithLabelValues(entity, op, writeResult(err)).Inc()
}
