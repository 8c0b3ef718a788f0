// Package http реализует маршрутизацию HTTP-слоя реестра.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование и метрики выполнения HTTP-запросов;
//   - загрузку сессии и закрытие маршрутов, требующих входа;
//   - /health и /metrics.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/api"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/middleware"
)

// Options — что ещё подключить к роутеру помимо страниц.
type Options struct {
	// MaxBodyBytes ограничивает тело формы, 0 — без ограничения.
	MaxBodyBytes int64
	// MetricsPath — путь /metrics, пусто — метрики не отдаются.
	MetricsPath string
	// HealthChecks выполняются на /health.
	HealthChecks []api.HealthCheck
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные страницы: списки, вход, регистрация;
//   - группу страниц за RequireAuth (добавление, правка, удаление, выход);
//   - служебные /health и /metrics.
func NewRouter(h *api.Handler, sessions *middleware.Sessions, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(chimw.Recoverer)
	if opts.MaxBodyBytes > 0 {
		r.Use(maxBody(opts.MaxBodyBytes))
	}

	r.Get("/health", h.Health(opts.HealthChecks...))
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}

	r.Group(func(r chi.Router) {
		// текущий пользователь из cookie
		r.Use(sessions.Load())

		// Публичные пути
		r.Get("/", h.ListJobs)
		r.Get("/departments", h.ListDepartments)
		r.Get("/login", h.LoginForm)
		r.Post("/login", h.Login)
		r.Get("/register", h.RegisterForm)
		r.Post("/register", h.Register)

		// защищённые пути
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/logout", h.Logout)

			r.Get("/add_job", h.AddJobForm)
			r.Post("/add_job", h.AddJob)
			r.Get("/edit_job/{id:[0-9]+}", h.EditJobForm)
			r.Post("/edit_job/{id:[0-9]+}", h.EditJob)
			r.Get("/job_delete/{id:[0-9]+}", h.DeleteJob)
			r.Post("/job_delete/{id:[0-9]+}", h.DeleteJob)

			r.Get("/add_department", h.AddDepartmentForm)
			r.Post("/add_department", h.AddDepartment)
			r.Get("/edit_department/{id:[0-9]+}", h.EditDepartmentForm)
			r.Post("/edit_department/{id:[0-9]+}", h.EditDepartment)
			// удаление департамента только GET
			r.Get("/department_delete/{id:[0-9]+}", h.DeleteDepartment)
		})
	})

	return r
}

func maxBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
