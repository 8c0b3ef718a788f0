package api

import (
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/forms"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/i18n"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/view"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// userMessages — доменные ошибки, которые показываются над формой.
var userMessages = []struct {
	err error
	msg string
}{
	{serr.ErrInvalidCredentials, i18n.MsgInvalidCredentials},
	{serr.ErrPasswordMismatch, i18n.MsgPasswordMismatch},
	{serr.ErrDuplicateEmail, i18n.MsgDuplicateEmail},
	{serr.ErrUnknownLeader, i18n.MsgUnknownLeader},
	{serr.ErrUnknownChief, i18n.MsgUnknownChief},
}

// describe переносит ошибку формы или сервиса в страницу.
// false — ошибка не пользовательская (хранилище и т.п.).
func describe(p *view.Page, err error) bool {
	if es, ok := forms.AsErrors(err); ok {
		p.FieldErrors = make(map[string]string, len(es))
		for _, fe := range es {
			key := i18n.MsgFieldRequired
			if errors.Is(fe, serr.ErrInvalidNumber) {
				key = i18n.MsgFieldNumber
			}
			p.FieldErrors[fe.Field] = p.L.T(key, p.L.Label(fe.Field))
		}
		return true
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			p.Message = p.L.T(m.msg)
			return true
		}
	}
	return false
}

// formFailed перерисовывает форму с ошибкой или отдаёт 404/500.
func (h *Handler) formFailed(w http.ResponseWriter, r *http.Request, name string, p view.Page, err error) {
	switch {
	case errors.Is(err, serr.ErrNotFound):
		h.notFound(w, r)
	case describe(&p, err):
		h.render(w, r, http.StatusOK, name, p)
	default:
		h.internalError(w, r, err)
	}
}

// failed — ошибка без формы: 404 для NotFound, иначе 500.
func (h *Handler) failed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, serr.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	h.internalError(w, r, err)
}

// parseForm разбирает тело POST. Превышение лимита тела даёт 413.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	return true
}
