// HTTP-хендлеры работ
package api

import (
	"net/http"
	"strconv"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/forms"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/view"
)

// ListJobs — журнал работ, доступен всем.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.Jobs.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	p := h.page(r, "Works log")
	p.Jobs = make([]view.JobRow, 0, len(jobs))
	for i := range jobs {
		p.Jobs = append(p.Jobs, view.JobRow{Job: jobs[i], CanModify: jobs[i].OwnedBy(p.User)})
	}
	h.render(w, r, http.StatusOK, view.PageJobs, p)
}

func (h *Handler) jobPage(r *http.Request, title, action string, f forms.JobForm) view.Page {
	p := h.page(r, title)
	p.Action = action
	p.Form = f
	return p
}

func (h *Handler) AddJobForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageJobForm, h.jobPage(r, "Adding a Job", "/add_job", forms.JobForm{}))
}

// AddJob создаёт работу от имени текущего пользователя.
//
// Ответы:
//   - 303 на / при успехе;
//   - 200 с формой: незаполненные поля, несуществующий лидер;
//   - 500 при ошибке хранилища.
func (h *Handler) AddJob(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	f, err := forms.Job(r.PostForm)
	p := h.jobPage(r, "Adding a Job", "/add_job", f)
	if err == nil {
		_, err = h.Svc.Jobs.Create(r.Context(), f.Input(), currentUser(r))
	}
	recordWrite("job", "create", err)
	if err != nil {
		h.formFailed(w, r, view.PageJobForm, p, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditJobForm рисует форму с текущими значениями. 404, если работы нет или она чужая.
func (h *Handler) EditJobForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	j, err := h.Svc.Jobs.GetForEdit(r.Context(), id, currentUser(r))
	if err != nil {
		h.failed(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageJobForm, h.jobPage(r, "Edit Job", editJobPath(id), forms.JobFormFrom(j)))
}

// EditJob сохраняет изменения. Права проверяются до разбора формы,
// поэтому чужая работа даёт 404 при любом содержимом формы.
func (h *Handler) EditJob(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	user := currentUser(r)

	if _, err := h.Svc.Jobs.GetForEdit(r.Context(), id, user); err != nil {
		recordWrite("job", "update", err)
		h.failed(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	f, err := forms.Job(r.PostForm)
	p := h.jobPage(r, "Edit Job", editJobPath(id), f)
	if err == nil {
		_, err = h.Svc.Jobs.Update(r.Context(), id, f.Input(), user)
	}
	recordWrite("job", "update", err)
	if err != nil {
		h.formFailed(w, r, view.PageJobForm, p, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteJob удаляет работу. 404, если её нет или она чужая.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	err := h.Svc.Jobs.Delete(r.Context(), id, currentUser(r))
	recordWrite("job", "delete", err)
	if err != nil {
		h.failed(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func editJobPath(id int64) string {
	return "/edit_job/" + strconv.FormatInt(id, 10)
}
