// HTTP-хендлеры департаментов
package api

import (
	"net/http"
	"strconv"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/forms"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/view"
)

const departmentsPath = "/departments"

// ListDepartments — список департаментов, доступен всем.
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	deps, err := h.Svc.Departments.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	p := h.page(r, "List of Departments")
	p.Departments = make([]view.DepartmentRow, 0, len(deps))
	for i := range deps {
		p.Departments = append(p.Departments, view.DepartmentRow{Department: deps[i], CanModify: deps[i].OwnedBy(p.User)})
	}
	h.render(w, r, http.StatusOK, view.PageDepartments, p)
}

func (h *Handler) departmentPage(r *http.Request, title, action string, f forms.DepartmentForm) view.Page {
	p := h.page(r, title)
	p.Action = action
	p.Form = f
	return p
}

func (h *Handler) AddDepartmentForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageDepartmentForm,
		h.departmentPage(r, "Add a Department", "/add_department", forms.DepartmentForm{}))
}

func (h *Handler) AddDepartment(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	f, err := forms.Department(r.PostForm)
	p := h.departmentPage(r, "Add a Department", "/add_department", f)
	if err == nil {
		_, err = h.Svc.Departments.Create(r.Context(), f.Input(), currentUser(r))
	}
	recordWrite("department", "create", err)
	if err != nil {
		h.formFailed(w, r, view.PageDepartmentForm, p, err)
		return
	}

	http.Redirect(w, r, departmentsPath, http.StatusSeeOther)
}

func (h *Handler) EditDepartmentForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	d, err := h.Svc.Departments.GetForEdit(r.Context(), id, currentUser(r))
	if err != nil {
		h.failed(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageDepartmentForm,
		h.departmentPage(r, "Edit Department", editDepartmentPath(id), forms.DepartmentFormFrom(d)))
}

// EditDepartment — как EditJob: сначала права, потом форма.
func (h *Handler) EditDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}
	user := currentUser(r)

	if _, err := h.Svc.Departments.GetForEdit(r.Context(), id, user); err != nil {
		recordWrite("department", "update", err)
		h.failed(w, r, err)
		return
	}
	if !h.parseForm(w, r) {
		return
	}

	f, err := forms.Department(r.PostForm)
	p := h.departmentPage(r, "Edit Department", editDepartmentPath(id), f)
	if err == nil {
		_, err = h.Svc.Departments.Update(r.Context(), id, f.Input(), user)
	}
	recordWrite("department", "update", err)
	if err != nil {
		h.formFailed(w, r, view.PageDepartmentForm, p, err)
		return
	}

	http.Redirect(w, r, departmentsPath, http.StatusSeeOther)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	err := h.Svc.Departments.Delete(r.Context(), id, currentUser(r))
	recordWrite("department", "delete", err)
	if err != nil {
		h.failed(w, r, err)
		return
	}

	http.Redirect(w, r, departmentsPath, http.StatusSeeOther)
}

func editDepartmentPath(id int64) string {
	return "/edit_department/" + strconv.FormatInt(id, 10)
}
