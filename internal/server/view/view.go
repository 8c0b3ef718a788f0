// Package view рендерит HTML-страницы из встроенных шаблонов.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/i18n"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
)

//go:embed templates/*.html
var files embed.FS

// Имена страниц.
const (
	PageLogin          = "login.html"
	PageRegister       = "register.html"
	PageJobs           = "jobs.html"
	PageJobForm        = "job_form.html"
	PageDepartments    = "departments.html"
	PageDepartmentForm = "department_form.html"
)

var pages = []string{PageLogin, PageRegister, PageJobs, PageJobForm, PageDepartments, PageDepartmentForm}

// Page — данные для любого шаблона.
type Page struct {
	L    *i18n.Localizer
	User *models.User

	// Title — ключ перевода заголовка страницы.
	Title string
	// Message — уже переведённое сообщение об ошибке над формой.
	Message string
	// FieldErrors — переведённые ошибки по имени поля.
	FieldErrors map[string]string
	// Action — куда отправляется форма.
	Action string
	Form   any

	Jobs        []JobRow
	Departments []DepartmentRow
}

// JobRow — строка таблицы работ.
type JobRow struct {
	models.Job
	CanModify bool
}

type DepartmentRow struct {
	models.Department
	CanModify bool
}

// Renderer хранит разобранные шаблоны, по одному набору на страницу.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").
			Funcs(template.FuncMap{"dict": dict}).
			ParseFS(files, "templates/layout.html", "templates/partials.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render выполняет шаблон в буфер и только потом пишет ответ,
// поэтому ошибка шаблона не оставляет полстраницы у клиента.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// dict собирает map для вложенных шаблонов: {{template "field" dict "Name" "email" ...}}.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}
