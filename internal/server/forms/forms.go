// Package forms разбирает и проверяет формы входа, регистрации, работ и департаментов.
//
// Каждое объявленное поле обязательно, пробелы вокруг значения не считаются.
// Пароли передаются дальше как введены. Числовые поля ведут себя как DataRequired
// в исходной форме: 0 считается незаполненным, нечисловое значение даёт ErrInvalidNumber.
// Флажки (remember_me, is_finished) необязательны.
package forms

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// FieldError — ошибка конкретного поля формы. Field — имя поля в HTML (form-тег).
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

// Errors — ошибки полей в порядке их объявления в форме.
type Errors []*FieldError

func (es Errors) Error() string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap позволяет errors.Is(err, serr.ErrMissingField).
func (es Errors) Unwrap() []error {
	out := make([]error, 0, len(es))
	for _, e := range es {
		out = append(out, e)
	}
	return out
}

// Field возвращает ошибку поля name или nil.
func (es Errors) Field(name string) *FieldError {
	for _, e := range es {
		if e.Field == name {
			return e
		}
	}
	return nil
}

// AsErrors достаёт ошибки полей из err.
func AsErrors(err error) (Errors, bool) {
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// fits64: строка из цифр помещается в int64
	_ = v.RegisterValidation("fits64", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil
	})
	// fits32: значение помещается в INTEGER базы
	_ = v.RegisterValidation("fits32", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(fl.Field().String(), 10, 32)
		return err == nil
	})
	// notblank: значение из одних пробелов считается незаполненным.
	// Нужен для паролей, которые не обрезаются.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// nonzero: "0" считается незаполненным полем
	_ = v.RegisterValidation("nonzero", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseInt(fl.Field().String(), 10, 64)
		return err == nil && n != 0
	})
	return v
}

// check прогоняет валидатор и переводит его ошибки в Errors.
func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &FieldError{Field: fe.Field(), Err: tagError(fe.Tag())})
	}
	return out
}

func tagError(tag string) error {
	switch tag {
	case "number", "fits64", "fits32":
		return serr.ErrInvalidNumber
	default:
		return serr.ErrMissingField
	}
}

func text(v url.Values, name string) string {
	return strings.TrimSpace(v.Get(name))
}

// checkbox повторяет BooleanField: всё, кроме пустого значения и "false", включено.
func checkbox(v url.Values, name string) bool {
	s := strings.ToLower(strings.TrimSpace(v.Get(name)))
	return s != "" && s != "false"
}

// mustInt вызывается только после успешной проверки формы.
func mustInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
