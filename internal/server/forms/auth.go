package forms

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
)

// LoginForm — форма /login.
type LoginForm struct {
	Email      string `form:"email" validate:"required"`
	Password   string `form:"password" validate:"required,notblank"`
	RememberMe bool   `form:"remember_me"`
}

func Login(v url.Values) (LoginForm, error) {
	f := LoginForm{
		Email:      text(v, "email"),
		Password:   v.Get("password"),
		RememberMe: checkbox(v, "remember_me"),
	}
	return f, check(f)
}

// RegisterForm — форма /register. Email приходит в поле login.
type RegisterForm struct {
	Login         string `form:"login" validate:"required"`
	Password      string `form:"password" validate:"required,notblank"`
	PasswordAgain string `form:"password_again" validate:"required,notblank"`
	Surname       string `form:"surname" validate:"required"`
	Name          string `form:"name" validate:"required"`
	Age           string `form:"age" validate:"required,number,fits32"`
	Position      string `form:"position" validate:"required"`
	Speciality    string `form:"speciality" validate:"required"`
	Address       string `form:"address" validate:"required"`
}

func Register(v url.Values) (RegisterForm, error) {
	f := RegisterForm{
		Login:         text(v, "login"),
		Password:      v.Get("password"),
		PasswordAgain: v.Get("password_again"),
		Surname:       text(v, "surname"),
		Name:          text(v, "name"),
		Age:           text(v, "age"),
		Position:      text(v, "position"),
		Speciality:    text(v, "speciality"),
		Address:       text(v, "address"),
	}
	return f, check(f)
}

// Input переводит проверенную форму во вход сервиса. Совпадение паролей проверяет сервис.
func (f RegisterForm) Input() service.RegisterInput {
	return service.RegisterInput{
		Email:         f.Login,
		Password:      f.Password,
		PasswordAgain: f.PasswordAgain,
		Surname:       f.Surname,
		Name:          f.Name,
		Age:           int(mustInt(f.Age)),
		Position:      f.Position,
		Speciality:    f.Speciality,
		Address:       f.Address,
	}
}
