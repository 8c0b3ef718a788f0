// Package models содержит серверные модели данных: пользователь, работа,
// департамент и сессия. Модели не знают ни о HTTP, ни о SQL.
package models

import "time"

// SuperuserID — пользователь с этим id может менять и удалять любые записи.
const SuperuserID int64 = 1

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Surname      string
	Name         string
	Age          int
	Position     string
	Speciality   string
	Address      string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

// IsSuperuser сообщает, обходит ли пользователь проверку владельца.
func (u *User) IsSuperuser() bool {
	return u != nil && u.ID == SuperuserID
}

// DisplayName — "Фамилия Имя" для таблиц.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.Surname == "":
		return u.Name
	case u.Name == "":
		return u.Surname
	}
	return u.Surname + " " + u.Name
}
