// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-ответы (перерисовка формы или статус) в api слое.
package errors

import "errors"

var (
	// Обязательное поле формы не заполнено
	ErrMissingField = errors.New("missing field")
	// В числовое поле формы передано не число
	ErrInvalidNumber = errors.New("invalid number")
	// Пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("password mismatch")
	// Пользователь с таким email уже зарегистрирован
	ErrDuplicateEmail = errors.New("duplicate email")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// team_leader работы ссылается на несуществующего пользователя
	ErrUnknownLeader = errors.New("unknown team leader")
	// chief департамента ссылается на несуществующего пользователя
	ErrUnknownChief = errors.New("unknown chief")
	// Ресурс не найден или у пользователя нет прав на него.
	// Эти случаи намеренно не различаются.
	ErrNotFound = errors.New("not found")
	// Неавторизован (нет сессии, сессия отозвана или истекла)
	ErrUnauthorized = errors.New("unauthorized")
	// Входные данные невалидны
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка (чаще всего хранилище)
	ErrInternal = errors.New("internal error")
	// ожидаемая ошибка, используется в тестах
	ErrExpectedError = errors.New("expected error")
)
