package models

import (
	"time"

	"github.com/google/uuid"
)

// Session — серверная запись о входе пользователя.
type Session struct {
	ID         uuid.UUID
	UserID     int64
	Persistent bool // "запомнить меня"
	CreatedAt  time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
}

// Active сообщает, что сессия не отозвана и не истекла на момент now.
func (s *Session) Active(now time.Time) bool {
	return s != nil && s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
