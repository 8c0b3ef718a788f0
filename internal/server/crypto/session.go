// Package crypto содержит криптографические примитивы сервера:
//   - хэширование и проверку паролей (argon2id, bcrypt);
//   - подпись и проверку токена сессии, который лежит в cookie.
package crypto

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken — подпись, срок или claims токена сессии некорректны.
var ErrInvalidToken = errors.New("invalid session token")

// SessionSigner подписывает и проверяет токены сессий (HS256).
//
// Токен содержит:
//   - iss — кто выдал;
//   - sub — id пользователя;
//   - jti — id серверной сессии;
//   - iat/exp — время выдачи и истечения.
//
// Подпись защищает cookie от подделки, а отзыв (logout) проверяется
// по серверной записи сессии.
type SessionSigner struct {
	SigningKey string
	Issuer     string
}

// SessionClaims — разобранное содержимое токена.
type SessionClaims struct {
	UserID    int64
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// NewSessionSigner создаёт SessionSigner.
func NewSessionSigner(signingKey, issuer string) *SessionSigner {
	return &SessionSigner{SigningKey: signingKey, Issuer: issuer}
}

// Sign выпускает токен для сессии sessionID пользователя userID.
func (s *SessionSigner) Sign(userID int64, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ID:        sessionID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.SigningKey))
}

// Parse проверяет подпись, срок действия и issuer токена.
func (s *SessionSigner) Parse(token string) (SessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return SessionClaims{}, ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.SigningKey), nil
	}); err != nil {
		return SessionClaims{}, ErrInvalidToken
	}

	if s.Issuer != "" && claims.Issuer != s.Issuer {
		return SessionClaims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return SessionClaims{}, ErrInvalidToken
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}

	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return SessionClaims{UserID: userID, SessionID: sessionID, ExpiresAt: exp}, nil
}
