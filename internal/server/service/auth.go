package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/config"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-mars-registry/internal/shared/errors"
)

// AuthService реализует регистрацию, вход, выход и проверку сессий.
//
// Cookie сессии — подписанный HS256 токен (sub = id пользователя, jti = id сессии).
// Подпись защищает от подделки, а запись в хранилище сессий — от повторного
// использования после выхода.
type AuthService struct {
	users    UsersRepo
	sessions SessionsRepo

	hasher crypto.PasswordHasher
	signer *crypto.SessionSigner

	sessionTTL  time.Duration
	rememberTTL time.Duration

	now func() time.Time
}

// IssuedSession — результат успешного входа.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
	// Persistent — "запомнить меня": cookie получает Max-Age.
	Persistent bool
}

// RegisterInput — поля формы регистрации после проверки обязательности.
type RegisterInput struct {
	Email         string
	Password      string
	PasswordAgain string
	Surname       string
	Name          string
	Age           int
	Position      string
	Speciality    string
	Address       string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, sessions SessionsRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,

		hasher: NewPasswordHasher(cfg.Password),
		signer: crypto.NewSessionSigner(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer),

		sessionTTL:  cfg.Auth.SessionTTL,
		rememberTTL: cfg.Auth.RememberTTL,

		now: time.Now,
	}
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register регистрирует нового пользователя.
//
// Ошибки:
//   - ErrPasswordMismatch, если пароль и повтор различаются
//   - ErrDuplicateEmail, если email уже занят
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Password != in.PasswordAgain {
		return nil, serr.ErrPasswordMismatch
	}

	email := NormalizeEmail(in.Email)
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, serr.ErrDuplicateEmail
	case !errors.Is(err, serr.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		Surname:      strings.TrimSpace(in.Surname),
		Name:         strings.TrimSpace(in.Name),
		Age:          in.Age,
		Position:     strings.TrimSpace(in.Position),
		Speciality:   strings.TrimSpace(in.Speciality),
		Address:      strings.TrimSpace(in.Address),
	}
	// уникальный индекс ловит гонку двух регистраций
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

// Login проверяет email и пароль и открывает сессию.
//
// Неизвестный email и неверный пароль не различаются: оба дают ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (IssuedSession, error) {
	u, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return IssuedSession{}, serr.ErrInvalidCredentials
		}
		return IssuedSession{}, err
	}

	ok, err := crypto.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		return IssuedSession{}, fmt.Errorf("%w: verify password: %v", serr.ErrInternal, err)
	}
	if !ok {
		return IssuedSession{}, serr.ErrInvalidCredentials
	}

	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}
	now := s.now()
	sess := &models.Session{
		ID:         uuid.New(),
		UserID:     u.ID,
		Persistent: remember,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return IssuedSession{}, err
	}

	token, err := s.signer.Sign(u.ID, sess.ID, sess.ExpiresAt)
	if err != nil {
		return IssuedSession{}, fmt.Errorf("%w: sign session: %v", serr.ErrInternal, err)
	}

	return IssuedSession{Token: token, ExpiresAt: sess.ExpiresAt, Persistent: remember}, nil
}

// Logout отзывает сессию, на которую указывает токен.
// Невалидный токен не ошибка: выходить уже не из чего.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return nil
	}
	return s.sessions.Revoke(ctx, claims.SessionID)
}

// Authenticate возвращает пользователя и id сессии по токену из cookie.
//
// ErrUnauthorized, если подпись неверна, сессия отозвана, истекла
// или пользователь больше не существует.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, uuid.UUID, error) {
	claims, err := s.signer.Parse(token)
	if err != nil {
		return nil, uuid.Nil, serr.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil, uuid.Nil, serr.ErrUnauthorized
		}
		return nil, uuid.Nil, err
	}
	if !sess.Active(s.now()) || sess.UserID != claims.UserID {
		return nil, uuid.Nil, serr.ErrUnauthorized
	}

	u, err := s.LoadUser(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil, uuid.Nil, serr.ErrUnauthorized
		}
		return nil, uuid.Nil, err
	}
	return u, sess.ID, nil
}

// LoadUser возвращает пользователя по id или ErrNotFound.
func (s *AuthService) LoadUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// CleanupSessions удаляет истёкшие и отозванные сессии.
func (s *AuthService) CleanupSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}
