// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${SESSION_SIGNING_KEY}
// - переопределение отдельных настроек через переменные окружения
// - проставление дефолтов
// - валидацию (чтобы сервер не стартовал с дырявыми настройками)
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env           string              `yaml:"env"` // dev|stage|prod
	Server        ServerConfig        `yaml:"server"`
	TLS           TLSConfig           `yaml:"tls"`
	DB            DBConfig            `yaml:"db"`
	Migrations    MigrationsConfig    `yaml:"migrations"`
	Auth          AuthConfig          `yaml:"auth"`
	Password      PasswordConfig      `yaml:"password"`
	Redis         RedisConfig         `yaml:"redis"`
	Locale        LocaleConfig        `yaml:"locale"`
	Log           LogConfig           `yaml:"log"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxHeaderBytes    int           `yaml:"max_header_bytes"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"` // лимит размера тела формы
}

// TLSConfig — настройки HTTPS.
type TLSConfig struct {
	Enabled    bool   `yaml:"enabled"`
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
	MinVersion string `yaml:"min_version"` // "1.2"|"1.3"
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	QueryTimeout    time.Duration `yaml:"query_timeout"` // таймаут на запросы к БД
}

// MigrationsConfig — настройки миграций БД.
type MigrationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // например file://migrations/postgres
}

// AuthConfig — настройки аутентификации и сессий.
type AuthConfig struct {
	Issuer      string         `yaml:"issuer"`
	SessionTTL  time.Duration  `yaml:"session_ttl"`  // сессия без "запомнить меня"
	RememberTTL time.Duration  `yaml:"remember_ttl"` // сессия с "запомнить меня"
	JWT         JWTConfig      `yaml:"jwt"`
	Sessions    SessionsConfig `yaml:"sessions"`
}

// JWTConfig — как подписываем cookie сессии.
type JWTConfig struct {
	Algorithm  string `yaml:"algorithm"`   // сейчас поддерживаем только HS256
	SigningKey string `yaml:"signing_key"` // может содержать ${SESSION_SIGNING_KEY}
}

// SessionsConfig — настройки хранения сессий на сервере.
type SessionsConfig struct {
	Store          string `yaml:"store"` // db|redis
	CookieName     string `yaml:"cookie_name"`
	CleanupOnStart bool   `yaml:"cleanup_on_start"` // удалять истёкшие сессии при старте
}

// PasswordConfig — настройки хэширования паролей пользователей.
type PasswordConfig struct {
	Hasher string       `yaml:"hasher"` // argon2id|bcrypt
	Argon2 Argon2Config `yaml:"argon2"`
	Bcrypt BcryptConfig `yaml:"bcrypt"`
}

// Argon2Config — параметры argon2id.
type Argon2Config struct {
	Time      uint32 `yaml:"time"`
	MemoryKiB uint32 `yaml:"memory_kib"`
	Threads   uint8  `yaml:"threads"`
	KeyLen    uint32 `yaml:"key_len"`
	SaltLen   uint32 `yaml:"salt_len"`
}

// BcryptConfig — параметры bcrypt.
type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

// RedisConfig — подключение к Redis (только для auth.sessions.store=redis).
type RedisConfig struct {
	Addr    string        `yaml:"addr"`
	DB      int           `yaml:"db"`
	Timeout time.Duration `yaml:"timeout"`
}

// LocaleConfig — язык сообщений по умолчанию.
type LocaleConfig struct {
	Default string `yaml:"default"` // ru|en
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Dir         string `yaml:"dir"`
	Level       string `yaml:"level"`  // debug|info|warn|error
	Format      string `yaml:"format"` // json|console
	Development bool   `yaml:"development"`
}

// ObservabilityConfig — метрики.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// EnvOverrides — настройки, которые можно переопределить переменными окружения
// без ${...} в yaml. Пустые значения ничего не переопределяют.
type EnvOverrides struct {
	Port       int    `env:"SERVER_PORT"`
	DSN        string `env:"DB_DSN"`
	SigningKey string `env:"SESSION_SIGNING_KEY"`
	LogLevel   string `env:"LOG_LEVEL"`
	SessionsIn string `env:"SESSION_STORE"`
	RedisAddr  string `env:"REDIS_ADDR"`
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, применяет переопределения из окружения,
// проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnvOverrides(context.Background(), envconfig.OsLookuper()); err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse разбирает YAML после подстановки ${VAR}. Дефолты и валидация не применяются.
func Parse(raw []byte) (*Config, error) {
	expanded := ExpandEnvStrict(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}
	return &cfg, nil
}

var envPlaceholder = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	return envPlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		sub := envPlaceholder.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyEnvOverrides переопределяет настройки значениями из l
// (в проде это окружение процесса, в тестах — envconfig.MapLookuper).
func (c *Config) ApplyEnvOverrides(ctx context.Context, l envconfig.Lookuper) error {
	var o EnvOverrides
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &o, Lookuper: l}); err != nil {
		return fmt.Errorf("не удалось прочитать переменные окружения: %w", err)
	}

	if o.Port > 0 {
		c.Server.Port = o.Port
	}
	if o.DSN != "" {
		c.DB.DSN = o.DSN
	}
	if o.SigningKey != "" {
		c.Auth.JWT.SigningKey = o.SigningKey
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.SessionsIn != "" {
		c.Auth.Sessions.Store = o.SessionsIn
	}
	if o.RedisAddr != "" {
		c.Redis.Addr = o.RedisAddr
	}
	return nil
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.DB.QueryTimeout == 0 {
		cfg.DB.QueryTimeout = 5 * time.Second
	}
	if cfg.Migrations.Path == "" {
		cfg.Migrations.Path = "file://migrations/postgres"
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = "mars-registry"
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = 24 * time.Hour
	}
	if cfg.Auth.RememberTTL == 0 {
		cfg.Auth.RememberTTL = 365 * 24 * time.Hour
	}
	if cfg.Auth.JWT.Algorithm == "" {
		cfg.Auth.JWT.Algorithm = "HS256"
	}
	if cfg.Auth.Sessions.Store == "" {
		cfg.Auth.Sessions.Store = "db"
	}
	if cfg.Auth.Sessions.CookieName == "" {
		cfg.Auth.Sessions.CookieName = "session"
	}
	if cfg.Password.Hasher == "" {
		cfg.Password.Hasher = "argon2id"
	}
	if cfg.Password.Argon2 == (Argon2Config{}) {
		cfg.Password.Argon2 = Argon2Config{Time: 3, MemoryKiB: 64 * 1024, Threads: 2, KeyLen: 32, SaltLen: 16}
	}
	if cfg.Password.Bcrypt.Cost == 0 {
		cfg.Password.Bcrypt.Cost = 12
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = "ru"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Observability.Metrics.Path == "" {
		cfg.Observability.Metrics.Path = "/metrics"
	}
}

// Validate проверяет, что конфиг заполнен корректно и безопасно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host обязателен")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}

	if c.TLS.Enabled {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return errors.New("tls.cert_file и tls.key_file обязательны при tls.enabled=true")
		}
		if c.TLS.MinVersion == "" {
			c.TLS.MinVersion = "1.2"
		}
		// TLS 1.0/1.1 считаются небезопасными — запрещаем
		if c.TLS.MinVersion == "1.0" || c.TLS.MinVersion == "1.1" {
			return fmt.Errorf("tls.min_version=%s небезопасен; используй 1.2 или 1.3", c.TLS.MinVersion)
		}
	}

	if c.DB.DSN == "" {
		return errors.New("db.dsn обязателен")
	}

	alg := strings.ToUpper(strings.TrimSpace(c.Auth.JWT.Algorithm))
	if alg != "HS256" {
		return fmt.Errorf("auth.jwt.algorithm должен быть HS256 (сейчас %q)", c.Auth.JWT.Algorithm)
	}
	key := strings.TrimSpace(c.Auth.JWT.SigningKey)
	if key == "" {
		return errors.New("auth.jwt.signing_key обязателен (через ${SESSION_SIGNING_KEY} или прямо строкой)")
	}
	if strings.Contains(key, "${") && strings.Contains(key, "}") {
		return fmt.Errorf("auth.jwt.signing_key содержит неподставленную переменную: %q (нужно задать SESSION_SIGNING_KEY)", key)
	}
	if len(key) < 32 {
		return fmt.Errorf("auth.jwt.signing_key слишком короткий (%d символов); нужно >= 32", len(key))
	}
	if c.Auth.SessionTTL <= 0 || c.Auth.RememberTTL <= 0 {
		return errors.New("auth.session_ttl и auth.remember_ttl должны быть > 0")
	}

	switch c.Auth.Sessions.Store {
	case "db":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("redis.addr обязателен при auth.sessions.store=redis")
		}
	default:
		return fmt.Errorf("auth.sessions.store должен быть db|redis (сейчас %q)", c.Auth.Sessions.Store)
	}

	switch strings.ToLower(c.Password.Hasher) {
	case "argon2id":
		if c.Password.Argon2.Time == 0 || c.Password.Argon2.MemoryKiB == 0 || c.Password.Argon2.Threads == 0 {
			return errors.New("password.argon2 должен быть настроен для argon2id")
		}
	case "bcrypt":
		if c.Password.Bcrypt.Cost == 0 {
			return errors.New("password.bcrypt.cost должен быть задан для bcrypt")
		}
	default:
		return fmt.Errorf("password.hasher должен быть argon2id|bcrypt (сейчас %q)", c.Password.Hasher)
	}

	switch c.Locale.Default {
	case "ru", "en":
	default:
		return fmt.Errorf("locale.default должен быть ru|en (сейчас %q)", c.Locale.Default)
	}

	return nil
}
