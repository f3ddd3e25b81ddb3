package config

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Режимы хранения записей гостевой книги.
const (
	ModePostgres = "postgres"
	ModeSQLite   = "sqlite"
	ModeMemory   = "memory"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress     string        `json:"server_address"`
	GRPCAddress       string        `json:"grpc_address"`
	DatabaseURL       string        `json:"database_url"`
	DatabaseAuthToken string        `json:"-"`
	AdminSecret       string        `json:"-"`
	ShutdownTimeout   time.Duration `json:"shutdown_timeout"`
	Mode              string        `json:"-"`
}

// NewConfig инициализирует конфигурацию из окружения и аргументов командной строки
func NewConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		log.Printf("Ошибка разбора аргументов: %v", err)
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: GRPCAddress=%s", cfg.GRPCAddress)
	log.Printf("Инициализация конфигурации: DatabaseURL=%s", cfg.RedactedDatabaseURL())
	log.Printf("Инициализация конфигурации: Mode=%s", cfg.Mode)

	if err := cfg.Validate(); err != nil {
		log.Printf("Ошибка конфигурации: %v", err)
	}
	return cfg
}

// Load собирает конфигурацию: флаг > переменная окружения > .env > значение по умолчанию.
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_ADDRESS", "localhost:8080")
	v.SetDefault("GRPC_ADDRESS", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_AUTH_TOKEN", "")
	v.SetDefault("ADMIN_SECRET", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.AutomaticEnv()

	// .env не переопределяет переменные окружения
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	fs := flag.NewFlagSet("guestbook", flag.ContinueOnError)
	serverAddress := fs.String("a", "", "HTTP server address")
	grpcAddress := fs.String("g", "", "gRPC health server address")
	databaseURL := fs.String("d", "", "database URL (postgres://, file:, sqlite:)")
	authToken := fs.String("token", "", "database auth token")
	adminSecret := fs.String("secret", "", "admin shared secret")

	parseErr := fs.Parse(args)

	cfg := &Config{
		ServerAddress:     v.GetString("SERVER_ADDRESS"),
		GRPCAddress:       v.GetString("GRPC_ADDRESS"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		DatabaseAuthToken: v.GetString("DATABASE_AUTH_TOKEN"),
		AdminSecret:       v.GetString("ADMIN_SECRET"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	override := func(flagVal string, target *string) {
		if flagVal != "" {
			*target = flagVal
		}
	}
	override(*serverAddress, &cfg.ServerAddress)
	override(*grpcAddress, &cfg.GRPCAddress)
	override(*databaseURL, &cfg.DatabaseURL)
	override(*authToken, &cfg.DatabaseAuthToken)
	override(*adminSecret, &cfg.AdminSecret)

	cfg.Mode = ModeFor(cfg.DatabaseURL)
	return cfg, parseErr
}

// ModeFor определяет режим хранения по адресу базы данных.
// Пустая строка означает хранение в памяти, неизвестная схема — пустой режим.
func ModeFor(databaseURL string) string {
	switch {
	case databaseURL == "":
		return ModeMemory
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return ModePostgres
	case strings.HasPrefix(databaseURL, "file:"), strings.HasPrefix(databaseURL, "sqlite:"),
		databaseURL == ":memory:", strings.HasSuffix(databaseURL, ".db"):
		return ModeSQLite
	default:
		return ""
	}
}

// SQLitePath возвращает DSN для драйвера sqlite без префикса "sqlite:".
func (cfg *Config) SQLitePath() string {
	return strings.TrimPrefix(cfg.DatabaseURL, "sqlite:")
}

// RedactedDatabaseURL возвращает адрес БД без пароля для логов.
func (cfg *Config) RedactedDatabaseURL() string {
	if cfg.Mode != ModePostgres {
		return cfg.DatabaseURL
	}
	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.Mode == "" {
		return fmt.Errorf("неподдерживаемый адрес базы данных: %s", cfg.DatabaseURL)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("таймаут остановки должен быть положительным")
	}
	return nil
}
