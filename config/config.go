package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultJWTSecret = "clubhub-dev-access-secret"

type Config struct {
	App struct {
		Env         string
		Port        string
		FrontendURL string
		UploadDir   string
		// PublicBaseURL prefixes the URLs of stored uploads.
		PublicBaseURL string
	}
	DB struct {
		// Driver is postgres or sqlite.
		Driver   string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		// Path is the sqlite database file.
		Path string
	}
	JWT struct {
		AccessTokenSecret        string
		AccessTokenExpiryMinutes int
	}
	Admin struct {
		Username string
		Email    string
		Password string
	}
	RateLimit struct {
		PerSecond int
		Burst     int
	}
}

func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiryMinutes) * time.Minute
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// setting binds a viper key to its environment variable and default.
type setting struct {
	key string
	env string
	def any
}

var settings = []setting{
	{"app.env", "APP_ENV", "development"},
	{"app.port", "PORT", "8088"},
	{"app.frontend_url", "FRONTEND_URL", "http://localhost:3000"},
	{"app.upload_dir", "UPLOAD_DIR", "./public/uploads"},
	{"app.public_base_url", "PUBLIC_BASE_URL", "/public/uploads"},

	{"db.driver", "DB_DRIVER", "postgres"},
	{"db.host", "DB_HOST", "localhost"},
	{"db.port", "DB_PORT", "5432"},
	{"db.user", "DB_USER", "postgres"},
	{"db.password", "DB_PASSWORD", "password"},
	{"db.name", "DB_NAME", "clubhub"},
	{"db.sslmode", "DB_SSLMODE", "disable"},
	{"db.path", "DB_PATH", "clubhub.db"},

	{"jwt.access_token_secret", "JWT_ACCESS_TOKEN_SECRET", defaultJWTSecret},
	{"jwt.access_token_expiry_minutes", "JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 60},

	{"admin.username", "ADMIN_USERNAME", "admin"},
	{"admin.email", "ADMIN_EMAIL", "admin@clubhub.local"},
	{"admin.password", "ADMIN_PASSWORD", "admin12345"},

	{"rate_limit.per_second", "RATE_LIMIT_PER_SECOND", 5},
	{"rate_limit.burst", "RATE_LIMIT_BURST", 10},
}

// LoadConfig reads the configuration from the working directory. Sources in
// increasing precedence: defaults, config.yaml, .env, process environment.
func LoadConfig() (*Config, error) {
	cfg, err := LoadFrom(".")
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return cfg, nil
}

// LoadFrom is LoadConfig with config.yaml and .env looked up in dir.
func LoadFrom(dir string) (*Config, error) {
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		slog.Debug("no .env file loaded, relying on system environment variables", "dir", dir)
	}

	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		if err := v.BindEnv(s.key, s.env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", s.env, err)
		}
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config.yaml: %w", err)
		}
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv(v, "app.env")
	cfg.App.Port = getEnv(v, "app.port")
	cfg.App.FrontendURL = getEnv(v, "app.frontend_url")
	cfg.App.UploadDir = getEnv(v, "app.upload_dir")
	cfg.App.PublicBaseURL = getEnv(v, "app.public_base_url")

	// --- Database Configuration ---
	cfg.DB.Driver = strings.ToLower(getEnv(v, "db.driver"))
	cfg.DB.Host = getEnv(v, "db.host")
	cfg.DB.Port = getEnv(v, "db.port")
	cfg.DB.User = getEnv(v, "db.user")
	cfg.DB.Password = getEnv(v, "db.password")
	cfg.DB.Name = getEnv(v, "db.name")
	cfg.DB.SSLMode = getEnv(v, "db.sslmode")
	cfg.DB.Path = getEnv(v, "db.path")

	// --- JWT Configuration ---
	cfg.JWT.AccessTokenSecret = getEnv(v, "jwt.access_token_secret")

	var err error
	if cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt(v, "jwt.access_token_expiry_minutes"); err != nil {
		return nil, err
	}

	cfg.Admin.Username = getEnv(v, "admin.username")
	cfg.Admin.Email = getEnv(v, "admin.email")
	cfg.Admin.Password = getEnv(v, "admin.password")

	if cfg.RateLimit.PerSecond, err = getEnvAsInt(v, "rate_limit.per_second"); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = getEnvAsInt(v, "rate_limit.burst"); err != nil {
		return nil, err
	}

	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER: expected postgres or sqlite, got '%s'", cfg.DB.Driver)
	}
	if cfg.JWT.AccessTokenSecret == defaultJWTSecret {
		slog.Warn("using the default JWT secret; set JWT_ACCESS_TOKEN_SECRET for production")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		slog.Warn("using the default DB password in production; set DB_PASSWORD")
	}
	return cfg, nil
}

// Dialector picks the gorm driver for cfg.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.DB.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DB.Path + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	slog.Info("connected to database", "driver", cfg.DB.Driver)
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		if _, err = ConnectDB(*loadedCfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		panic("configuration not loaded; call config.Initialize() first")
	}
	return appConfig
}

func getEnv(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

func getEnvAsInt(v *viper.Viper, key string) (int, error) {
	raw := getEnv(v, key)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: expected integer, got '%s'", envName(key), raw)
	}
	return value, nil
}

func envName(key string) string {
	for _, s := range settings {
		if s.key == key {
			return s.env
		}
	}
	return key
}
