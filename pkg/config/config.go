package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados para los blobs persistidos.
const (
	StorageBolt     = "bolt"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Log      LogConfig
	Storage  StorageConfig
	DB       DBConfig
	Auth     AuthConfig
	Simulate SimulationConfig
	Jobs     JobsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	DocsEnabled bool // sirve /docs desde ./docs/swagger.json
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// LogConfig nivel y archivo opcional con rotación.
type LogConfig struct {
	Level string
	File  string
}

// StorageConfig dónde viven los blobs persistidos (sesión y libro de stock).
type StorageConfig struct {
	Driver   string // bolt, postgres, memory
	BoltPath string
}

// DBConfig configuración de PostgreSQL (solo con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AuthConfig credencial simulada del panel.
type AuthConfig struct {
	AdminEmail        string
	AdminPasswordHash string // bcrypt; vacío = solo se valida el email
}

// SimulationConfig latencias artificiales que imitan una API remota.
type SimulationConfig struct {
	LoadDelay  time.Duration
	WriteDelay time.Duration
	AuthDelay  time.Duration
}

// JobsConfig tareas programadas.
type JobsConfig struct {
	StockDigestCron string // vacío = deshabilitado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, STORAGE_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "mistica-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			DocsEnabled: getBool(v, "HTTP_DOCS_ENABLED", false),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "mistica-api"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getString(v, "STORAGE_DRIVER", StorageBolt)),
			BoltPath: getString(v, "STORAGE_BOLT_PATH", "data/mistica.db"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "mistica"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			AdminEmail:        getString(v, "AUTH_ADMIN_EMAIL", "admin@mistica.com"),
			AdminPasswordHash: getString(v, "AUTH_ADMIN_PASSWORD_HASH", ""),
		},
		Simulate: SimulationConfig{
			LoadDelay:  getMillis(v, "SIM_LOAD_DELAY_MS", 1000),
			WriteDelay: getMillis(v, "SIM_WRITE_DELAY_MS", 500),
			AuthDelay:  getMillis(v, "SIM_AUTH_DELAY_MS", 1000),
		},
		Jobs: JobsConfig{
			StockDigestCron: getString(v, "JOBS_STOCK_DIGEST_CRON", "@daily"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageBolt, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER desconocido: %q", c.Storage.Driver)
	}
	if c.Storage.Driver == StorageBolt && c.Storage.BoltPath == "" {
		return fmt.Errorf("STORAGE_BOLT_PATH requerido con driver bolt")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return cast.ToString(v.Get(key))
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			return def
		}
		return n
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func getMillis(v *viper.Viper, key string, def int) time.Duration {
	ms := getInt(v, key, def)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}
