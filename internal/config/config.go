// Package config carga la configuración del servicio desde YAML y la pisa
// con variables de entorno. El .env se carga antes, en cmd/.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | prod | test
		Env  string `yaml:"env"`
		Name string `yaml:"name"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		ReadTimeout        string   `yaml:"read_timeout"`
		WriteTimeout       string   `yaml:"write_timeout"`
		ShutdownTimeout    string   `yaml:"shutdown_timeout"`
		// Solo detrás de un proxy que reescriba X-Forwarded-For.
		TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
	} `yaml:"server"`

	Storage struct {
		// memory | postgres
		Driver          string `yaml:"driver"`
		DSN             string `yaml:"dsn"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		MigrationsDir   string `yaml:"migrations_dir"`
	} `yaml:"storage"`

	JWT struct {
		// HS256 | EdDSA
		Alg    string `yaml:"alg"`
		Secret string `yaml:"secret"`
		// Ed25519Seed: 32 bytes en base64 estándar. Vacío con EdDSA = clave efímera.
		Ed25519Seed string `yaml:"ed25519_seed"`
		KID         string `yaml:"kid"`
		Issuer      string `yaml:"issuer"`
		AccessTTL   string `yaml:"access_ttl"`
		Leeway      string `yaml:"leeway"`
	} `yaml:"jwt"`

	Security struct {
		// bcrypt | argon2id
		Hasher     string `yaml:"hasher"`
		BcryptCost int    `yaml:"bcrypt_cost"`
	} `yaml:"security"`

	Rate struct {
		Enabled bool `yaml:"enabled"`
		// memory | redis
		Backend string `yaml:"backend"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
		Login struct {
			Limit  int    `yaml:"limit"`
			Window string `yaml:"window"`
		} `yaml:"login"`
		Register struct {
			Limit  int    `yaml:"limit"`
			Window string `yaml:"window"`
		} `yaml:"register"`
	} `yaml:"rate"`

	Bootstrap struct {
		AdminEnabled  bool   `yaml:"admin_enabled"`
		AdminUsername string `yaml:"admin_username"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"bootstrap"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// Default devuelve una config usable en dev sin archivo.
func Default() *Config {
	var c Config
	c.App.Env = "dev"
	c.App.Name = "mantenimiento"
	c.Storage.Driver = "memory"
	c.JWT.Alg = "HS256"
	c.Security.Hasher = "bcrypt"
	c.Rate.Enabled = true
	c.Metrics.Enabled = true
	c.Bootstrap.AdminEnabled = true
	c.applyDefaults()
	return &c
}

// Load lee el YAML en path (si existe), aplica defaults, env y valida.
// path vacío o inexistente equivale a Default().
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(b, c); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	c.applyDefaults()
	c.applyEnvOverrides()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "15s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Storage.MaxOpenConns == 0 {
		c.Storage.MaxOpenConns = 10
	}
	if c.Storage.MaxIdleConns == 0 {
		c.Storage.MaxIdleConns = 2
	}
	if c.Storage.ConnMaxLifetime == "" {
		c.Storage.ConnMaxLifetime = "30m"
	}
	if c.Storage.MigrationsDir == "" {
		c.Storage.MigrationsDir = "migrations/postgres"
	}
	if c.JWT.AccessTTL == "" {
		c.JWT.AccessTTL = "1h"
	}
	if c.Rate.Backend == "" {
		c.Rate.Backend = "memory"
	}
	if c.Rate.Redis.Prefix == "" {
		c.Rate.Redis.Prefix = "rl:"
	}
	if c.Rate.Login.Limit == 0 {
		c.Rate.Login.Limit = 10
	}
	if c.Rate.Login.Window == "" {
		c.Rate.Login.Window = "1m"
	}
	if c.Rate.Register.Limit == 0 {
		c.Rate.Register.Limit = 5
	}
	if c.Rate.Register.Window == "" {
		c.Rate.Register.Window = "10m"
	}
	if c.Bootstrap.AdminUsername == "" {
		c.Bootstrap.AdminUsername = "admin"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}
func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}
func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}

func setStr(dst *string, key string) {
	if v, ok := getEnvStr(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := getEnvInt(key); ok {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := getEnvBool(key); ok {
		*dst = v
	}
}

// applyEnvOverrides: pisa config.yaml con variables de entorno.
func (c *Config) applyEnvOverrides() {
	// APP
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(strings.TrimSpace(v))
	}
	setStr(&c.App.Name, "APP_NAME")

	// SERVER
	setStr(&c.Server.Addr, "SERVER_ADDR")
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}
	setStr(&c.Server.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT")
	setBool(&c.Server.TrustProxyHeaders, "SERVER_TRUST_PROXY_HEADERS")

	// STORAGE
	setStr(&c.Storage.Driver, "STORAGE_DRIVER")
	setStr(&c.Storage.DSN, "STORAGE_DSN")
	setInt(&c.Storage.MaxOpenConns, "STORAGE_MAX_OPEN_CONNS")
	setInt(&c.Storage.MaxIdleConns, "STORAGE_MAX_IDLE_CONNS")
	setStr(&c.Storage.MigrationsDir, "STORAGE_MIGRATIONS_DIR")

	// JWT
	setStr(&c.JWT.Alg, "JWT_ALG")
	setStr(&c.JWT.Secret, "JWT_SECRET")
	setStr(&c.JWT.Ed25519Seed, "JWT_ED25519_SEED")
	setStr(&c.JWT.KID, "JWT_KID")
	setStr(&c.JWT.Issuer, "JWT_ISSUER")
	setStr(&c.JWT.AccessTTL, "JWT_ACCESS_TTL")
	setStr(&c.JWT.Leeway, "JWT_LEEWAY")

	// SECURITY
	setStr(&c.Security.Hasher, "SECURITY_HASHER")
	setInt(&c.Security.BcryptCost, "SECURITY_BCRYPT_COST")

	// RATE
	setBool(&c.Rate.Enabled, "RATE_ENABLED")
	setStr(&c.Rate.Backend, "RATE_BACKEND")
	setStr(&c.Rate.Redis.Addr, "RATE_REDIS_ADDR")
	setStr(&c.Rate.Redis.Password, "RATE_REDIS_PASSWORD")
	setInt(&c.Rate.Redis.DB, "RATE_REDIS_DB")
	setInt(&c.Rate.Login.Limit, "RATE_LOGIN_LIMIT")
	setStr(&c.Rate.Login.Window, "RATE_LOGIN_WINDOW")
	setInt(&c.Rate.Register.Limit, "RATE_REGISTER_LIMIT")
	setStr(&c.Rate.Register.Window, "RATE_REGISTER_WINDOW")

	// BOOTSTRAP
	setBool(&c.Bootstrap.AdminEnabled, "BOOTSTRAP_ADMIN_ENABLED")
	setStr(&c.Bootstrap.AdminUsername, "BOOTSTRAP_ADMIN_USERNAME")
	setStr(&c.Bootstrap.AdminPassword, "BOOTSTRAP_ADMIN_PASSWORD")

	// LOG / METRICS
	setStr(&c.Log.Level, "LOG_LEVEL")
	setBool(&c.Metrics.Enabled, "METRICS_ENABLED")
}

// IsProd indica si el entorno es producción.
func (c *Config) IsProd() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

// Validate revisa valores críticos. En prod exige un secreto HS256 de
// al menos 32 bytes y una contraseña explícita para el admin inicial.
func (c *Config) Validate() error {
	for name, v := range map[string]string{
		"server.read_timeout":       c.Server.ReadTimeout,
		"server.write_timeout":      c.Server.WriteTimeout,
		"server.shutdown_timeout":   c.Server.ShutdownTimeout,
		"storage.conn_max_lifetime": c.Storage.ConnMaxLifetime,
		"jwt.access_ttl":            c.JWT.AccessTTL,
		"jwt.leeway":                c.JWT.Leeway,
		"rate.login.window":         c.Rate.Login.Window,
		"rate.register.window":      c.Rate.Register.Window,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}

	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if c.Storage.DSN == "" {
			return errors.New("config: storage.dsn required for postgres")
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.JWT.Alg {
	case "HS256":
		if c.IsProd() && len(c.JWT.Secret) < 32 {
			return errors.New("config: jwt.secret must be at least 32 bytes in prod")
		}
	case "EdDSA":
		if c.IsProd() && c.JWT.Ed25519Seed == "" {
			return errors.New("config: jwt.ed25519_seed required in prod")
		}
	default:
		return fmt.Errorf("config: unsupported jwt.alg %q", c.JWT.Alg)
	}

	if c.Rate.Enabled && c.Rate.Backend == "redis" && c.Rate.Redis.Addr == "" {
		return errors.New("config: rate.redis.addr required for redis backend")
	}
	if c.Bootstrap.AdminEnabled && c.IsProd() && c.Bootstrap.AdminPassword == "" {
		return errors.New("config: bootstrap.admin_password required in prod")
	}
	return nil
}

// Dur parsea una duración ya validada; vacío o inválido devuelve def.
func Dur(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil {
		return d
	}
	return def
}
