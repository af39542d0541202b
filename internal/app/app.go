// Package app arma el servicio a partir de la config: store, issuer, hasher,
// rate limiters, services, controllers y router.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/mantenimiento/internal/bootstrap"
	"github.com/dropDatabas3/mantenimiento/internal/config"
	"github.com/dropDatabas3/mantenimiento/internal/http/controllers"
	mw "github.com/dropDatabas3/mantenimiento/internal/http/middlewares"
	"github.com/dropDatabas3/mantenimiento/internal/http/router"
	"github.com/dropDatabas3/mantenimiento/internal/http/services"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/health"
	jwtx "github.com/dropDatabas3/mantenimiento/internal/jwt"
	"github.com/dropDatabas3/mantenimiento/internal/metrics"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"
	"github.com/dropDatabas3/mantenimiento/internal/rate"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
	"github.com/dropDatabas3/mantenimiento/internal/store"
	"github.com/dropDatabas3/mantenimiento/internal/util"
)

const devSecret = "dev-only-secret-change-me-0123456789abcdef"

// App es el servicio cableado.
type App struct {
	Handler  http.Handler
	Store    store.AdapterConnection
	Issuer   *jwtx.Issuer
	Services *services.Services
	Metrics  *metrics.Metrics // nil si metrics.enabled=false

	closers []func() error
}

// Close libera store y clientes externos. Devuelve el primer error.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build crea la App. Si falla a mitad de camino cierra lo que ya abrió.
func Build(ctx context.Context, cfg *config.Config) (_ *App, err error) {
	log := logger.From(ctx).With(logger.Component("app"), logger.Op("Build"))
	a := &App{}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	// 1. Store
	conn, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Store = conn
	a.closers = append(a.closers, conn.Close)
	log.Info("store ready",
		logger.String("driver", conn.Name()),
		logger.String("dsn", util.MaskDSN(cfg.Storage.DSN)),
	)

	// 2. Seguridad
	a.Issuer, err = BuildIssuer(cfg)
	if err != nil {
		return nil, err
	}
	hasher, err := BuildHasher(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
	}

	// 3. Rate limiting
	var (
		loginRL, registerRL mw.RateLimiter
		rateCheck           func(context.Context) error
	)
	if cfg.Rate.Enabled {
		lim, err := buildLimiters(cfg)
		if err != nil {
			return nil, err
		}
		loginRL, registerRL = lim.login, lim.register
		if lim.client != nil {
			a.closers = append(a.closers, lim.client.Close)
			rateCheck = func(ctx context.Context) error { return lim.client.Ping(ctx).Err() }
		}
		log.Info("rate limiting enabled", logger.String("backend", cfg.Rate.Backend))
	}

	// 4. Services
	sd := services.Deps{
		Categories: conn.Categories(),
		Products:   conn.Products(),
		Users:      conn.Users(),
		Hasher:     hasher,
		Issuer:     a.Issuer,
		HealthDeps: health.Deps{
			StorageCheck: conn.Ping,
			RateCheck:    rateCheck,
			Version:      os.Getenv("SERVICE_VERSION"),
		},
	}
	if a.Metrics != nil {
		sd.Metrics = a.Metrics
	}
	a.Services = services.New(sd)

	// 5. Admin inicial
	if cfg.Bootstrap.AdminEnabled {
		if err := ensureAdmin(ctx, cfg, a.Services, conn); err != nil {
			return nil, err
		}
	}

	// 6. Router
	a.Handler = router.New(router.Deps{
		Controllers:     controllers.New(a.Services),
		Verifier:        a.Issuer,
		CORSOrigins:     cfg.Server.CORSAllowedOrigins,
		TrustProxy:      cfg.Server.TrustProxyHeaders,
		Metrics:         a.Metrics,
		LoginLimiter:    loginRL,
		RegisterLimiter: registerRL,
	})
	return a, nil
}

// OpenStore abre la conexión del driver configurado.
func OpenStore(ctx context.Context, cfg *config.Config) (store.AdapterConnection, error) {
	conn, err := store.OpenAdapter(ctx, store.AdapterConfig{
		Name:            cfg.Storage.Driver,
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: config.Dur(cfg.Storage.ConnMaxLifetime, 30*time.Minute),
	})
	if err != nil {
		return nil, fmt.Errorf("app: open store: %w", err)
	}
	return conn, nil
}

// BuildIssuer crea el issuer con el algoritmo y TTLs de la config.
// Fuera de prod, un secreto HS256 vacío usa devSecret.
func BuildIssuer(cfg *config.Config) (*jwtx.Issuer, error) {
	secret := cfg.JWT.Secret
	if secret == "" && !cfg.IsProd() {
		secret = devSecret
		logger.L().Warn("jwt.secret empty, using dev secret", logger.Component("app"))
	}
	ks, err := jwtx.NewKeySet(cfg.JWT.Alg, secret, cfg.JWT.Ed25519Seed, cfg.JWT.KID)
	if err != nil {
		return nil, fmt.Errorf("app: jwt keys: %w", err)
	}
	iss := jwtx.NewIssuer(cfg.JWT.Issuer, ks)
	iss.AccessTTL = config.Dur(cfg.JWT.AccessTTL, time.Hour)
	iss.Leeway = config.Dur(cfg.JWT.Leeway, 0)
	return iss, nil
}

// BuildHasher crea el hasher de contraseñas configurado.
func BuildHasher(cfg *config.Config) (password.Hasher, error) {
	h, err := password.New(cfg.Security.Hasher, cfg.Security.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("app: password hasher: %w", err)
	}
	return h, nil
}

// ─── Rate limiting ───

type limiters struct {
	login    mw.RateLimiter
	register mw.RateLimiter
	client   *rdb.Client // nil con backend memory
}

func buildLimiters(cfg *config.Config) (limiters, error) {
	loginWin := config.Dur(cfg.Rate.Login.Window, time.Minute)
	registerWin := config.Dur(cfg.Rate.Register.Window, time.Minute)

	switch cfg.Rate.Backend {
	case "", "memory":
		return limiters{
			login:    rateAdapter{rate.NewMemoryLimiter("login:", cfg.Rate.Login.Limit, loginWin)},
			register: rateAdapter{rate.NewMemoryLimiter("register:", cfg.Rate.Register.Limit, registerWin)},
		}, nil
	case "redis":
		client := rdb.NewClient(&rdb.Options{
			Addr:     cfg.Rate.Redis.Addr,
			Password: cfg.Rate.Redis.Password,
			DB:       cfg.Rate.Redis.DB,
		})
		prefix := cfg.Rate.Redis.Prefix
		if prefix == "" {
			prefix = "rl:"
		}
		return limiters{
			login:    rateAdapter{rate.NewRedisLimiter(client, prefix+"login:", cfg.Rate.Login.Limit, loginWin)},
			register: rateAdapter{rate.NewRedisLimiter(client, prefix+"register:", cfg.Rate.Register.Limit, registerWin)},
			client:   client,
		}, nil
	default:
		return limiters{}, fmt.Errorf("app: unknown rate.backend %q", cfg.Rate.Backend)
	}
}

// rateAdapter expone un rate.Limiter como mw.RateLimiter.
type rateAdapter struct{ l rate.Limiter }

func (a rateAdapter) Allow(ctx context.Context, key string) (mw.RateLimitResult, error) {
	r, err := a.l.Allow(ctx, key)
	return mw.RateLimitResult(r), err
}

// ─── Bootstrap ───

func ensureAdmin(ctx context.Context, cfg *config.Config, svcs *services.Services, conn store.AdapterConnection) error {
	pass := cfg.Bootstrap.AdminPassword
	if pass == "" {
		// Validate ya exige contraseña en prod.
		pass = "password"
		logger.From(ctx).Warn("bootstrap admin without configured password, using dev default",
			logger.Component("app"))
	}
	_, err := bootstrap.EnsureAdmin(ctx, bootstrap.AdminBootstrapConfig{
		Users:    conn.Users(),
		Register: svcs.Auth.Register,
		Username: cfg.Bootstrap.AdminUsername,
		Password: pass,
	})
	if err != nil {
		return fmt.Errorf("app: bootstrap admin: %w", err)
	}
	return nil
}

// NewHTTPServer crea el http.Server con los timeouts de la config.
func NewHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       config.Dur(cfg.Server.ReadTimeout, 10*time.Second),
		WriteTimeout:      config.Dur(cfg.Server.WriteTimeout, 15*time.Second),
		IdleTimeout:       60 * time.Second,
	}
}
