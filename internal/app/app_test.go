package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/mantenimiento/internal/config"
	_ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/memory"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Security.BcryptCost = 4
	cfg.Bootstrap.AdminPassword = "admin-pass"
	return cfg
}

func login(t *testing.T, h http.Handler, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + user + `","password":"` + pass + `"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBuild_MemoryBootstrapsAdmin(t *testing.T) {
	a, err := Build(context.Background(), testConfig())
	require.NoError(t, err)
	defer a.Close()

	rec := login(t, a.Handler, "admin", "admin-pass")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	claims, err := a.Issuer.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "ROLE_ADMIN", claims.Role)
}

func TestBuild_NoBootstrap(t *testing.T) {
	cfg := testConfig()
	cfg.Bootstrap.AdminEnabled = false

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, http.StatusUnauthorized, login(t, a.Handler, "admin", "admin-pass").Code)
}

func TestBuild_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = "cassandra"

	_, err := Build(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestBuild_RedisRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Rate.Backend = "redis"
	cfg.Rate.Redis.Addr = mr.Addr()
	cfg.Rate.Login.Limit = 2
	cfg.Rate.Login.Window = "1m"

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusUnauthorized, login(t, a.Handler, "nadie", "secreto1").Code)
	}
	rec := login(t, a.Handler, "nadie", "secreto1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// readyz incluye el ping a redis
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBuild_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()
	assert.Nil(t, a.Metrics)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, req)
	assert.NotEqual(t, http.StatusOK, rr.Code)
}

func TestBuildIssuer_EdDSA(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Alg = "EdDSA"
	cfg.JWT.AccessTTL = "5m"

	iss, err := BuildIssuer(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, iss.AccessTTL)

	tok, err := iss.Issue("alice", "ROLE_USER")
	require.NoError(t, err)
	c, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Subject)
}

func TestBuildHasher_Unknown(t *testing.T) {
	cfg := testConfig()
	cfg.Security.Hasher = "md5"
	_, err := BuildHasher(cfg)
	assert.Error(t, err)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ReadTimeout = "3s"
	srv := NewHTTPServer(cfg, http.NotFoundHandler())
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.ReadTimeout)
	assert.Equal(t, 15*time.Second, srv.WriteTimeout)
}
