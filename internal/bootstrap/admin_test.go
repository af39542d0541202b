package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/auth"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
	"github.com/dropDatabas3/mantenimiento/internal/store/adapters/memory"
)

func setup() (*memory.UserRepo, auth.RegisterService) {
	users := memory.NewUserRepo()
	return users, auth.NewRegisterService(users, password.NewBcrypt(4), nil)
}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	ctx := context.Background()
	users, reg := setup()
	cfg := AdminBootstrapConfig{Users: users, Register: reg, Password: "password"}

	created, err := EnsureAdmin(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	u, err := users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.AdminRole, u.Role())
	assert.True(t, password.Verify("password", u.Password()))

	created, err = EnsureAdmin(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	all, _ := users.FindAll(ctx)
	assert.Len(t, all, 1)
}

func TestEnsureAdmin_KeepsExistingPassword(t *testing.T) {
	ctx := context.Background()
	users, reg := setup()
	_, err := reg.Register(ctx, "admin", "original1", "")
	require.NoError(t, err)

	created, err := EnsureAdmin(ctx, AdminBootstrapConfig{Users: users, Register: reg, Password: "password"})
	require.NoError(t, err)
	assert.False(t, created)

	u, _ := users.FindByUsername(ctx, "admin")
	assert.True(t, password.Verify("original1", u.Password()))
	assert.Equal(t, model.DefaultUserRole, u.Role())
}

func TestEnsureAdmin_CustomUsername(t *testing.T) {
	ctx := context.Background()
	users, reg := setup()

	created, err := EnsureAdmin(ctx, AdminBootstrapConfig{Users: users, Register: reg, Username: "root", Password: "password"})
	require.NoError(t, err)
	assert.True(t, created)
	_, err = users.FindByUsername(ctx, "root")
	assert.NoError(t, err)
}

func TestEnsureAdmin_InvalidConfig(t *testing.T) {
	users, reg := setup()

	_, err := EnsureAdmin(context.Background(), AdminBootstrapConfig{Users: users, Register: reg})
	assert.Error(t, err)

	_, err = EnsureAdmin(context.Background(), AdminBootstrapConfig{Users: users, Register: reg, Password: "123"})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}
