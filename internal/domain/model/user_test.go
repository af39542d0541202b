package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultRole(t *testing.T) {
	for _, role := range []string{"", "  ", "\t"} {
		u, err := NewUser(uuid.Nil, "newuser", "plain12", role)
		require.NoError(t, err)
		assert.Equal(t, DefaultUserRole, u.Role())
	}
	assert.True(t, ValidRole(DefaultUserRole))
	assert.True(t, ValidRole(AdminRole))
}

func TestNewUser_RolePattern(t *testing.T) {
	valid := []string{"ROLE_ADMIN", "ROLE_USER", "ROLE_SUPER_ADMIN", "  ROLE_X  ", "ROLE__"}
	for _, r := range valid {
		u, err := NewUser(uuid.Nil, "newuser", "plain12", r)
		require.NoError(t, err, "role=%q", r)
		assert.Equal(t, strings.TrimSpace(r), u.Role())
	}

	invalids := []string{"admin", "ROLE_", "role_admin", "ROLE_admin", "ROLE-ADMIN", "ROLE_ADMIN1", "XROLE_ADMIN", "ROLE_ ADMIN"}
	for _, r := range invalids {
		_, err := NewUser(uuid.Nil, "newuser", "plain12", r)
		require.Error(t, err, "role=%q", r)
		assert.Equal(t, MsgUserRoleInvalidFormat, err.Error())
	}
}

func TestNewUser_Username(t *testing.T) {
	for _, name := range []string{"", "   "} {
		_, err := NewUser(uuid.Nil, name, "plain12", "")
		require.Error(t, err)
		assert.Equal(t, MsgUserUsernameRequired, err.Error())
	}

	for _, name := range []string{"ab", " ab ", strings.Repeat("u", MaxUsernameLength+1)} {
		_, err := NewUser(uuid.Nil, name, "plain12", "")
		require.Error(t, err, "username=%q", name)
		assert.Equal(t, MsgUserUsernameLength, err.Error())
	}

	for _, name := range []string{"abc", strings.Repeat("u", MaxUsernameLength)} {
		_, err := NewUser(uuid.Nil, name, "plain12", "")
		require.NoError(t, err, "username=%q", name)
	}

	u, err := NewUser(uuid.Nil, "  newuser  ", "plain12", "")
	require.NoError(t, err)
	assert.Equal(t, "newuser", u.Username())
}

func TestNewUser_Password(t *testing.T) {
	for _, pwd := range []string{"", "      "} {
		_, err := NewUser(uuid.Nil, "newuser", pwd, "")
		require.Error(t, err)
		assert.Equal(t, MsgUserPasswordRequired, err.Error(), "blank nunca es 'too long'")
	}

	for _, pwd := range []string{"12345", strings.Repeat("p", MaxPasswordLength+1)} {
		_, err := NewUser(uuid.Nil, "newuser", pwd, "")
		require.Error(t, err)
		assert.Equal(t, MsgUserPasswordLength, err.Error())
	}

	for _, pwd := range []string{"123456", strings.Repeat("p", MaxPasswordLength)} {
		_, err := NewUser(uuid.Nil, "newuser", pwd, "")
		require.NoError(t, err)
	}
}

func TestNewUser_ValidationOrder(t *testing.T) {
	_, err := NewUser(uuid.Nil, "x", "", "bad")
	require.Error(t, err)
	assert.Equal(t, MsgUserUsernameLength, err.Error())

	_, err = NewUser(uuid.Nil, "newuser", "", "bad")
	assert.Equal(t, MsgUserPasswordRequired, err.Error())

	_, err = NewUser(uuid.Nil, "newuser", "plain12", "bad")
	assert.Equal(t, MsgUserRoleInvalidFormat, err.Error())
}

func TestRestoreUser_AcceptsLongHash(t *testing.T) {
	hash := "$argon2id$v=19$m=65536,t=3,p=1$" + strings.Repeat("A", 150)
	u, err := RestoreUser(uuid.New(), "admin", hash, AdminRole)
	require.NoError(t, err)
	assert.Equal(t, hash, u.Password())

	_, err = RestoreUser(uuid.New(), "admin", "", AdminRole)
	require.Error(t, err)
	assert.Equal(t, MsgUserPasswordRequired, err.Error())
}

func TestErrors(t *testing.T) {
	nf := &NotFoundError{Resource: ResourceProduct, ID: "abc"}
	assert.Equal(t, "Producto no encontrado: abc", nf.Error())
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))
	assert.Equal(t, "Credenciales inválidas", ErrInvalidCredentials.Error())
}
