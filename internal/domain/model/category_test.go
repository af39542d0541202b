package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory_TrimsName(t *testing.T) {
	c, err := NewCategory(uuid.Nil, "  Electrónica  ")
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", c.Name())

	same, err := NewCategory(uuid.Nil, "Electrónica")
	require.NoError(t, err)
	assert.Equal(t, same.Name(), c.Name())
}

func TestNewCategory_BlankName(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n", "      "} {
		_, err := NewCategory(uuid.Nil, name)
		require.Error(t, err, "name=%q", name)
		assert.True(t, IsValidation(err))
		assert.Equal(t, MsgCategoryNameRequired, err.Error())
	}
}

func TestNewCategory_MaxLength(t *testing.T) {
	_, err := NewCategory(uuid.Nil, strings.Repeat("a", MaxCategoryNameLength))
	require.NoError(t, err)

	_, err = NewCategory(uuid.Nil, strings.Repeat("a", MaxCategoryNameLength+1))
	require.Error(t, err)
	assert.Equal(t, MsgCategoryNameMaxLength, err.Error())

	// El límite se cuenta en caracteres, no en bytes.
	_, err = NewCategory(uuid.Nil, strings.Repeat("ñ", MaxCategoryNameLength))
	require.NoError(t, err)

	// Los espacios externos no cuentan para el largo.
	_, err = NewCategory(uuid.Nil, "  "+strings.Repeat("a", MaxCategoryNameLength)+"  ")
	require.NoError(t, err)
}

func TestCategory_WithNameKeepsID(t *testing.T) {
	id := uuid.New()
	c, err := NewCategory(id, "Hogar")
	require.NoError(t, err)

	updated, err := c.WithName("Jardín")
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID())
	assert.Equal(t, "Jardín", updated.Name())
	assert.Equal(t, "Hogar", c.Name(), "el original no cambia")

	_, err = c.WithName("   ")
	require.Error(t, err)
	assert.Equal(t, MsgCategoryNameRequired, err.Error())
}
