package model

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func validProductFields() ProductFields {
	return ProductFields{
		Name:        "Mouse",
		Description: strPtr("Inalámbrico"),
		Price:       price("19.90"),
		CategoryID:  uuid.New(),
	}
}

func TestNewProduct_Valid(t *testing.T) {
	f := validProductFields()
	f.Name = "  Mouse  "
	p, err := NewProduct(uuid.Nil, f)
	require.NoError(t, err)
	assert.Equal(t, "Mouse", p.Name())
	assert.Equal(t, "Inalámbrico", *p.Description())
	assert.True(t, p.Price().Equal(decimal.RequireFromString("19.90")))
	assert.Equal(t, f.CategoryID, p.CategoryID())
}

func TestNewProduct_NilDescription(t *testing.T) {
	f := validProductFields()
	f.Description = nil
	p, err := NewProduct(uuid.Nil, f)
	require.NoError(t, err)
	assert.Nil(t, p.Description())
	assert.False(t, p.HasDescription())
}

func TestNewProduct_NameRules(t *testing.T) {
	f := validProductFields()
	f.Name = "   "
	_, err := NewProduct(uuid.Nil, f)
	require.Error(t, err)
	assert.Equal(t, MsgProductNameRequired, err.Error())

	f.Name = strings.Repeat("x", MaxProductNameLength)
	_, err = NewProduct(uuid.Nil, f)
	require.NoError(t, err)

	f.Name = strings.Repeat("x", MaxProductNameLength+1)
	_, err = NewProduct(uuid.Nil, f)
	require.Error(t, err)
	assert.Equal(t, MsgProductNameMaxLength, err.Error())
}

func TestNewProduct_DescriptionMaxLength(t *testing.T) {
	f := validProductFields()
	f.Description = strPtr(strings.Repeat("d", MaxProductDescriptionLength))
	_, err := NewProduct(uuid.Nil, f)
	require.NoError(t, err)

	f.Description = strPtr(strings.Repeat("d", MaxProductDescriptionLength+1))
	_, err = NewProduct(uuid.Nil, f)
	require.Error(t, err)
	assert.Equal(t, MsgProductDescriptionMaxLen, err.Error())
}

func TestNewProduct_Price(t *testing.T) {
	cases := []struct {
		price *decimal.Decimal
		ok    bool
	}{
		{nil, false},
		{price("0"), false},
		{price("0.00"), false},
		{price("-1"), false},
		{price("-0.01"), false},
		{price("0.01"), true},
		{price("1"), true},
		{price("99999.99"), true},
	}
	for _, tc := range cases {
		f := validProductFields()
		f.Price = tc.price
		_, err := NewProduct(uuid.Nil, f)
		if tc.ok {
			assert.NoError(t, err, "price=%v", tc.price)
			continue
		}
		require.Error(t, err, "price=%v", tc.price)
		assert.Equal(t, MsgProductPricePositive, err.Error())
	}
}

func TestNewProduct_PriceRange(t *testing.T) {
	cases := []struct {
		price string
		ok    bool
	}{
		{"1e200000000", false},
		{"1e-200000000", false},
		{"1e19", false},
		{"0.00000000001", false},
		{"1e18", false},
		{"999999999999999999", true},
		{"0.0000000001", true},
		{"12.5e3", true},
	}
	for _, tc := range cases {
		done := make(chan error, 1)
		go func() {
			f := validProductFields()
			f.Price = price(tc.price)
			_, err := NewProduct(uuid.Nil, f)
			done <- err
		}()

		select {
		case err := <-done:
			if tc.ok {
				assert.NoError(t, err, "price=%s", tc.price)
				continue
			}
			require.Error(t, err, "price=%s", tc.price)
			assert.Equal(t, MsgProductPriceRange, err.Error())
		case <-time.After(2 * time.Second):
			t.Fatalf("NewProduct no terminó para price=%s", tc.price)
		}
	}
}

func TestNewProduct_CategoryRequired(t *testing.T) {
	f := validProductFields()
	f.CategoryID = uuid.Nil
	_, err := NewProduct(uuid.Nil, f)
	require.Error(t, err)
	assert.Equal(t, MsgProductCategoryRequired, err.Error())
}

func TestNewProduct_ValidationOrder(t *testing.T) {
	// Todo inválido: se reporta el nombre primero.
	f := ProductFields{Name: "", Description: strPtr(strings.Repeat("d", 501)), Price: price("0")}
	_, err := NewProduct(uuid.Nil, f)
	require.Error(t, err)
	assert.Equal(t, MsgProductNameRequired, err.Error())

	// Nombre ok: sigue la descripción antes que el precio.
	f.Name = "Teclado"
	_, err = NewProduct(uuid.Nil, f)
	assert.Equal(t, MsgProductDescriptionMaxLen, err.Error())

	// Descripción ok: precio antes que categoría.
	f.Description = nil
	_, err = NewProduct(uuid.Nil, f)
	assert.Equal(t, MsgProductPricePositive, err.Error())
}

func TestProduct_WithDataIsFullReplace(t *testing.T) {
	id := uuid.New()
	p, err := NewProduct(id, validProductFields())
	require.NoError(t, err)

	patch := ProductFields{Name: "Monitor", Price: price("150"), CategoryID: uuid.New()}
	updated, err := p.WithData(patch)
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID())
	assert.Equal(t, "Monitor", updated.Name())
	assert.Nil(t, updated.Description(), "la descripción previa no se conserva")

	_, err = p.WithData(ProductFields{Name: "Monitor", Price: price("0"), CategoryID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, MsgProductPricePositive, err.Error())
}

func TestProduct_DescriptionIsCopied(t *testing.T) {
	desc := "original"
	f := validProductFields()
	f.Description = &desc
	p, err := NewProduct(uuid.Nil, f)
	require.NoError(t, err)

	desc = "mutado"
	*p.Description() = "otro"
	assert.Equal(t, "original", *p.Description())
}
