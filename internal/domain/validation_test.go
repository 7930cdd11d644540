package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/domain"
)

func TestValidationResult_VacioEsValido(t *testing.T) {
	r := domain.NewValidationResult()
	assert.True(t, r.Valid())
	assert.NoError(t, r.Err())
}

func TestValidationResult_AcumulaTodosLosErrores(t *testing.T) {
	r := domain.NewValidationResult()
	r.Addf("proveedor %s inactivo", "S1")
	r.Addf("línea %d: cantidad debe ser mayor a 0", 2)

	require.False(t, r.Valid())
	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
	assert.False(t, errors.Is(err, domain.ErrInsufficientStock))

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"proveedor S1 inactivo", "línea 2: cantidad debe ser mayor a 0"}, vErr.Errors)
}

func TestValidationResult_StockInsuficienteEsDetectable(t *testing.T) {
	r := domain.NewValidationResult()
	r.AddInsufficientf("línea %d: requerido %s, disponible %s", 1, "15", "10")

	err := r.Err()
	assert.True(t, r.InsufficientStock())
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "requerido 15, disponible 10")
}
