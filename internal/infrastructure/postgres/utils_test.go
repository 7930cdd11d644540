package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestLimitOffset(t *testing.T) {
	args := []any{"PURCHASE"}
	assert.Equal(t, " LIMIT $2 OFFSET $3", limitOffset(&args, 20, 40))
	assert.Equal(t, []any{"PURCHASE", 20, 40}, args)

	var none []any
	assert.Equal(t, "", limitOffset(&none, 0, 0), "sin límite no agrega cláusulas")
	assert.Empty(t, none)
}

func TestPgErrorCodes(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isCheckViolation(errors.New("otro error")))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	if p := nullable("m-1"); assert.NotNil(t, p) {
		assert.Equal(t, "m-1", *p)
	}
}
