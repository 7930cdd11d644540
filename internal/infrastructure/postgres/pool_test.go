package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/molino-api/pkg/config"
)

func TestApplyPoolLimits(t *testing.T) {
	pc := &pgxpool.Config{}
	applyPoolLimits(pc, config.DBConfig{})
	assert.EqualValues(t, 10, pc.MaxConns, "sin DB_MAX_CONNS se usan 10 conexiones")
	assert.EqualValues(t, 1, pc.MinConns)

	pc = &pgxpool.Config{}
	applyPoolLimits(pc, config.DBConfig{MaxConns: 4})
	assert.EqualValues(t, 4, pc.MaxConns)
}
