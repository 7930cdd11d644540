package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/molino-api/internal/application/ports"
)

func TestNormalizeKeys_OrdenaYQuitaDuplicados(t *testing.T) {
	got := ports.NormalizeKeys([]string{"stock:b", "", "stock:a", "stock:b", "stock:c", "stock:a"})
	assert.Equal(t, []string{"stock:a", "stock:b", "stock:c"}, got)
}

func TestNormalizeKeys_Vacio(t *testing.T) {
	assert.Empty(t, ports.NormalizeKeys(nil))
}
