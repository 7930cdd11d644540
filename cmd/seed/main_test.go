package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

const sample = "codigo;nombre;tipo;precio;unidad;existencia;minimo;maximo\n" +
	"pad-01;Arroz paddy verde;MP;1.850,00;kg;12000;2000;0\n" +
	"BLA-01;Arroz blanco 'Excelso';PT;4200.5;;650;100;5000\n"

func TestParseCatalog(t *testing.T) {
	rows, err := parseCatalog(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "PAD-01", rows[0].Code)
	assert.Equal(t, entity.ProductTypeRawMaterial, rows[0].Type)
	assert.Equal(t, "1850", rows[0].Price.String())
	assert.Equal(t, "12000", rows[0].Quantity.String())

	assert.Equal(t, entity.ProductTypeFinishedGood, rows[1].Type)
	assert.Equal(t, "kg", rows[1].Unit, "unidad vacía queda en kg")
	assert.Equal(t, "4200.5", rows[1].Price.String())
}

func TestParseCatalog_IDsDeterministas(t *testing.T) {
	a, err := parseCatalog(strings.NewReader(sample))
	require.NoError(t, err)
	b, err := parseCatalog(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, a[0].ID, b[0].ID)
	assert.NotEqual(t, a[0].ID, a[1].ID)
}

func TestParseCatalog_Errores(t *testing.T) {
	header := "codigo;nombre;tipo;precio;unidad;existencia;minimo;maximo\n"
	cases := map[string]string{
		"tipo desconocido":  header + "X;Algo;ZZ;1;kg;1;0;0\n",
		"negativo":          header + "X;Algo;MP;1;kg;-5;0;0\n",
		"max menor que min": header + "X;Algo;MP;1;kg;5;10;8\n",
		"código repetido":   header + "X;Algo;MP;1;kg;5;0;0\nx;Otro;MP;1;kg;5;0;0\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCatalog(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalog_ISO88591(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(
		"codigo;nombre;tipo;precio;unidad;existencia;minimo;maximo\nSAL-01;Salvado de arroz año;SP;300;kg;0;0;0\n")
	require.NoError(t, err)

	rows, err := parseCatalog(transform.NewReader(strings.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Salvado de arroz año", rows[0].Name)
}

func TestWriteSQL(t *testing.T) {
	rows, err := parseCatalog(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, rows, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	out := buf.String()

	assert.Contains(t, out, "'Arroz blanco ''Excelso'''")
	assert.Contains(t, out, "ON CONFLICT (product_id) DO NOTHING;")
	assert.Equal(t, 2, strings.Count(out, "INSERT INTO stock_ledger"))
}
