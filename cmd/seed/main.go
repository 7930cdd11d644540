// seed genera un script SQL para cargar el catálogo del molino (productos y su entrada en el libro
// de existencias) a partir de la exportación CSV del sistema anterior.
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual. El archivo viene en ISO-8859-1,
// separado por ';' con encabezado: codigo;nombre;tipo;precio;unidad;existencia;minimo;maximo
// Escribe: internal/infrastructure/postgres/seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// catalogNamespace hace deterministas los IDs: volver a correr el seed no duplica productos.
var catalogNamespace = uuid.MustParse("6f1c1d7e-4f0a-4b8e-9a8e-2f6d3c1b9a10")

type catalogRow struct {
	ID       string
	Code     string
	Name     string
	Type     entity.ProductType
	Price    decimal.Decimal
	Unit     string
	Quantity decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseCatalog(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows, time.Now().UTC()); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

// parseCatalog lee el CSV ya decodificado a UTF-8. Los errores indican la línea del archivo.
func parseCatalog(r io.Reader) ([]catalogRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []catalogRow
	seen := make(map[string]bool)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < 8 {
			return nil, fmt.Errorf("línea %d: se esperaban 8 columnas, hay %d", line, len(rec))
		}
		code := strings.ToUpper(strings.TrimSpace(rec[0]))
		if code == "" {
			continue
		}
		if seen[code] {
			return nil, fmt.Errorf("línea %d: código %s repetido", line, code)
		}
		seen[code] = true

		typ := legacyType(rec[2])
		if !typ.Valid() {
			return nil, fmt.Errorf("línea %d: tipo desconocido %q", line, rec[2])
		}
		row := catalogRow{
			ID:   uuid.NewSHA1(catalogNamespace, []byte(code)).String(),
			Code: code,
			Name: strings.TrimSpace(rec[1]),
			Type: typ,
			Unit: strings.ToLower(strings.TrimSpace(rec[4])),
		}
		if row.Unit == "" {
			row.Unit = "kg"
		}
		fields := []struct {
			dst  *decimal.Decimal
			raw  string
			name string
		}{
			{&row.Price, rec[3], "precio"},
			{&row.Quantity, rec[5], "existencia"},
			{&row.Min, rec[6], "mínimo"},
			{&row.Max, rec[7], "máximo"},
		}
		for _, fl := range fields {
			d, err := parseAmount(fl.raw)
			if err != nil {
				return nil, fmt.Errorf("línea %d: %s inválido %q", line, fl.name, fl.raw)
			}
			if d.IsNegative() {
				return nil, fmt.Errorf("línea %d: %s no puede ser negativo", line, fl.name)
			}
			*fl.dst = d
		}
		if row.Max.IsPositive() && row.Max.LessThan(row.Min) {
			return nil, fmt.Errorf("línea %d: máximo menor que mínimo", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// legacyType traduce las abreviaturas del sistema anterior.
func legacyType(s string) entity.ProductType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MP", "PADDY", "RAW_MATERIAL":
		return entity.ProductTypeRawMaterial
	case "PT", "BLANCO", "FINISHED_GOOD":
		return entity.ProductTypeFinishedGood
	case "SP", "SUBPRODUCTO", "BY_PRODUCT":
		return entity.ProductTypeByProduct
	}
	return entity.ProductType(s)
}

// parseAmount acepta "1.250,50" (formato local) y "1250.50". Vacío = 0.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func writeSQL(w io.Writer, rows []catalogRow, now time.Time) error {
	ts := now.Format(time.RFC3339)
	var b strings.Builder
	b.WriteString("-- Catálogo del molino generado desde la exportación CSV del sistema anterior\n\n")
	b.WriteString("-- 1. Productos\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "INSERT INTO products (id, code, name, type, unit_price, unit_measure, description, active, created_at, updated_at)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', '%s', %s, '%s', '', TRUE, '%s', '%s')\n",
			r.ID, escapeSQL(r.Code), escapeSQL(r.Name), r.Type, r.Price.String(), escapeSQL(r.Unit), ts, ts)
		b.WriteString("ON CONFLICT (code) DO NOTHING;\n")
	}
	b.WriteString("\n-- 2. Libro de existencias (solo productos sin entrada)\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "INSERT INTO stock_ledger (product_id, quantity, min_level, max_level, updated_at)\n")
		fmt.Fprintf(&b, "SELECT id, %s, %s, %s, '%s' FROM products WHERE code = '%s'\n",
			r.Quantity.String(), r.Min.String(), r.Max.String(), ts, escapeSQL(r.Code))
		b.WriteString("ON CONFLICT (product_id) DO NOTHING;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
