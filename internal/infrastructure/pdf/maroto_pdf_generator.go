// Package pdf genera el documento impreso de órdenes de compra y venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Molino            │  ORDEN DE COMPRA/VENTA N°      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TERCERO: Nombre + NIT/CC + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Cant | Und | P.Unit | Total  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Cantidad / Total / Pagado / Saldo                 │
//	│  FOOTER: QR con el número + estado de pago                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/domain/entity"
)

var _ reporting.OrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 94, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPDFGenerator implementa reporting.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(_ context.Context, doc reporting.OrderDocument) ([]byte, error) {
	if doc.Order == nil || doc.Party == nil {
		return nil, fmt.Errorf("pdf: orden o tercero vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(doc.Order.Kind)+" "+doc.Order.Number, true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(doc.Order.Kind, doc.Party))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Order))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(doc.Order))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func documentTitle(kind entity.OrderKind) string {
	if kind == entity.OrderKindSale {
		return "ORDEN DE VENTA"
	}
	return "ORDEN DE COMPRA"
}

// headerRow: nombre del molino (izq) y tipo + número + fecha (der).
func headerRow(doc reporting.OrderDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(doc.CompanyName, "Molino"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(documentTitle(doc.Order.Kind), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+doc.Order.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partyRow(kind entity.OrderKind, p *entity.Party) core.Row {
	label := "PROVEEDOR"
	if kind == entity.OrderKindSale {
		label = "CLIENTE"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   Tel: %s   |   Dirección: %s",
				nonEmpty(p.TaxID, "—"),
				nonEmpty(p.Phone, "—"),
				nonEmpty(p.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Cant.", 1, align.Right),
		h("Und", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRows(lines []reporting.OrderLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.ProductCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(formatQuantity(l.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(l.UnitMeasure, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.LineTotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(o *entity.Order) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Cantidad total:", 0),
			label("Total:", 6),
			label("Pagado:", 12),
			label("SALDO:", 18),
		),
		col.New(3).Add(
			value(formatQuantity(o.TotalQuantity), 0),
			value("$"+formatMoney(o.TotalAmount), 6),
			value("$"+formatMoney(o.PaidAmount), 12),
			text.New("$"+formatMoney(o.Balance()), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 18,
			}),
		),
	)
}

// footerRow: QR con el número de la orden (para bodega) y estado de pago.
func footerRow(o *entity.Order) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr(o.Number, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Estado de pago: "+string(o.PaymentStatus), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New(nonEmpty(o.Notes, ""), props.Text{Size: 8, Top: 14, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney redondea a pesos e inserta puntos de miles: 1500000 → "1.500.000".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}

// formatQuantity muestra hasta dos decimales con coma decimal: 1250.5 → "1.250,50".
func formatQuantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return formatMoney(d)
	}
	whole := d.Truncate(0)
	frac := d.Sub(whole).Abs().StringFixed(2)[2:]
	return formatMoney(whole) + "," + frac
}
