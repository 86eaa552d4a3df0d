// Package pdf genera el comprobante imprimible de una operación de stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de operación    │  Referencia + Estado         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN / DESTINO / CONTACTO / FECHA PROGRAMADA              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Solicitado | Hecho | P.Unit | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL valorizado + QR con la referencia                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
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

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
)

var _ inventory.SlipRenderer = (*SlipGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// SlipGenerator implementa inventory.SlipRenderer usando Maroto v2.
type SlipGenerator struct {
	author string
}

// NewSlipGenerator author aparece en los metadatos del PDF.
func NewSlipGenerator(author string) *SlipGenerator { return &SlipGenerator{author: author} }

// RenderOperationSlip genera el PDF y devuelve sus bytes.
func (g *SlipGenerator) RenderOperationSlip(data inventory.SlipData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Reference, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(data.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data inventory.SlipData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(strings.ToUpper(data.Type), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+data.GeneratedAt.UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(data.Reference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+data.Status, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorPrimary,
			}),
		),
	)
}

func routeRow(data inventory.SlipData) core.Row {
	field := func(label, value string, top float64) core.Component {
		return text.New(label+": "+nonEmpty(value, "—"), props.Text{Size: 9, Top: top})
	}
	return row.New(16).Add(
		col.New(6).Add(
			field("Origen", data.Source, 1),
			field("Destino", data.Destination, 7),
		),
		col.New(6).Add(
			field("Contacto", data.Contact, 1),
			field("Fecha programada", data.ScheduleDate, 7),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Solicitado", 1, align.Center),
		h("Hecho", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

func tableDetailRows(lines []inventory.SlipLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(nonEmpty(l.SKU, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(l.Quantity, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(l.Done, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(lineTotal(l)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// footerRow total valorizado y QR con la referencia para escanear en bodega.
func footerRow(data inventory.SlipData) core.Row {
	return row.New(34).Add(
		col.New(4).Add(code.NewQr(data.Reference, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("TOTAL: "+formatMoney(slipTotal(data.Lines)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 4, Right: 1,
			}),
			text.New(fmt.Sprintf("%d líneas", len(data.Lines)), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 12, Right: 1,
			}),
			text.New("Validada: "+nonEmpty(data.ValidatedAt, "pendiente"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 17, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// lineTotal se valoriza lo hecho si la operación ya movió stock, si no lo solicitado.
func lineTotal(l inventory.SlipLine) decimal.Decimal {
	qty := l.Quantity
	if l.Done > 0 {
		qty = l.Done
	}
	return l.UnitPrice.Mul(decimal.NewFromInt(qty))
}

func slipTotal(lines []inventory.SlipLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(lineTotal(l))
	}
	return total
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney dos decimales y separador de miles. Ej: 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
