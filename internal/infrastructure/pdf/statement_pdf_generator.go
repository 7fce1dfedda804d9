// Package pdf genera el estado de cuenta del usuario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Titular + principal  │  Fecha de emisión           │
//	│  RESUMEN: Saldo en custodia / Deuda / Auto rentado           │
//	│  TABLA: Fecha | Tipo | Auto | Monto | Saldo | Deuda          │
//	│  FOOTER: QR de verificación + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
)

var _ rental.StatementGenerator = (*StatementPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var entryLabels = map[string]string{
	entity.EntryTypeDeposit:         "Depósito",
	entity.EntryTypeWithdrawal:      "Retiro",
	entity.EntryTypeCheckOut:        "Inicio de renta",
	entity.EntryTypeCheckIn:         "Devolución",
	entity.EntryTypePayment:         "Pago",
	entity.EntryTypeOwnerWithdrawal: "Retiro del operador",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// StatementPDFGenerator implementa rental.StatementGenerator usando Maroto v2.
type StatementPDFGenerator struct {
	printer *message.Printer
}

// NewStatementPDFGenerator construye el generador. Los montos se formatean con separador de miles de tag.
func NewStatementPDFGenerator(tag language.Tag) *StatementPDFGenerator {
	return &StatementPDFGenerator{printer: message.NewPrinter(tag)}
}

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *StatementPDFGenerator) GenerateStatementPDF(
	_ context.Context,
	user *entity.User,
	entries []*entity.LedgerEntry,
	issuedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(user, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.entryRows(entries)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(user, issuedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StatementPDFGenerator) headerRow(user *entity.User, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(user.Name+" "+user.Lastname, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Principal: "+user.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+issuedAt.UTC().Format("02/01/2006 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func (g *StatementPDFGenerator) summaryRow(user *entity.User) core.Row {
	rented := "—"
	if user.IsRenting() {
		rented = fmt.Sprintf("#%d desde %s", user.RentedCarID, user.CheckedOutAt.UTC().Format("02/01/2006 15:04"))
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Top: top})
	}
	return row.New(16).Add(
		col.New(4).Add(label("SALDO EN CUSTODIA"), value(g.credits(user.Balance), 6)),
		col.New(4).Add(label("DEUDA"), value(g.credits(user.Debt), 6)),
		col.New(4).Add(label("AUTO RENTADO"), value(rented, 6)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Movimiento", 3, align.Left),
		h("Auto", 1, align.Center),
		h("Monto", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("Deuda", 1, align.Right),
	)
}

func (g *StatementPDFGenerator) entryRows(entries []*entity.LedgerEntry) []core.Row {
	if len(entries) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		))}
	}
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		car := ""
		if e.CarID != 0 {
			car = fmt.Sprintf("#%d", e.CarID)
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		result = append(result, row.New(6).Add(
			cell(e.OccurredAt.UTC().Format("02/01/2006 15:04"), 3, align.Left),
			cell(entryLabel(e.Type), 3, align.Left),
			cell(car, 1, align.Center),
			cell(g.credits(e.Amount), 2, align.Right),
			cell(g.credits(e.BalanceAfter), 2, align.Right),
			cell(g.credits(e.DebtAfter), 1, align.Right),
		))
	}
	return result
}

// footerRow: QR con los datos verificables del estado + leyenda.
func footerRow(user *entity.User, issuedAt time.Time) core.Row {
	qr := fmt.Sprintf("principal=%s;balance=%d;debt=%d;issued=%s",
		user.ID, user.Balance, user.Debt, issuedAt.UTC().Format(time.RFC3339))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Los montos se expresan en créditos enteros.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("La deuda se liquida con el saldo en custodia mediante pagos; "+
				"un pago parcial reduce la deuda sin dejar saldo negativo.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// credits formatea un monto con separador de miles según el idioma configurado.
// Ej. (es): 25000 → "25.000"
func (g *StatementPDFGenerator) credits(n int64) string {
	return g.printer.Sprintf("%d", n)
}

func entryLabel(t string) string {
	if l, ok := entryLabels[t]; ok {
		return l
	}
	return t
}
