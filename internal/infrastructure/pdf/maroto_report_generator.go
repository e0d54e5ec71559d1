// Package pdf implementa la generación de los reportes gerenciales en PDF:
// vencimiento de lotes y antigüedad de saldos (cuentas por pagar/cobrar).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de corte              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteos y valores por estado                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por lote / cuenta                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	appreportes "github.com/jvargas/Finanzas-api/internal/application/reportes"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
	"github.com/jvargas/Finanzas-api/internal/domain/expiry"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
	"github.com/jvargas/Finanzas-api/internal/domain/report"
	"github.com/jvargas/Finanzas-api/pkg/moneda"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorWarn    = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reportes.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	fmt *moneda.Formatter
}

// NewMarotoReportGenerator construye el generador con el formateador de montos.
func NewMarotoReportGenerator(f *moneda.Formatter) *MarotoReportGenerator {
	return &MarotoReportGenerator{fmt: f}
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// GenerateExpiryReport genera el reporte de vencimiento de lotes.
func (g *MarotoReportGenerator) GenerateExpiryReport(
	_ context.Context,
	rows []appreportes.ExpiryRow,
	summary report.LotSummary,
	referenceDate time.Time,
) ([]byte, error) {
	m := newDocument("Reporte de Vencimiento de Lotes")

	m.AddRows(headerRow("REPORTE DE VENCIMIENTO DE LOTES", referenceDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(expirySummaryRows(g.fmt, summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(expiryTableHeader())
	for _, r := range rows {
		m.AddRows(expiryDetailRow(g.fmt, r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(expiryTotalsRow(g.fmt, summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de vencimientos: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateAgingReport genera el reporte de antigüedad de saldos.
func (g *MarotoReportGenerator) GenerateAgingReport(
	_ context.Context,
	kind string,
	rows []appreportes.AgingRow,
	summary report.AccountSummary,
	referenceDate time.Time,
) ([]byte, error) {
	title := "ANTIGÜEDAD DE SALDOS: CUENTAS POR PAGAR"
	if kind == entity.AccountKindReceivable {
		title = "ANTIGÜEDAD DE SALDOS: CUENTAS POR COBRAR"
	}
	m := newDocument("Antigüedad de Saldos")

	m.AddRows(headerRow(title, referenceDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(agingSummaryRows(g.fmt, summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(agingTableHeader())
	for _, r := range rows {
		m.AddRows(agingDetailRow(g.fmt, r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(agingTotalsRow(g.fmt, summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de antigüedad: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de corte (der).
func headerRow(title string, referenceDate time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha de corte", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(referenceDate.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// ── Reporte de vencimientos ───────────────────────────────────────────────────

func expirySummaryRows(f *moneda.Formatter, s report.LotSummary) []core.Row {
	states := []struct {
		state expiry.State
		label string
		color *props.Color
	}{
		{expiry.StateVencido, "Vencidos", colorDanger},
		{expiry.StateCritico, "Críticos", colorDanger},
		{expiry.StateProximoVencer, "Próximos a vencer", colorWarn},
		{expiry.StateVigente, "Vigentes", colorGray},
	}

	r := row.New(14)
	cols := make([]core.Col, 0, len(states))
	for _, st := range states {
		b := s.ByState[st.state]
		cols = append(cols, col.New(3).Add(
			text.New(st.label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: st.color, Top: 1,
			}),
			text.New(fmt.Sprintf("%d lotes", b.Count), props.Text{Size: 8, Top: 6}),
			text.New(f.Format(b.Value), props.Text{Size: 8, Top: 10, Color: colorGray}),
		))
	}
	return []core.Row{r.Add(cols...)}
}

func expiryTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Lote", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Vence", 2, align.Center),
		h("Días", 1, align.Center),
		h("Estado", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

func expiryDetailRow(f *moneda.Formatter, r appreportes.ExpiryRow) core.Row {
	vence := "—"
	if r.Lot.ExpiryDate != nil {
		vence = r.Lot.ExpiryDate.Format("02/01/2006")
	}
	dias := "—"
	if r.Result.DaysRemaining != nil {
		dias = fmt.Sprintf("%d", *r.Result.DaysRemaining)
	}
	stateColor := colorGray
	switch r.Result.State {
	case expiry.StateVencido, expiry.StateCritico:
		stateColor = colorDanger
	case expiry.StateProximoVencer:
		stateColor = colorWarn
	}

	return row.New(7).Add(
		col.New(2).Add(text.New(r.Lot.Code, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(r.Lot.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(vence, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(dias, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(string(r.Result.State), props.Text{
			Size: 7.5, Align: align.Center, Top: 1, Color: stateColor, Style: fontstyle.Bold,
		})),
		col.New(2).Add(text.New(f.FormatPlain(r.Lot.Value()), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func expiryTotalsRow(f *moneda.Formatter, s report.LotSummary) core.Row {
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Valor vencido:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Color: colorDanger,
			}),
			text.New("Valor total:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			text.New(f.Format(s.ExpiredValue()), props.Text{
				Size: 9, Align: align.Right, Right: 1, Color: colorDanger,
			}),
			text.New(f.Format(s.TotalValue), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 6,
			}),
		),
	)
}

// ── Reporte de antigüedad de saldos ──────────────────────────────────────────

func agingSummaryRows(f *moneda.Formatter, s report.AccountSummary) []core.Row {
	states := []struct {
		state string
		label string
		color *props.Color
	}{
		{finance.StateVencido, "Vencidas", colorDanger},
		{finance.StateParcial, "Parciales", colorWarn},
		{finance.StatePendiente, "Pendientes", colorGray},
		{finance.StatePagado, "Pagadas", colorGray},
	}

	r := row.New(14)
	cols := make([]core.Col, 0, len(states))
	for _, st := range states {
		b := s.ByState[st.state]
		cols = append(cols, col.New(3).Add(
			text.New(st.label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: st.color, Top: 1,
			}),
			text.New(fmt.Sprintf("%d cuentas", b.Count), props.Text{Size: 8, Top: 6}),
			text.New(f.Format(b.TotalPending), props.Text{Size: 8, Top: 10, Color: colorGray}),
		))
	}

	rows := []core.Row{r.Add(cols...)}
	if s.Skipped > 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d cuenta(s) excluidas por historial inconsistente", s.Skipped), props.Text{
				Size: 7.5, Color: colorDanger, Top: 1,
			}),
		)))
	}
	return rows
}

func agingTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Documento", 2, align.Left),
		h("Tercero", 3, align.Left),
		h("Vence", 2, align.Center),
		h("Estado", 1, align.Center),
		h("Monto", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

func agingDetailRow(f *moneda.Formatter, r appreportes.AgingRow) core.Row {
	doc := r.Account.DocumentRef
	if r.Account.DocumentNumber != "" {
		doc = r.Account.DocumentNumber
	}
	estado := r.Balance.Estado
	stateColor := colorGray
	if estado == finance.StateVencido {
		estado = fmt.Sprintf("%s (%dd)", estado, r.Balance.DiasVencido)
		stateColor = colorDanger
	}

	return row.New(7).Add(
		col.New(2).Add(text.New(doc, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(r.Account.ThirdPartyName, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(r.Account.DueDate.Format("02/01/2006"), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(1).Add(text.New(estado, props.Text{
			Size: 7, Align: align.Center, Top: 1, Color: stateColor, Style: fontstyle.Bold,
		})),
		col.New(2).Add(text.New(f.FormatPlain(r.Account.OriginalAmount), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(f.FormatPlain(r.Balance.SaldoPendiente), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func agingTotalsRow(f *moneda.Formatter, s report.AccountSummary) core.Row {
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Cuentas vencidas:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Color: colorDanger,
			}),
			text.New("SALDO PENDIENTE TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 6, Color: colorPrimary,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%d", s.OverdueCount), props.Text{
				Size: 9, Align: align.Right, Right: 1, Color: colorDanger,
			}),
			text.New(f.Format(s.TotalPending), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 6, Color: colorPrimary,
			}),
		),
	)
}
