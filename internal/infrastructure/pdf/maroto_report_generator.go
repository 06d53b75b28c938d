// Package pdf genera el reporte imprimible de ganancias usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Hoy / Semana / Mes / Total                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Día | Fecha | Ganancia (últimos 7 días)              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 67, Green: 56, Blue: 202}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de ganancias en PDF.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProfitReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProfitReport(
	summary *dto.ProfitSummaryResponse,
	trend *dto.ProfitTrendResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ganancias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(trendHeaderRow())
	m.AddRows(trendRows(trend)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE GANANCIAS DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRows: las cuatro tarjetas del panel como filas etiqueta/valor.
func summaryRows(summary *dto.ProfitSummaryResponse) []core.Row {
	entry := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(6).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1,
			})),
			col.New(6).Add(text.New(value, props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}
	return []core.Row{
		entry("Ganancia de hoy", summary.Daily.StringFixed(2)),
		entry("Ganancia de la semana", summary.Weekly.StringFixed(2)),
		entry("Ganancia del mes", summary.Monthly.StringFixed(2)),
		entry("Ganancia total", summary.Total.StringFixed(2)),
	}
}

// trendHeaderRow: cabecera de la tabla de los últimos 7 días.
func trendHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Día", 3, align.Left),
		h("Fecha", 5, align.Left),
		h("Ganancia", 4, align.Right),
	)
}

// trendRows: una fila por bucket, del más antiguo al más reciente.
func trendRows(trend *dto.ProfitTrendResponse) []core.Row {
	result := make([]core.Row, 0, len(trend.Buckets))
	for _, b := range trend.Buckets {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(b.Label, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(5).Add(text.New(b.Date, props.Text{
				Size: 8, Align: align.Left, Top: 1,
			})),
			col.New(4).Add(text.New(b.Profit.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(
			"Reporte generado por ventas-tracker. Montos en la moneda de operación.",
			props.Text{Size: 7, Align: align.Center, Top: 2, Color: colorGray},
		)),
	)
}
