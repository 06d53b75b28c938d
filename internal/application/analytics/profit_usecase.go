package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProfitUseCase arma el resumen de ganancias y la serie del gráfico a partir
// del estado actual del libro de ventas. No cachea nada: cada consulta vuelve
// a recorrer la colección completa (N se mantiene pequeño).
type ProfitUseCase struct {
	sales repository.SaleRepository
	now   func() time.Time
}

// NewProfitUseCase construye el caso de uso. El reloj es inyectable para tests;
// nil usa time.Now.
func NewProfitUseCase(sales repository.SaleRepository, now func() time.Time) *ProfitUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProfitUseCase{sales: sales, now: now}
}

// Summary devuelve las cuatro tarjetas del panel: ganancia del día, de la
// semana en curso (lunes a domingo), del mes calendario y el total histórico.
func (uc *ProfitUseCase) Summary() (*dto.ProfitSummaryResponse, error) {
	sales, err := uc.sales.List()
	if err != nil {
		return nil, fmt.Errorf("resumen de ganancias: %w", err)
	}
	now := uc.now()
	return &dto.ProfitSummaryResponse{
		Daily:   DailyProfit(sales, now),
		Weekly:  WeeklyProfit(sales, now),
		Monthly: MonthlyProfit(sales, now),
		Total:   TotalProfit(sales),
	}, nil
}

// Trend devuelve los 7 buckets diarios del gráfico, del más antiguo al más reciente.
func (uc *ProfitUseCase) Trend() (*dto.ProfitTrendResponse, error) {
	sales, err := uc.sales.List()
	if err != nil {
		return nil, fmt.Errorf("serie de ganancias: %w", err)
	}
	buckets := DailyTrend(sales, uc.now())
	out := make([]dto.TrendBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.TrendBucketResponse{
			Date:   b.Day.Format("2006-01-02"),
			Label:  dayLabel(b.Day),
			Profit: b.Profit,
		})
	}
	return &dto.ProfitTrendResponse{Buckets: out}, nil
}

// dayLabel devuelve una etiqueta corta del día, ej: "sáb 29".
func dayLabel(t time.Time) string {
	days := [...]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}
	return fmt.Sprintf("%s %02d", days[t.Weekday()], t.Day())
}
