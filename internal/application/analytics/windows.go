// Package analytics contiene las reducciones puras de ganancia sobre el libro
// de ventas: ventanas de calendario (día, semana, mes, total) y la serie de
// los últimos 7 días para el gráfico.
//
// Política de zona horaria: todas las comparaciones de calendario se hacen en
// la Location del argumento now (en producción la del host; los tests pasan un
// now fijo con zona explícita). Ninguna función muta su entrada ni guarda estado.
package analytics

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// trendDays número de buckets del gráfico (hoy incluido).
const trendDays = 7

// TrendBucket un día de la serie del gráfico.
type TrendBucket struct {
	Day    time.Time
	Profit decimal.Decimal
}

// SumProfit suma TotalProfit sobre la secuencia dada; cero para la vacía.
// Es la reducción compartida por todas las ventanas.
func SumProfit(sales []*entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.TotalProfit)
	}
	return sum
}

// DailyProfit suma las ventas cuyo SaleDate cae en el mismo día calendario que now.
func DailyProfit(sales []*entity.Sale, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		if sameDay(s.SaleDate, now) {
			sum = sum.Add(s.TotalProfit)
		}
	}
	return sum
}

// WeeklyProfit suma las ventas de la semana que contiene a now.
// La semana va de lunes 00:00:00.000 a domingo 23:59:59.999, ambos extremos inclusive.
func WeeklyProfit(sales []*entity.Sale, now time.Time) decimal.Decimal {
	start, end := weekBounds(now)
	sum := decimal.Zero
	for _, s := range sales {
		d := s.SaleDate.In(now.Location())
		if !d.Before(start) && !d.After(end) {
			sum = sum.Add(s.TotalProfit)
		}
	}
	return sum
}

// MonthlyProfit suma las ventas del mismo mes y año calendario que now.
func MonthlyProfit(sales []*entity.Sale, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		d := s.SaleDate.In(now.Location())
		if d.Year() == now.Year() && d.Month() == now.Month() {
			sum = sum.Add(s.TotalProfit)
		}
	}
	return sum
}

// TotalProfit suma todas las ventas sin filtro de ventana.
func TotalProfit(sales []*entity.Sale) decimal.Decimal {
	return SumProfit(sales)
}

// DailyTrend construye exactamente 7 buckets, uno por día calendario desde
// now-6d hasta now inclusive, del más antiguo al más reciente. Cada venta se
// asigna por diferencia de días enteros: daysAgo = floor((now-saleDate)/24h);
// quedan fuera las ventas con daysAgo >= 7 y las fechadas en el futuro.
// La ganancia de cada bucket se redondea a 2 decimales para presentación.
func DailyTrend(sales []*entity.Sale, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, trendDays)
	for i := 0; i < trendDays; i++ {
		buckets[i] = TrendBucket{
			Day:    now.AddDate(0, 0, i-(trendDays-1)),
			Profit: decimal.Zero,
		}
	}

	for _, s := range sales {
		diff := now.Sub(s.SaleDate)
		if diff < 0 {
			continue // venta fechada en el futuro
		}
		daysAgo := int(diff / (24 * time.Hour))
		if daysAgo >= trendDays {
			continue
		}
		idx := trendDays - 1 - daysAgo
		buckets[idx].Profit = buckets[idx].Profit.Add(s.TotalProfit)
	}

	for i := range buckets {
		buckets[i].Profit = buckets[i].Profit.Round(2)
	}
	return buckets
}

// sameDay compara año, mes y día de ambas fechas en la Location de ref.
func sameDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	return t.Year() == ref.Year() && t.Month() == ref.Month() && t.Day() == ref.Day()
}

// weekBounds devuelve los límites inclusivos de la semana (lunes a domingo)
// que contiene a t, con precisión de milisegundo en el extremo superior.
func weekBounds(t time.Time) (time.Time, time.Time) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // domingo cuenta como séptimo día
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -(wd - 1))
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}
