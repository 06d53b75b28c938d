package dto

import "github.com/shopspring/decimal"

// ProfitSummaryResponse las cuatro tarjetas del panel de ganancias.
type ProfitSummaryResponse struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
	Total   decimal.Decimal `json:"total"`
}

// TrendBucketResponse un día del gráfico de los últimos 7 días.
type TrendBucketResponse struct {
	Date   string          `json:"date"`  // ISO yyyy-mm-dd
	Label  string          `json:"label"` // ej. "sáb 29"
	Profit decimal.Decimal `json:"profit"`
}

// ProfitTrendResponse los 7 buckets del gráfico, del más antiguo al más reciente.
type ProfitTrendResponse struct {
	Buckets []TrendBucketResponse `json:"buckets"`
}
