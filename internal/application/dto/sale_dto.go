package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// SaleResponse salida de una venta con sus campos derivados congelados.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	SaleDate    time.Time       `json:"saleDate"`
	UnitProfit  decimal.Decimal `json:"unitProfit"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// SaleListResponse lista de ventas por fecha descendente (la más reciente primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
