package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada de un producto del catálogo.
//
// ProductName, UnitProfit y TotalProfit se congelan al momento de la venta
// (desnormalización deliberada: una venta nunca refleja cambios posteriores
// del producto). Las ventas no se editan ni se eliminan.
type Sale struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	SaleDate    time.Time       `json:"saleDate"`
	UnitProfit  decimal.Decimal `json:"unitProfit"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}
