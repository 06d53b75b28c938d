package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con su costo y precio de venta.
// Invariante de creación: SellingPrice >= CostPrice (se permite margen cero).
// Los productos no se editan ni se eliminan; el catálogo preserva el orden de
// inserción porque es el orden de despliegue.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// UnitProfit margen por unidad al precio actual del producto.
func (p *Product) UnitProfit() decimal.Decimal {
	return p.SellingPrice.Sub(p.CostPrice)
}
