package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SaleUseCase casos de uso del libro de ventas. Al registrar una venta congela
// los campos derivados (nombre del producto, margen unitario y total) con los
// valores vigentes del catálogo en ese momento.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. El reloj es inyectable para
// fijar la fecha en tests; nil usa time.Now.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository, now func() time.Time) *SaleUseCase {
	if now == nil {
		now = time.Now
	}
	return &SaleUseCase{sales: sales, products: products, now: now}
}

// Record registra una venta contra un producto del catálogo.
// Falla con ValidationError si el producto no existe o la cantidad no es un
// entero positivo; en ese caso el libro de ventas queda intacto.
func (uc *SaleUseCase) Record(in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewValidation(domain.ReasonProductNotFound)
	}
	if in.Quantity <= 0 {
		return nil, domain.NewValidation(domain.ReasonQuantityInvalid)
	}

	unitProfit := product.UnitProfit()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		SaleDate:    uc.now(),
		UnitProfit:  unitProfit,
		TotalProfit: unitProfit.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista las ventas por fecha descendente (la más reciente primero).
func (uc *SaleUseCase) List() (*dto.SaleListResponse, error) {
	list, err := uc.sales.ListByDateDesc()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		SaleDate:    s.SaleDate,
		UnitProfit:  s.UnitProfit,
		TotalProfit: s.TotalProfit,
	}
}
