package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
// Valida primero y recién después muta: en caso de error el catálogo queda intacto.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un nuevo producto en el catálogo.
// Reglas: nombre no vacío, precios no negativos, precio de venta >= costo
// (margen cero permitido). Devuelve ValidationError con el motivo si alguna falla.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidation(domain.ReasonNameRequired)
	}
	if in.CostPrice.IsNegative() {
		return nil, domain.NewValidation(domain.ReasonCostNegative)
	}
	if in.SellingPrice.IsNegative() {
		return nil, domain.NewValidation(domain.ReasonSellingNegative)
	}
	if in.SellingPrice.LessThan(in.CostPrice) {
		return nil, domain.NewValidation(domain.ReasonSellingBelowCost)
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista los productos en orden de registro.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		UnitProfit:   p.UnitProfit(),
	}
}
