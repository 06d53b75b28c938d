package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError error de validación con motivo legible para el usuario.
// Todas las validaciones de Catálogo y Libro de Ventas fallan con este tipo;
// el caller presenta Reason y el estado previo queda intacto.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre cualquier ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidation construye un ValidationError con el motivo dado.
func NewValidation(reason string) error { return &ValidationError{Reason: reason} }

// Motivos de validación fijos.
const (
	ReasonNameRequired     = "name required"
	ReasonCostNegative     = "cost price must be a non-negative number"
	ReasonSellingNegative  = "selling price must be a non-negative number"
	ReasonSellingBelowCost = "selling price below cost"
	ReasonProductNotFound  = "product not found"
	ReasonQuantityInvalid  = "quantity must be a positive integer"
)
