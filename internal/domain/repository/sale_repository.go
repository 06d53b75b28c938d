package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
// List devuelve las ventas en orden de inserción (entrada de los agregados);
// ListByDateDesc las devuelve por fecha descendente para el listado en UI.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	List() ([]*entity.Sale, error)
	ListByDateDesc() ([]*entity.Sale, error)
}
