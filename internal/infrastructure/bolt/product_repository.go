package bolt

import (
	"encoding/json"
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ProductRepository implementa repository.ProductRepository sobre el Store.
//
// La colección vive en memoria en orden de inserción y se reescribe completa
// al blob tras cada alta. Un fallo de persistencia no revierte la mutación en
// memoria: se registra y la sesión sigue operando con el estado correcto.
type ProductRepository struct {
	mu       sync.RWMutex
	store    *Store
	log      *logger.Logger
	products []*entity.Product
	byID     map[string]*entity.Product
}

// NewProductRepository hidrata la colección desde el blob. Blob ausente o
// corrupto => colección vacía (se registra en warn, nunca es fatal).
func NewProductRepository(store *Store, log *logger.Logger) *ProductRepository {
	r := &ProductRepository{
		store: store,
		log:   log,
		byID:  make(map[string]*entity.Product),
	}
	blob, ok, err := store.Load(KeyProducts)
	if err != nil {
		log.Warn().Err(err).Msg("cargar productos: se arranca con catálogo vacío")
		return r
	}
	if !ok {
		return r
	}
	var list []*entity.Product
	if err := json.Unmarshal(blob, &list); err != nil {
		log.Warn().Err(err).Msg("blob de productos corrupto: se arranca con catálogo vacío")
		return r
	}
	r.products = list
	for _, p := range list {
		r.byID[p.ID] = p
	}
	return r
}

// Create agrega el producto al final de la colección y persiste el blob.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, product)
	r.byID[product.ID] = product
	r.persistLocked()
	return nil
}

// GetByID busca un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// List devuelve los productos en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepository) persistLocked() {
	blob, err := json.Marshal(r.products)
	if err != nil {
		r.log.Error().Err(err).Msg("serializar productos")
		return
	}
	if err := r.store.Save(KeyProducts, blob); err != nil {
		r.log.Warn().Err(err).Msg("persistir productos: el estado en memoria sigue vigente")
	}
}
