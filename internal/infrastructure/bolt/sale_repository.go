package bolt

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// SaleRepository implementa repository.SaleRepository sobre el Store.
//
// Igual que con productos: colección en memoria en orden de inserción,
// reescritura completa del blob tras cada alta. El orden por fecha para el
// listado es una vista de lectura, no altera el orden almacenado.
type SaleRepository struct {
	mu    sync.RWMutex
	store *Store
	log   *logger.Logger
	sales []*entity.Sale
}

// NewSaleRepository hidrata la colección desde el blob. Blob ausente o
// corrupto => colección vacía. Las fechas vuelven de su forma ISO-8601 al
// deserializar (encoding/json + time.Time).
func NewSaleRepository(store *Store, log *logger.Logger) *SaleRepository {
	r := &SaleRepository{store: store, log: log}
	blob, ok, err := store.Load(KeySales)
	if err != nil {
		log.Warn().Err(err).Msg("cargar ventas: se arranca con libro vacío")
		return r
	}
	if !ok {
		return r
	}
	var list []*entity.Sale
	if err := json.Unmarshal(blob, &list); err != nil {
		log.Warn().Err(err).Msg("blob de ventas corrupto: se arranca con libro vacío")
		return r
	}
	r.sales = list
	return r
}

// Create agrega la venta al final de la colección y persiste el blob.
func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, sale)
	r.persistLocked()
	return nil
}

// List devuelve las ventas en orden de inserción (entrada de los agregados).
func (r *SaleRepository) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// ListByDateDesc devuelve las ventas por fecha descendente (la más reciente primero).
func (r *SaleRepository) ListByDateDesc() ([]*entity.Sale, error) {
	out, _ := r.List()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SaleDate.After(out[j].SaleDate)
	})
	return out, nil
}

func (r *SaleRepository) persistLocked() {
	blob, err := json.Marshal(r.sales)
	if err != nil {
		r.log.Error().Err(err).Msg("serializar ventas")
		return
	}
	if err := r.store.Save(KeySales, blob); err != nil {
		r.log.Warn().Err(err).Msg("persistir ventas: el estado en memoria sigue vigente")
	}
}
