package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
)

var testClock = time.Date(2026, time.August, 26, 15, 0, 0, 0, time.FixedZone("America/Bogota", -5*3600))

// newLedger arma un catálogo con un producto conocido y el caso de uso de
// ventas con reloj fijo. Devuelve también el ID del producto sembrado.
func newLedger(t *testing.T) (*usecase.SaleUseCase, *fakeSaleRepo, string) {
	t.Helper()
	products := &fakeProductRepo{}
	catalogUC := usecase.NewProductUseCase(products)
	created, err := catalogUC.Create(dto.CreateProductRequest{
		Name:         "Widget",
		CostPrice:    dec("10"),
		SellingPrice: dec("15"),
	})
	require.NoError(t, err)

	sales := &fakeSaleRepo{}
	uc := usecase.NewSaleUseCase(sales, products, func() time.Time { return testClock })
	return uc, sales, created.ID
}

func TestSaleUseCase_Record_CamposDerivados(t *testing.T) {
	uc, _, productID := newLedger(t)

	out, err := uc.Record(dto.RecordSaleRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	// costo 10, venta 15, cantidad 3 => margen unitario 5, total 15.
	assert.True(t, out.UnitProfit.Equal(dec("5")), "unitProfit %s", out.UnitProfit)
	assert.True(t, out.TotalProfit.Equal(dec("15")), "totalProfit %s", out.TotalProfit)
	assert.Equal(t, "Widget", out.ProductName)
	assert.Equal(t, productID, out.ProductID)
	assert.True(t, out.SaleDate.Equal(testClock))
	assert.NotEmpty(t, out.ID)
}

func TestSaleUseCase_Record_ProductoInexistente(t *testing.T) {
	uc, sales, _ := newLedger(t)

	out, err := uc.Record(dto.RecordSaleRequest{ProductID: "no-existe", Quantity: 1})
	require.Error(t, err)
	assert.Nil(t, out)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ReasonProductNotFound, verr.Reason)

	// El libro de ventas queda intacto.
	assert.Empty(t, sales.sales)
}

func TestSaleUseCase_Record_CatalogoVacio(t *testing.T) {
	sales := &fakeSaleRepo{}
	uc := usecase.NewSaleUseCase(sales, &fakeProductRepo{}, func() time.Time { return testClock })

	_, err := uc.Record(dto.RecordSaleRequest{ProductID: "cualquiera", Quantity: 1})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.ReasonProductNotFound, verr.Reason)
	assert.Empty(t, sales.sales)
}

func TestSaleUseCase_Record_CantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		uc, sales, productID := newLedger(t)

		_, err := uc.Record(dto.RecordSaleRequest{ProductID: productID, Quantity: qty})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "quantity=%d", qty)
		assert.Equal(t, domain.ReasonQuantityInvalid, verr.Reason)
		assert.Empty(t, sales.sales)
	}
}

func TestSaleUseCase_List_FechaDescendente(t *testing.T) {
	products := &fakeProductRepo{}
	catalogUC := usecase.NewProductUseCase(products)
	created, err := catalogUC.Create(dto.CreateProductRequest{
		Name: "Widget", CostPrice: dec("1"), SellingPrice: dec("2"),
	})
	require.NoError(t, err)

	// Reloj que avanza un minuto por venta.
	current := testClock
	sales := &fakeSaleRepo{}
	uc := usecase.NewSaleUseCase(sales, products, func() time.Time {
		current = current.Add(time.Minute)
		return current
	})

	for i := 0; i < 3; i++ {
		_, err := uc.Record(dto.RecordSaleRequest{ProductID: created.ID, Quantity: 1})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.True(t, list.Items[0].SaleDate.After(list.Items[1].SaleDate))
	assert.True(t, list.Items[1].SaleDate.After(list.Items[2].SaleDate))
}

func TestSaleUseCase_VentaCongelaNombre(t *testing.T) {
	// La venta conserva el nombre del producto al momento de venderse aunque
	// el catálogo cambie después (desnormalización deliberada).
	products := &fakeProductRepo{}
	catalogUC := usecase.NewProductUseCase(products)
	created, err := catalogUC.Create(dto.CreateProductRequest{
		Name: "Nombre original", CostPrice: dec("1"), SellingPrice: dec("2"),
	})
	require.NoError(t, err)

	uc := usecase.NewSaleUseCase(&fakeSaleRepo{}, products, func() time.Time { return testClock })
	sale, err := uc.Record(dto.RecordSaleRequest{ProductID: created.ID, Quantity: 1})
	require.NoError(t, err)

	products.products[0].Name = "Nombre cambiado"
	assert.Equal(t, "Nombre original", sale.ProductName)
}
