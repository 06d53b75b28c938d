package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/infrastructure/bolt"
	"github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, time.August, 26, 15, 0, 0, 0, time.FixedZone("America/Bogota", -5*3600))

// buildTestApp arma la aplicación completa sobre un almacén temporal y un
// reloj fijo, igual que main pero sin red ni swagger.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "ventas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	log := logger.Nop()
	productRepo := bolt.NewProductRepository(store, log)
	saleRepo := bolt.NewSaleRepository(store, log)
	clock := func() time.Time { return testNow }

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(productRepo),
		SaleUC:    usecase.NewSaleUseCase(saleRepo, productRepo, clock),
		ProfitUC:  analytics.NewProfitUseCase(saleRepo, clock),
		ReportGen: pdf.NewMarotoReportGenerator(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: producto -> venta -> resumen -> gráfico
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoProductoVentaGanancia(t *testing.T) {
	app := buildTestApp(t)

	// Registrar producto
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Widget", "costPrice": 10, "sellingPrice": 15,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	require.NotEmpty(t, created.ID)

	// Registrar venta de 3 unidades
	resp = doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{
		"productId": created.ID, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sale := decode[dto.SaleResponse](t, resp)
	assert.Equal(t, "Widget", sale.ProductName)
	assert.Equal(t, "5", sale.UnitProfit.String())
	assert.Equal(t, "15", sale.TotalProfit.String())

	// Resumen: la venta de hoy aparece en las cuatro ventanas
	resp = doJSON(t, app, http.MethodGet, "/api/profit/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.ProfitSummaryResponse](t, resp)
	assert.Equal(t, "15", summary.Daily.String())
	assert.Equal(t, "15", summary.Weekly.String())
	assert.Equal(t, "15", summary.Monthly.String())
	assert.Equal(t, "15", summary.Total.String())

	// Gráfico: 7 buckets, el de hoy con la ganancia
	resp = doJSON(t, app, http.MethodGet, "/api/profit/trend", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trend := decode[dto.ProfitTrendResponse](t, resp)
	require.Len(t, trend.Buckets, 7)
	assert.Equal(t, "15", trend.Buckets[6].Profit.String())
}

func TestCrearProducto_Validacion(t *testing.T) {
	app := buildTestApp(t)

	cases := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"sin nombre", map[string]any{"costPrice": 1, "sellingPrice": 2}, "name required"},
		{"venta bajo costo", map[string]any{"name": "Widget", "costPrice": 10, "sellingPrice": 8}, "selling price below cost"},
		{"costo negativo", map[string]any{"name": "Widget", "costPrice": -1, "sellingPrice": 8}, "cost price must be a non-negative number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/products", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			errBody := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, "VALIDATION", errBody.Code)
			assert.Equal(t, tc.message, errBody.Message)
		})
	}

	// Ningún producto quedó registrado.
	resp := doJSON(t, app, http.MethodGet, "/api/products", nil)
	list := decode[dto.ProductListResponse](t, resp)
	assert.Zero(t, list.Total)
}

func TestRegistrarVenta_ProductoInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{
		"productId": "no-existe", "quantity": 1,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errBody.Code)
	assert.Equal(t, "product not found", errBody.Message)

	// El libro de ventas queda intacto.
	resp = doJSON(t, app, http.MethodGet, "/api/sales", nil)
	list := decode[dto.SaleListResponse](t, resp)
	assert.Zero(t, list.Total)
}

func TestRegistrarVenta_CantidadInvalida(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Widget", "costPrice": 1, "sellingPrice": 2,
	})
	created := decode[dto.ProductResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{
		"productId": created.ID, "quantity": 0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Equal(t, "quantity must be a positive integer", errBody.Message)
}

func TestListarVentas_MasRecientePrimero(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Widget", "costPrice": 1, "sellingPrice": 2,
	})
	created := decode[dto.ProductResponse](t, resp)

	for i := 0; i < 3; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/sales", map[string]any{
			"productId": created.ID, "quantity": 1,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doJSON(t, app, http.MethodGet, "/api/sales", nil)
	list := decode[dto.SaleListResponse](t, resp)
	require.Equal(t, 3, list.Total)
	for i := 1; i < len(list.Items); i++ {
		assert.False(t, list.Items[i-1].SaleDate.Before(list.Items[i].SaleDate))
	}
}

func TestObtenerProductoInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestReporteDeGananciasPDF(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/profit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un documento PDF")
}
