package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	ProfitUC  *analytics.ProfitUseCase
	ReportGen *pdf.MarotoReportGenerator
}

// Router registra las rutas de la API. Aplicación monousuario local:
// no hay grupo autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Libro de ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)

	// Panel de ganancias
	profit := api.Group("/profit")
	profitHandler := NewProfitHandler(deps.ProfitUC)
	profit.Get("/summary", profitHandler.Summary)
	profit.Get("/trend", profitHandler.Trend)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ProfitUC, deps.ReportGen)
	reports.Get("/profit", reportHandler.ProfitReport)
}
