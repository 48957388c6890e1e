package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "salesmanager/docs"
	"salesmanager/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Post("/login", handlers.LoginHandler)

	r.Get("/sales", handlers.GetSalesHandler)
	r.Get("/sales/search", handlers.FilterSalesHandler)
	r.Get("/sales/{id}", handlers.GetSaleByIDHandler)

	r.Get("/analytics/revenue", handlers.RevenueReportHandler)
	r.Get("/analytics/low-cost", handlers.LowCostProductsHandler)
	r.Get("/analytics/above-average", handlers.AboveAverageSalesHandler)
	r.Get("/analytics/products", handlers.ProductBreakdownHandler)
	r.Get("/analytics/trends", handlers.TrendsHandler)
	r.Get("/analytics/overview", handlers.OverviewHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware)
		pr.Post("/sales", handlers.CreateSaleHandler)
		pr.Put("/sales/{id}", handlers.UpdateSaleHandler)
		pr.Delete("/sales/{id}", handlers.DeleteSaleHandler)
		pr.Post("/sales/import", handlers.ImportSalesHandler)
		pr.Post("/reports/csv", handlers.ExportCSVHandler)
		pr.Post("/reports/html", handlers.GenerateHTMLReportHandler)
		pr.Post("/reports/charts", handlers.GenerateChartsHandler)
	})

	return r
}
