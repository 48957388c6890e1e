package repo

type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Metrics struct {
	TotalSales       int        `json:"total_sales"`
	TotalRevenue     float64    `json:"total_revenue"`
	DistinctProducts int        `json:"distinct_products"`
	TopProduct       TopProduct `json:"top_product"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
