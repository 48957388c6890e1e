package repo

type InMemoryMetricsRepository struct {
	sales SaleRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepository(sales SaleRepository) {
	r.sales = sales
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	var m Metrics
	if r.sales == nil {
		return m, nil
	}

	all, err := r.sales.GetAll()
	if err != nil {
		return Metrics{}, err
	}

	byProduct := map[string]int{}
	for _, s := range all {
		m.TotalSales++
		m.TotalRevenue += s.Revenue().InexactFloat64()
		byProduct[s.Product] += s.Quantity
	}
	m.DistinctProducts = len(byProduct)

	for name, qty := range byProduct {
		if qty > m.TopProduct.Quantity {
			m.TopProduct = TopProduct{Name: name, Quantity: qty}
		}
	}
	return m, nil
}
