// Package report writes sale reports and charts to the local filesystem.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salesmanager/internal/analytics"
	"salesmanager/internal/repo"
)

// ErrNoData is returned when there are no sales to report on.
var ErrNoData = errors.New("no sales to report")

// Service generates CSV exports, HTML reports and PNG charts.
type Service struct {
	repo       repo.SaleRepository
	analytics  *analytics.Service
	reportsDir string
	chartsDir  string
	logger     *zap.Logger
}

func NewService(r repo.SaleRepository, a *analytics.Service, reportsDir, chartsDir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:       r,
		analytics:  a,
		reportsDir: reportsDir,
		chartsDir:  chartsDir,
		logger:     logger,
	}
}

func artifactName(kind, ext string) string {
	stamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.%s", kind, stamp, uuid.NewString()[:8], ext)
}

// ExportCSV writes all sales to a CSV file in the reports directory and
// returns the written path.
func (s *Service) ExportCSV() (string, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return "", fmt.Errorf("failed to load sales: %w", err)
	}
	if len(sales) == 0 {
		return "", ErrNoData
	}

	path := filepath.Join(s.reportsDir, artifactName("sales", "csv"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "product", "unit_price", "quantity", "sold_at", "note", "revenue"}); err != nil {
		return "", err
	}
	for _, sale := range sales {
		record := []string{
			fmt.Sprintf("%d", sale.ID),
			sale.Product,
			sale.UnitPrice.String(),
			fmt.Sprintf("%d", sale.Quantity),
			sale.SoldAt.UTC().Format(time.RFC3339),
			sale.Note,
			sale.Revenue().String(),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	s.logger.Info("CSV export written", zap.String("path", path), zap.Int("rows", len(sales)))
	return path, nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sales Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #343A40; }
h1 { color: #2E86AB; }
h2 { border-bottom: 1px solid #6C757D; padding-bottom: 4px; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #6C757D; padding: 4px 10px; text-align: left; }
th { background: #F8F9FA; }
</style>
</head>
<body>
<h1>Sales Report</h1>
<p>Generated at {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>

<h2>Overview</h2>
<table>
<tr><th>Total sales</th><td>{{.Overview.TotalSales}}</td></tr>
<tr><th>Total revenue</th><td>{{.Overview.TotalRevenue.StringFixed 2}}</td></tr>
<tr><th>Total quantity</th><td>{{.Overview.TotalQuantity}}</td></tr>
<tr><th>Mean unit price</th><td>{{.Overview.MeanUnitPrice.StringFixed 2}}</td></tr>
<tr><th>Mean quantity</th><td>{{printf "%.2f" .Overview.MeanQuantity}}</td></tr>
{{with .Overview.BestSeller}}<tr><th>Best seller</th><td>{{.Product}} ({{.Quantity}} units)</td></tr>{{end}}
{{with .Overview.TopEarner}}<tr><th>Top earner</th><td>{{.Product}} ({{.Revenue.StringFixed 2}})</td></tr>{{end}}
</table>

<h2>Revenue by sale</h2>
<table>
<tr><th>ID</th><th>Product</th><th>Unit price</th><th>Quantity</th><th>Revenue</th><th>Sold at</th></tr>
{{range .Revenue.Lines}}
<tr><td>{{.ID}}</td><td>{{.Product}}</td><td>{{.UnitPrice.StringFixed 2}}</td><td>{{.Quantity}}</td><td>{{.Revenue.StringFixed 2}}</td><td>{{.SoldAt.Format "2006-01-02"}}</td></tr>
{{end}}
<tr><th colspan="4">Total</th><th>{{.Revenue.TotalRevenue.StringFixed 2}}</th><th></th></tr>
</table>

<h2>Low-cost products (unit price below {{.LowCost.Threshold.StringFixed 2}})</h2>
{{if .LowCost.Sales}}
<table>
<tr><th>Product</th><th>Unit price</th><th>Quantity</th><th>Revenue</th></tr>
{{range .LowCost.Sales}}
<tr><td>{{.Product}}</td><td>{{.UnitPrice.StringFixed 2}}</td><td>{{.Quantity}}</td><td>{{.Revenue.StringFixed 2}}</td></tr>
{{end}}
</table>
{{else}}<p>None.</p>{{end}}

<h2>Sales above mean quantity ({{printf "%.2f" .AboveAverage.MeanQuantity}})</h2>
{{if .AboveAverage.Sales}}
<table>
<tr><th>Product</th><th>Quantity</th><th>Above mean by</th><th>Revenue</th></tr>
{{range .AboveAverage.Sales}}
<tr><td>{{.Product}}</td><td>{{.Quantity}}</td><td>{{printf "%.2f" .Delta}}</td><td>{{.Revenue.StringFixed 2}}</td></tr>
{{end}}
</table>
{{else}}<p>None.</p>{{end}}

</body>
</html>
`

type reportData struct {
	GeneratedAt  time.Time
	Overview     analytics.Overview
	Revenue      analytics.RevenueReport
	LowCost      analytics.LowCostReport
	AboveAverage analytics.AboveAverageReport
}

// GenerateHTML renders the full report into the reports directory and
// returns the written path.
func (s *Service) GenerateHTML() (string, error) {
	overview, err := s.analytics.Overview()
	if err != nil {
		return "", err
	}
	if overview.TotalSales == 0 {
		return "", ErrNoData
	}

	revenue, err := s.analytics.RevenueReport()
	if err != nil {
		return "", err
	}
	lowCost, err := s.analytics.LowCostProducts(nil)
	if err != nil {
		return "", err
	}
	aboveAverage, err := s.analytics.AboveAverageSales()
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	path := filepath.Join(s.reportsDir, artifactName("report", "html"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	data := reportData{
		GeneratedAt:  time.Now(),
		Overview:     overview,
		Revenue:      revenue,
		LowCost:      lowCost,
		AboveAverage: aboveAverage,
	}
	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	s.logger.Info("HTML report written", zap.String("path", path))
	return path, nil
}
