package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"salesmanager/internal/analytics"
)

// GenerateCharts renders the PNG charts into the charts directory and
// returns the written paths. The revenue-over-time chart needs sales on at
// least two distinct days and is skipped otherwise.
func (s *Service) GenerateCharts() ([]string, error) {
	breakdown, err := s.analytics.ProductBreakdown()
	if err != nil {
		return nil, err
	}
	if breakdown.TotalProducts == 0 {
		return nil, ErrNoData
	}

	var paths []string

	barPath, err := s.revenueByProductChart(breakdown.Products)
	if err != nil {
		return nil, err
	}
	paths = append(paths, barPath)

	linePath, err := s.revenueOverTimeChart()
	if err != nil {
		return nil, err
	}
	if linePath != "" {
		paths = append(paths, linePath)
	}

	s.logger.Info("charts written", zap.Strings("paths", paths))
	return paths, nil
}

func (s *Service) revenueByProductChart(products []analytics.ProductSummary) (string, error) {
	bars := make([]chart.Value, 0, len(products))
	for _, p := range products {
		bars = append(bars, chart.Value{
			Label: p.Product,
			Value: p.TotalRevenue.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Revenue by product",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	path := filepath.Join(s.chartsDir, artifactName("revenue_by_product", "png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render bar chart: %w", err)
	}
	return path, nil
}

func (s *Service) revenueOverTimeChart() (string, error) {
	sales, err := s.repo.GetAll()
	if err != nil {
		return "", err
	}

	daily := map[time.Time]float64{}
	for _, sale := range sales {
		day := sale.SoldAt.UTC().Truncate(24 * time.Hour)
		daily[day] += sale.Revenue().InexactFloat64()
	}
	if len(daily) < 2 {
		return "", nil
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	xs := make([]time.Time, 0, len(days))
	ys := make([]float64, 0, len(days))
	for _, day := range days {
		xs = append(xs, day)
		ys = append(ys, daily[day])
	}

	graph := chart.Chart{
		Title:  "Revenue over time",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "daily revenue",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	path := filepath.Join(s.chartsDir, artifactName("revenue_over_time", "png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render line chart: %w", err)
	}
	return path, nil
}
