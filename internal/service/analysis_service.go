package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"order-analytics/internal/analytics"
	"order-analytics/internal/models"
	"order-analytics/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisService runs the profitability pipeline over an ingested
// order-line table and keeps finished reports in an in-process registry.
// Reports do not outlive the process; nothing is persisted.
type AnalysisService struct {
	shippingFee float64
	logger      *zap.Logger

	mu   sync.RWMutex
	runs map[string]*models.Report
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(shippingFee float64) *AnalysisService {
	return &AnalysisService{
		shippingFee: shippingFee,
		logger:      util.GetLogger(),
		runs:        make(map[string]*models.Report),
	}
}

// Analyze runs every aggregator over the given table and returns the
// assembled report. The order-line slice is treated as read-only: the four
// independent aggregators run concurrently and each builds its own derived
// records.
func (s *AnalysisService) Analyze(ctx context.Context, lines []models.OrderLine) (*models.Report, error) {
	ctx, span := util.StartSpan(ctx, "AnalysisService.Analyze")
	defer span.End()

	if len(lines) == 0 {
		util.AnalysesFailedTotal.WithLabelValues("empty_dataset").Inc()
		return nil, fmt.Errorf("dataset contains no rows")
	}

	start := time.Now()
	runID := uuid.New().String()

	var (
		orders        []models.Order
		cohortCounts  []models.CohortCountRow
		cohortRevenue []models.CohortRevenueRow
		products      []models.ProductPerformance
		monthly       []models.MonthlyProfit
		affinity      []models.ProductAffinity
	)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		_, stageSpan := util.StartSpan(ctx, "analytics.AggregateOrders")
		defer stageSpan.End()
		orders = analytics.AggregateOrders(lines, s.shippingFee)
		cohortCounts, cohortRevenue = analytics.SummarizeCohorts(orders)
	}()
	go func() {
		defer wg.Done()
		_, stageSpan := util.StartSpan(ctx, "analytics.AggregateProducts")
		defer stageSpan.End()
		products = analytics.AggregateProducts(lines, s.shippingFee)
	}()
	go func() {
		defer wg.Done()
		_, stageSpan := util.StartSpan(ctx, "analytics.AggregateMonthly")
		defer stageSpan.End()
		monthly = analytics.AggregateMonthly(lines, s.shippingFee)
	}()
	go func() {
		defer wg.Done()
		_, stageSpan := util.StartSpan(ctx, "analytics.AnalyzePurchaseAffinity")
		defer stageSpan.End()
		affinity = analytics.AnalyzePurchaseAffinity(lines)
	}()

	wg.Wait()

	report := &models.Report{
		RunID:         runID,
		GeneratedAt:   time.Now().UTC(),
		ShippingFee:   s.shippingFee,
		Summary:       summarize(lines, orders),
		Orders:        orders,
		CohortCounts:  cohortCounts,
		CohortRevenue: cohortRevenue,
		Products:      products,
		Monthly:       monthly,
		Affinity:      affinity,
	}

	s.mu.Lock()
	s.runs[runID] = report
	s.mu.Unlock()

	util.AnalysesTotal.Inc()
	util.AnalysisDuration.Observe(time.Since(start).Seconds())
	util.RowsIngestedTotal.Add(float64(len(lines)))

	s.logger.Info("Analysis completed",
		zap.String("run_id", runID),
		zap.Int("rows", len(lines)),
		zap.Int("orders", len(orders)),
		zap.Int("products", len(products)),
		zap.Duration("duration", time.Since(start)))

	return report, nil
}

// GetReport returns a previously computed report by run ID.
func (s *AnalysisService) GetReport(runID string) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.runs[runID]
	return report, ok
}

func summarize(lines []models.OrderLine, orders []models.Order) models.DatasetSummary {
	customers := make(map[string]struct{})
	skus := make(map[string]struct{})
	for _, l := range lines {
		customers[l.Email] = struct{}{}
		skus[l.SKU] = struct{}{}
	}

	// Orders are sorted by date placed.
	summary := models.DatasetSummary{
		Rows:      len(lines),
		Orders:    len(orders),
		Customers: len(customers),
		Products:  len(skus),
	}
	if len(orders) > 0 {
		summary.FirstDate = orders[0].DatePlaced
		summary.LastDate = orders[len(orders)-1].DatePlaced
	}
	return summary
}
