package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"order-analytics/config"
	"order-analytics/internal/ingest"
	"order-analytics/internal/reports"
	"order-analytics/internal/service"
	"order-analytics/internal/util"

	"go.uber.org/zap"
)

// One-shot report runner: ingests a dataset file, runs the full pipeline
// and writes the report as a timestamped JSON file.
func main() {
	input := flag.String("input", "", "Dataset file (.csv or .xlsx)")
	output := flag.String("output", "reports/", "Output folder path")
	fee := flag.Float64("fee", -1, "Flat shipping fee (overrides SHIPPING_FEE)")
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: analyze --input=orders.csv [--output=reports/] [--fee=15]")
		os.Exit(1)
	}

	cfg := config.Load()
	shippingFee := cfg.Business.ShippingFee
	if *fee >= 0 {
		shippingFee = *fee
	}

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()
	logger := util.GetLogger()

	start := time.Now()

	lines, err := ingest.ReadFile(*input)
	if err != nil {
		logger.Fatal("Ingestion failed", zap.String("input", *input), zap.Error(err))
	}

	analysisService := service.NewAnalysisService(shippingFee)
	report, err := analysisService.Analyze(context.Background(), lines)
	if err != nil {
		logger.Fatal("Analysis failed", zap.Error(err))
	}

	filename := reports.TimestampedFilename(*output, "order_analysis")
	if err := reports.ExportJSON(filename, report); err != nil {
		logger.Fatal("Export failed", zap.String("path", filename), zap.Error(err))
	}

	logger.Info("Report written",
		zap.String("path", filename),
		zap.String("run_id", report.RunID),
		zap.Int("rows", report.Summary.Rows),
		zap.Int("orders", report.Summary.Orders),
		zap.Duration("duration", time.Since(start)))
}
