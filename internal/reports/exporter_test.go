package reports

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"order-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampedFilename(t *testing.T) {
	name := TimestampedFilename("out", "order_analysis")
	assert.True(t, strings.HasPrefix(name, filepath.Join("out", "order_analysis_")))
	assert.True(t, strings.HasSuffix(name, ".json"))
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.json")

	report := &models.Report{
		RunID:       "run-1",
		ShippingFee: 15,
		Affinity: []models.ProductAffinity{
			{SKU: "SKU-A", FirstPurchaseCount: 0, RepeatPurchaseCount: 2},
		},
	}

	require.NoError(t, ExportJSON(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got models.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-1", got.RunID)

	// Undefined ratios are exported as null, never NaN or Inf.
	assert.Contains(t, string(data), `"repeat_to_first_ratio": null`)
}
