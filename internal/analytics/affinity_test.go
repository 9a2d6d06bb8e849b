package analytics

import (
	"testing"

	"order-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePurchaseAffinity(t *testing.T) {
	affinity := AnalyzePurchaseAffinity(sampleLines())
	require.Len(t, affinity, 3)

	// Sorted by first-purchase count descending, SKU ascending on ties.
	a := affinity[0]
	assert.Equal(t, "SKU-A", a.SKU)
	assert.Equal(t, 2, a.FirstPurchaseCount) // earliest line of both customers
	assert.Equal(t, 0, a.RepeatPurchaseCount)
	require.True(t, a.RepeatToFirstRatio.Valid)
	assert.Equal(t, 0.0, a.RepeatToFirstRatio.Value)

	b := affinity[1]
	assert.Equal(t, "SKU-B", b.SKU)
	assert.Equal(t, 0, b.FirstPurchaseCount)
	assert.Equal(t, 2, b.RepeatPurchaseCount)
	assert.False(t, b.RepeatToFirstRatio.Valid)

	c := affinity[2]
	assert.Equal(t, "SKU-C", c.SKU)
	assert.Equal(t, 0, c.FirstPurchaseCount)
	assert.Equal(t, 1, c.RepeatPurchaseCount)
	assert.False(t, c.RepeatToFirstRatio.Valid)
}

func TestAnalyzePurchaseAffinityRepeatExample(t *testing.T) {
	lines := []models.OrderLine{
		line("O1", "A@x.com", "2024-01-01", "X1", 1, 100, 40),
		line("O2", "A@x.com", "2024-02-01", "X1", 1, 100, 40),
	}

	affinity := AnalyzePurchaseAffinity(lines)
	require.Len(t, affinity, 1)

	assert.Equal(t, 1, affinity[0].FirstPurchaseCount)
	assert.Equal(t, 1, affinity[0].RepeatPurchaseCount)
	require.True(t, affinity[0].RepeatToFirstRatio.Valid)
	assert.Equal(t, 1.0, affinity[0].RepeatToFirstRatio.Value)
}

func TestAffinityCountsCoverEveryLine(t *testing.T) {
	lines := sampleLines()

	perSKU := make(map[string]int)
	for _, l := range lines {
		perSKU[l.SKU]++
	}

	for _, a := range AnalyzePurchaseAffinity(lines) {
		assert.Equal(t, perSKU[a.SKU], a.FirstPurchaseCount+a.RepeatPurchaseCount, "sku %s", a.SKU)
	}
}

func TestAnalyzePurchaseAffinityOneFirstLinePerCustomer(t *testing.T) {
	affinity := AnalyzePurchaseAffinity(sampleLines())

	var firstTotal int
	for _, a := range affinity {
		firstTotal += a.FirstPurchaseCount
	}
	// Exactly one first-purchase line per distinct email.
	assert.Equal(t, 2, firstTotal)
}

func TestAnalyzePurchaseAffinityDoesNotMutateInput(t *testing.T) {
	lines := sampleLines()
	want := sampleLines()

	AnalyzePurchaseAffinity(lines)
	assert.Equal(t, want, lines)
}
