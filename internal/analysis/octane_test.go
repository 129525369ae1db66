package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
)

func mpg(v float64) *float64 { return &v }

func TestAnalyzeOctanePerformance_GroupsAndSorts(t *testing.T) {
	entries := []models.FuelEntry{
		{Octane: models.Octane93, Gallons: 10, Cost: 4.40, MPG: mpg(28)},
		{Octane: models.Octane91, Gallons: 12, Cost: 4.20, MPG: mpg(30)},
		{Octane: models.Octane93, Gallons: 8, Cost: 4.50},
	}

	stats := AnalyzeOctanePerformance(entries)
	require.Len(t, stats, 2)

	// Ascending octane order.
	assert.Equal(t, models.Octane91, stats[0].Octane)
	assert.Equal(t, models.Octane93, stats[1].Octane)

	// The MPG-less 93 entry counts toward gallons but not the average.
	assert.Equal(t, 2, stats[1].Count)
	assert.Equal(t, 18.0, stats[1].TotalGallons)
	assert.Equal(t, 28.0, stats[1].AvgMPG)
	assert.InDelta(t, 4.444, stats[1].AvgCost, 0.001)
}

func TestAnalyzeOctanePerformance_IsDeterministic(t *testing.T) {
	entries := []models.FuelEntry{
		{Octane: models.Octane87, Gallons: 10, Cost: 3.80, MPG: mpg(24)},
		{Octane: models.Octane91, Gallons: 10, Cost: 4.20, MPG: mpg(29), PerformanceNotes: "smooth power"},
		{Octane: models.Octane93, Gallons: 10, Cost: 4.50, MPG: mpg(28), PerformanceNotes: "rough idle"},
	}

	first := AnalyzeOctanePerformance(entries)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AnalyzeOctanePerformance(entries))
	}
}

func TestPerformanceRating_SentimentAdjustments(t *testing.T) {
	tests := []struct {
		name   string
		avgMPG float64
		notes  string
		want   float64
	}{
		{"base from mpg only", 30, "", 2.0},
		{"positive note", 30, "smooth and responsive", 3.0},
		{"negative note", 30, "rough idle with knock", 1.0},
		{"clamped high", 45, "good good good", 5.0},
		{"clamped low", 10, "poor knock", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var noted []models.FuelEntry
			if tt.notes != "" {
				noted = []models.FuelEntry{{PerformanceNotes: tt.notes}}
			}
			assert.InDelta(t, tt.want, PerformanceRating(tt.avgMPG, noted), 0.001)
		})
	}
}

func TestOptimalOctane_EmptyDefaultsTo91(t *testing.T) {
	assert.Equal(t, models.Octane91, OptimalOctane(nil))
}

func TestOptimalOctane_TieKeepsLowerOctane(t *testing.T) {
	stats := []OctaneStats{
		{Octane: models.Octane89, AvgMPG: 28, PerformanceRating: 3},
		{Octane: models.Octane93, AvgMPG: 28, PerformanceRating: 3},
	}
	assert.Equal(t, models.Octane89, OptimalOctane(stats))
}

func TestOptimalOctane_PicksHighestScore(t *testing.T) {
	stats := []OctaneStats{
		{Octane: models.Octane87, AvgMPG: 24, PerformanceRating: 1},
		{Octane: models.Octane91, AvgMPG: 30, PerformanceRating: 4},
		{Octane: models.Octane93, AvgMPG: 28, PerformanceRating: 4},
	}
	assert.Equal(t, models.Octane91, OptimalOctane(stats))
}

func TestCostEfficiency(t *testing.T) {
	stats := []OctaneStats{
		{Octane: models.Octane91, AvgMPG: 30, AvgCost: 4.20},
		{Octane: models.Octane93, AvgMPG: 0, AvgCost: 4.50},
	}
	out := CostEfficiency(stats)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.14, out[0].CostPerMile, 0.001)
	assert.Equal(t, 0.0, out[1].CostPerMile)
}

func TestFuelRecommendation(t *testing.T) {
	assert.Equal(t, "Add more fuel entries for recommendations", FuelRecommendation(nil))

	stats := []OctaneStats{{Octane: models.Octane91, Count: 3, AvgMPG: 29.5, PerformanceRating: 3.5}}
	got := FuelRecommendation(stats)
	assert.Contains(t, got, "3 fill-ups")
	assert.Contains(t, got, "91 octane")
	assert.Contains(t, got, "29.5 MPG")
}
