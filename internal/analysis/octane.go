// Package analysis holds the derived, read-only computations over the
// garage's records: octane comparison, mileage math, and the dashboard
// summary. Nothing in here mutates a store.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vwcs/build-tracker/internal/models"
)

// OctaneStats summarizes all fill-ups at one octane rating.
type OctaneStats struct {
	Octane            models.Octane `json:"octane"`
	Count             int           `json:"count"`
	TotalGallons      float64       `json:"total_gallons"`
	AvgMPG            float64       `json:"avg_mpg"`
	AvgCost           float64       `json:"avg_cost"`
	TotalCost         float64       `json:"total_cost"`
	PerformanceRating float64       `json:"performance_rating"`
	CostPerMile       float64       `json:"cost_per_mile,omitempty"`
}

// AnalyzeOctanePerformance groups fill-ups by octane and computes the
// per-group stats, ordered by ascending octane. Entries without an MPG
// value still count toward gallons and cost but not toward the average.
func AnalyzeOctanePerformance(entries []models.FuelEntry) []OctaneStats {
	groups := make(map[models.Octane][]models.FuelEntry)
	for _, e := range entries {
		groups[e.Octane] = append(groups[e.Octane], e)
	}

	stats := make([]OctaneStats, 0, len(groups))
	for octane, group := range groups {
		var mpgSum float64
		var mpgCount int
		var totalGallons, totalCost float64
		var noted []models.FuelEntry
		for _, e := range group {
			if e.MPG != nil {
				mpgSum += *e.MPG
				mpgCount++
			}
			totalGallons += e.Gallons
			totalCost += e.Gallons * e.Cost
			if e.PerformanceNotes != "" {
				noted = append(noted, e)
			}
		}
		var avgMPG float64
		if mpgCount > 0 {
			avgMPG = mpgSum / float64(mpgCount)
		}
		var avgCost float64
		if totalGallons > 0 {
			avgCost = totalCost / totalGallons
		}
		stats = append(stats, OctaneStats{
			Octane:            octane,
			Count:             len(group),
			TotalGallons:      totalGallons,
			AvgMPG:            avgMPG,
			AvgCost:           avgCost,
			TotalCost:         totalCost,
			PerformanceRating: PerformanceRating(avgMPG, noted),
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Octane < stats[j].Octane })
	return stats
}

// PerformanceRating scores an octane group on a 0-5 scale: a base from
// average MPG, nudged by crude sentiment over the performance notes.
func PerformanceRating(avgMPG float64, noted []models.FuelEntry) float64 {
	rating := math.Min(5, math.Max(0, (avgMPG-20)/5))
	for _, e := range noted {
		notes := strings.ToLower(e.PerformanceNotes)
		if strings.Contains(notes, "smooth") || strings.Contains(notes, "responsive") || strings.Contains(notes, "good") {
			rating += 0.5
		}
		if strings.Contains(notes, "rough") || strings.Contains(notes, "knock") || strings.Contains(notes, "poor") {
			rating -= 0.5
		}
	}
	return math.Min(5, math.Max(0, rating))
}

// OptimalOctane picks the octane whose weighted score of efficiency and
// performance is highest. Ties keep the earlier (lower) octane because
// only a strictly greater score displaces the running best. No data at
// all recommends 91.
func OptimalOctane(stats []OctaneStats) models.Octane {
	if len(stats) == 0 {
		return models.Octane91
	}
	best := stats[0]
	bestScore := best.AvgMPG*0.6 + best.PerformanceRating*0.4
	for _, s := range stats[1:] {
		score := s.AvgMPG*0.6 + s.PerformanceRating*0.4
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best.Octane
}

// CostEfficiency annotates each group with its cost per mile. Groups
// without an MPG average get zero rather than a division blowup.
func CostEfficiency(stats []OctaneStats) []OctaneStats {
	out := make([]OctaneStats, len(stats))
	for i, s := range stats {
		if s.AvgMPG > 0 {
			s.CostPerMile = s.AvgCost / s.AvgMPG
		}
		out[i] = s
	}
	return out
}

// FuelRecommendation renders the optimal-octane verdict as a sentence
// for the dashboard.
func FuelRecommendation(stats []OctaneStats) string {
	if len(stats) == 0 {
		return "Add more fuel entries for recommendations"
	}
	optimal := OptimalOctane(stats)
	for _, s := range stats {
		if s.Octane == optimal {
			return fmt.Sprintf("Based on %d fill-ups, %d octane provides the best balance of efficiency (%.1f MPG) and performance (%.1f/5).",
				s.Count, optimal, s.AvgMPG, s.PerformanceRating)
		}
	}
	return "Unable to determine recommendation"
}
