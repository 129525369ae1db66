package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vwcs/build-tracker/internal/models"
)

func TestBuildSummary(t *testing.T) {
	profile := models.CarProfile{ClusterMileage: 209843, ActualMileage: 277043}
	codes := []models.DiagnosticCode{
		{Code: "P0341", Active: true},
		{Code: "P0100", Active: true},
		{Code: "P0016", Active: false},
	}
	due := []models.Reminder{{Title: "Oil change"}}
	fuel := []models.FuelEntry{
		{MPG: mpg(30)},
		{MPG: mpg(26)},
		{},
	}
	maintenance := []models.MaintenanceEntry{
		{Category: models.CategoryEngine, Cost: 1250},
		{Category: models.CategorySuspension, Cost: 420},
	}
	mods := []models.Modification{
		{System: models.CategoryEngine, Status: models.StatusCompleted, Cost: 85},
		{System: models.CategoryEngine, Status: models.StatusPlanned, Cost: 800},
	}

	s := BuildSummary(profile, codes, due, fuel, maintenance, mods)

	assert.Equal(t, 277043, s.ActualMileage)
	assert.Equal(t, 209843, s.ClusterMileage)
	assert.Equal(t, 2, s.ActiveCodes)
	assert.Equal(t, 1, s.DueReminders)
	assert.Equal(t, 28.0, s.AverageMPG)
	assert.Equal(t, 1, s.ModsCompleted)
	assert.Equal(t, 1, s.ModsPlanned)

	// Planned mod cost stays out of the invested totals.
	assert.Equal(t, 1755.0, s.TotalInvested)
	assert.Equal(t, 1335.0, s.SpendByCategory[models.CategoryEngine])
	assert.Equal(t, 420.0, s.SpendByCategory[models.CategorySuspension])
}

func TestBuildSummary_EmptyGarage(t *testing.T) {
	s := BuildSummary(models.CarProfile{}, nil, nil, nil, nil, nil)
	assert.Equal(t, 0, s.ActiveCodes)
	assert.Equal(t, 0.0, s.AverageMPG)
	assert.Equal(t, 0.0, s.TotalInvested)
	assert.Empty(t, s.SpendByCategory)
}
