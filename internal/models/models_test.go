package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarProfile_SetClusterMileage(t *testing.T) {
	p := CarProfile{MileageOffset: 67200}
	p = p.SetClusterMileage(209843)
	assert.Equal(t, 209843, p.ClusterMileage)
	assert.Equal(t, 277043, p.ActualMileage)
}

func TestDiagnosticCode_ToggleResolved(t *testing.T) {
	c := DiagnosticCode{Code: "P0341"}

	c = c.ToggleResolved("2024-01-20T10:00:00Z")
	assert.True(t, c.Resolved)
	assert.Equal(t, "2024-01-20T10:00:00Z", c.ResolvedDate)

	c = c.ToggleResolved("2024-02-01T10:00:00Z")
	assert.False(t, c.Resolved)
	assert.Empty(t, c.ResolvedDate)
}

func TestModification_SetStatus(t *testing.T) {
	m := Modification{Status: StatusPlanned}

	m = m.SetStatus(StatusInProgress, "2024-04-01")
	assert.Equal(t, StatusInProgress, m.Status)
	assert.Empty(t, m.InstallDate)

	m = m.SetStatus(StatusCompleted, "2024-04-02")
	assert.Equal(t, "2024-04-02", m.InstallDate)

	// Re-completing keeps the original stamp.
	m = m.SetStatus(StatusCompleted, "2024-05-01")
	assert.Equal(t, "2024-04-02", m.InstallDate)
}

func TestAudioComponent_ToggleInstalled(t *testing.T) {
	c := AudioComponent{Name: "Kicker CVT"}

	c = c.ToggleInstalled("2024-04-02")
	assert.True(t, c.Installed)
	assert.Equal(t, "2024-04-02", c.InstallDate)

	c = c.ToggleInstalled("2024-05-01")
	assert.False(t, c.Installed)
	assert.Empty(t, c.InstallDate)
}

func TestFuelEntry_ApplyNeverTouchesMPG(t *testing.T) {
	v := 30.0
	e := FuelEntry{Mileage: 1300, MPG: &v}

	mileage := 1400
	e = e.Apply(FuelEntryPatch{Mileage: &mileage})
	assert.Equal(t, 1400, e.Mileage)
	assert.Equal(t, &v, e.MPG)
}

func TestMaintenancePatch_NilFieldsLeaveValues(t *testing.T) {
	e := MaintenanceEntry{Title: "Cam chain", Cost: 1250, Category: CategoryEngine}

	cost := 1300.0
	e = e.Apply(MaintenancePatch{Cost: &cost})
	assert.Equal(t, "Cam chain", e.Title)
	assert.Equal(t, 1300.0, e.Cost)
	assert.Equal(t, CategoryEngine, e.Category)
}

func TestCanonicalCode(t *testing.T) {
	assert.Equal(t, "P0341", CanonicalCode(" p0341 "))
	assert.Equal(t, "P0341", CanonicalCode("P0341"))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryEngine))
	assert.True(t, IsValidCategory(CategoryOther))
	assert.False(t, IsValidCategory(Category("drivetrain")))
}

func TestIsValidOctane(t *testing.T) {
	assert.True(t, IsValidOctane(Octane87))
	assert.True(t, IsValidOctane(Octane93))
	assert.False(t, IsValidOctane(Octane(85)))
}

func TestIsValidModificationStatus(t *testing.T) {
	assert.True(t, IsValidModificationStatus(StatusOrdered))
	assert.False(t, IsValidModificationStatus(ModificationStatus("installed")))
}
