package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwcs/build-tracker/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "vin", "WVWZZZ3CZ8P123456")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestVIN_ValidInput(t *testing.T) {
	out, err := execute(t, "vin", "wvwzzz3cz8p123456")
	require.NoError(t, err)
	assert.Contains(t, out, "WVWZZZ3CZ8P123456: valid")
	assert.Contains(t, out, "2008 Volkswagen Passat")
}

func TestVIN_InvalidInput(t *testing.T) {
	_, err := execute(t, "vin", "not-a-vin")
	assert.Error(t, err)
}

func TestFuelAdd_RejectsBadOctane(t *testing.T) {
	_, err := execute(t, "fuel", "add", "--octane", "85", "--gallons", "10")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "octane")
}

func TestMileageSet_RejectsNonNumeric(t *testing.T) {
	_, err := execute(t, "mileage", "set", "lots")
	assert.Error(t, err)
}

func TestMileageSet_RejectsOutOfRange(t *testing.T) {
	_, err := execute(t, "mileage", "set", "1000000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReminderAdd_RequiresExactlyOneTrigger(t *testing.T) {
	_, err := execute(t, "reminder", "add", "--title", "Oil change")
	assert.Error(t, err)

	_, err = execute(t, "reminder", "add", "--title", "Oil change",
		"--mileage", "280000", "--date", "2024-06-01")
	assert.Error(t, err)
}

func TestMaintenanceAdd_RejectsBadCategory(t *testing.T) {
	_, err := execute(t, "maintenance", "add", "--title", "Oil", "--category", "drivetrain")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestMaintenanceAdd_RejectsNegativeCost(t *testing.T) {
	_, err := execute(t, "maintenance", "add", "--title", "Oil", "--cost=-500")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestModsAdd_RejectsNegativeCost(t *testing.T) {
	_, err := execute(t, "mods", "add", "--title", "K04 swap", "--cost=-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestFuelAdd_RejectsNonPositiveGallons(t *testing.T) {
	_, err := execute(t, "fuel", "add", "--gallons", "0")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gallons")

	_, err = execute(t, "fuel", "add", "--gallons=-2")
	assert.Error(t, err)
}

func TestFuelAdd_RejectsNegativeCost(t *testing.T) {
	_, err := execute(t, "fuel", "add", "--gallons", "12", "--cost=-3.50")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestMaintenanceList_HonorsJSONFormat(t *testing.T) {
	t.Setenv("GARAGE_STORAGE", "memory")
	out, err := execute(t, "maintenance", "list", "--format", "json")
	require.NoError(t, err)
	var entries []models.MaintenanceEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Empty(t, entries)
}

func TestFuelList_HonorsJSONFormat(t *testing.T) {
	t.Setenv("GARAGE_STORAGE", "memory")
	out, err := execute(t, "fuel", "list", "--format", "json")
	require.NoError(t, err)
	var payload struct {
		Entries    []models.FuelEntry `json:"entries"`
		AverageMPG float64            `json:"average_mpg"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Empty(t, payload.Entries)
	assert.Zero(t, payload.AverageMPG)
}

func TestEvents_HonorsJSONFormat(t *testing.T) {
	t.Setenv("GARAGE_STORAGE", "memory")
	out, err := execute(t, "events", "--format", "json")
	require.NoError(t, err)
	var events []models.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	assert.Empty(t, events)
}
