package analysis

import "github.com/vwcs/build-tracker/internal/models"

// Summary is the at-a-glance dashboard view of the build: mileage,
// open faults, due work, efficiency, and money spent.
type Summary struct {
	ActualMileage   int                         `json:"actual_mileage"`
	ClusterMileage  int                         `json:"cluster_mileage"`
	ActiveCodes     int                         `json:"active_codes"`
	DueReminders    int                         `json:"due_reminders"`
	AverageMPG      float64                     `json:"average_mpg"`
	TotalInvested   float64                     `json:"total_invested"`
	SpendByCategory map[models.Category]float64 `json:"spend_by_category"`
	ModsCompleted   int                         `json:"mods_completed"`
	ModsPlanned     int                         `json:"mods_planned"`
}

// BuildSummary folds the garage's records into a Summary. Callers pass
// the already-filtered due reminders so the dashboard stays a pure
// computation with no clock of its own.
func BuildSummary(
	profile models.CarProfile,
	codes []models.DiagnosticCode,
	due []models.Reminder,
	fuel []models.FuelEntry,
	maintenance []models.MaintenanceEntry,
	mods []models.Modification,
) Summary {
	s := Summary{
		ActualMileage:   profile.ActualMileage,
		ClusterMileage:  profile.ClusterMileage,
		DueReminders:    len(due),
		SpendByCategory: make(map[models.Category]float64),
	}

	for _, c := range codes {
		if c.Active {
			s.ActiveCodes++
		}
	}

	var mpgSum float64
	var mpgCount int
	for _, e := range fuel {
		if e.MPG != nil {
			mpgSum += *e.MPG
			mpgCount++
		}
	}
	if mpgCount > 0 {
		s.AverageMPG = mpgSum / float64(mpgCount)
	}

	for _, e := range maintenance {
		s.SpendByCategory[e.Category] += e.Cost
		s.TotalInvested += e.Cost
	}
	for _, m := range mods {
		switch m.Status {
		case models.StatusCompleted:
			s.ModsCompleted++
			s.SpendByCategory[m.System] += m.Cost
			s.TotalInvested += m.Cost
		case models.StatusPlanned:
			s.ModsPlanned++
		}
	}
	return s
}
