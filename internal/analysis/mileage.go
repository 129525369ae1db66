package analysis

// MileageOffset is the known gap between the replacement instrument
// cluster and the car's true odometer reading.
const MileageOffset = 67200

// ActualMileage converts a cluster reading to the car's true mileage.
func ActualMileage(clusterMileage int) int {
	return clusterMileage + MileageOffset
}

// ClusterMileage converts a true mileage back to the cluster reading.
func ClusterMileage(actualMileage int) int {
	return actualMileage - MileageOffset
}

// ValidMileage bounds odometer input to a sane six-digit range.
func ValidMileage(mileage int) bool {
	return mileage >= 0 && mileage <= 999999
}

// MileageDifference returns the miles driven between two readings,
// clamped at zero so a corrected reading never yields negative distance.
func MileageDifference(current, previous int) int {
	if current < previous {
		return 0
	}
	return current - previous
}

// EstimateNextService projects the mileage at which the next service of
// a recurring interval falls due.
func EstimateNextService(currentMileage, serviceInterval, lastServiceMileage int) int {
	sinceService := currentMileage - lastServiceMileage
	remaining := serviceInterval - (sinceService % serviceInterval)
	return currentMileage + remaining
}

// IsServiceDue reports whether a recurring service is inside the
// tolerance window before its interval elapses.
func IsServiceDue(currentMileage, serviceInterval, lastServiceMileage, tolerance int) bool {
	return currentMileage-lastServiceMileage >= serviceInterval-tolerance
}
