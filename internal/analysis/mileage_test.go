package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActualAndClusterMileageRoundTrip(t *testing.T) {
	assert.Equal(t, 277043, ActualMileage(209843))
	assert.Equal(t, 209843, ClusterMileage(277043))
	assert.Equal(t, 209843, ClusterMileage(ActualMileage(209843)))
}

func TestValidMileage(t *testing.T) {
	assert.True(t, ValidMileage(0))
	assert.True(t, ValidMileage(999999))
	assert.False(t, ValidMileage(-1))
	assert.False(t, ValidMileage(1000000))
}

func TestMileageDifference_ClampsAtZero(t *testing.T) {
	assert.Equal(t, 500, MileageDifference(1500, 1000))
	assert.Equal(t, 0, MileageDifference(1000, 1500))
	assert.Equal(t, 0, MileageDifference(1000, 1000))
}

func TestEstimateNextService(t *testing.T) {
	// 2,000 miles into a 5,000 mile interval: 3,000 to go.
	assert.Equal(t, 280000, EstimateNextService(277000, 5000, 275000))
	// Exactly at the interval rolls to the next one.
	assert.Equal(t, 285000, EstimateNextService(280000, 5000, 275000))
}

func TestIsServiceDue(t *testing.T) {
	assert.False(t, IsServiceDue(277000, 5000, 275000, 500))
	assert.True(t, IsServiceDue(279500, 5000, 275000, 500))
	assert.True(t, IsServiceDue(281000, 5000, 275000, 500))
}
