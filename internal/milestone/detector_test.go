package milestone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetectorValidatesThresholds(t *testing.T) {
	tests := []struct {
		name       string
		thresholds []int64
		wantErr    bool
	}{
		{name: "ascending", thresholds: []int64{100, 250, 500}},
		{name: "single threshold", thresholds: []int64{100}},
		{name: "empty", thresholds: nil, wantErr: true},
		{name: "descending", thresholds: []int64{500, 250}, wantErr: true},
		{name: "duplicate", thresholds: []int64{100, 100}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDetector(tt.thresholds, 0)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDetectorObservationSequence(t *testing.T) {
	d, err := NewDetector([]int64{100, 250, 500}, 0)
	require.NoError(t, err)

	type step struct {
		net         int64
		wantFired   bool
		wantCrossed int64
	}
	steps := []step{
		{net: 150, wantFired: true, wantCrossed: 100},
		{net: 400, wantFired: true, wantCrossed: 250},
		{net: 300},                                    // decrease never fires
		{net: 600, wantFired: true, wantCrossed: 500}, // 300 < 500 <= 600
	}

	for i, s := range steps {
		crossed, fired := d.Observe(s.net)
		assert.Equal(t, s.wantFired, fired, "step %d", i)
		assert.Equal(t, s.wantCrossed, crossed, "step %d", i)
	}
}

func TestDetectorNeverRefires(t *testing.T) {
	d, err := NewDetector([]int64{100}, 0)
	require.NoError(t, err)

	_, fired := d.Observe(150)
	require.True(t, fired)

	// Dip below and rise back above: no second event.
	_, fired = d.Observe(50)
	assert.False(t, fired)
	_, fired = d.Observe(200)
	assert.False(t, fired)
	assert.True(t, d.Achieved(100))
}

func TestDetectorAtMostOneEventPerObservation(t *testing.T) {
	d, err := NewDetector([]int64{100, 250, 500}, 0)
	require.NoError(t, err)

	// One jump over three thresholds fires only the lowest.
	crossed, fired := d.Observe(600)
	require.True(t, fired)
	assert.Equal(t, int64(100), crossed)
	assert.False(t, d.Achieved(250))
	assert.False(t, d.Achieved(500))
}

func TestDetectorDoesNotFireRetroactively(t *testing.T) {
	// Balance already above a threshold when observation starts.
	d, err := NewDetector([]int64{100, 250}, 200)
	require.NoError(t, err)

	// Net holds steady above 100: no event, the increase happened before
	// the detector was watching.
	_, fired := d.Observe(200)
	assert.False(t, fired)

	// A genuine new crossing still fires.
	crossed, fired := d.Observe(300)
	require.True(t, fired)
	assert.Equal(t, int64(250), crossed)
}

func TestDetectorExactThresholdCounts(t *testing.T) {
	d, err := NewDetector([]int64{100}, 0)
	require.NoError(t, err)

	// previousNet < m <= net: landing exactly on the threshold fires.
	crossed, fired := d.Observe(100)
	require.True(t, fired)
	assert.Equal(t, int64(100), crossed)
}

func TestDefaultThresholdsAreStrictlyAscending(t *testing.T) {
	_, err := NewDetector(DefaultThresholds, 0)
	assert.NoError(t, err)
}
