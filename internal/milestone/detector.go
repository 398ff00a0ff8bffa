// Package milestone watches the net balance for first-time threshold
// crossings.
package milestone

import (
	"fmt"
)

// DefaultThresholds is the standard milestone ladder, in cents.
var DefaultThresholds = []int64{
	10_000,    // 100
	25_000,    // 250
	50_000,    // 500
	100_000,   // 1,000
	250_000,   // 2,500
	500_000,   // 5,000
	1_000_000, // 10,000
}

// Detector tracks which thresholds have been crossed this session. State is
// in-memory only and resets when the process exits. A threshold is achieved
// at most once and is never un-achieved, even if the balance later drops
// below it again.
type Detector struct {
	achieved    map[int64]bool
	thresholds  []int64
	previousNet int64
}

// NewDetector creates a detector over a strictly ascending threshold list,
// seeded with the net balance observed at startup. Seeding means thresholds
// the balance already sits above will not fire retroactively; a crossing is
// only ever detected at the moment of an increase.
func NewDetector(thresholds []int64, initialNet int64) (*Detector, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("at least one threshold is required")
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, fmt.Errorf("thresholds must be strictly ascending: %d follows %d",
				thresholds[i], thresholds[i-1])
		}
	}

	ts := make([]int64, len(thresholds))
	copy(ts, thresholds)

	return &Detector{
		achieved:    make(map[int64]bool),
		thresholds:  ts,
		previousNet: initialNet,
	}, nil
}

// Observe feeds a new net-balance observation to the detector. It returns
// the crossed threshold and true when a milestone fires, at most one per
// observation: if a single jump clears several unachieved thresholds, the
// lowest one fires now and the next fires on the next increasing
// observation. previousNet always advances, crossing or not.
func (d *Detector) Observe(net int64) (crossed int64, fired bool) {
	prev := d.previousNet
	d.previousNet = net

	if net <= prev {
		return 0, false
	}

	for _, m := range d.thresholds {
		if d.achieved[m] {
			continue
		}
		if prev < m && m <= net {
			d.achieved[m] = true
			return m, true
		}
	}
	return 0, false
}

// Achieved reports whether the given threshold has fired this session.
func (d *Detector) Achieved(threshold int64) bool {
	return d.achieved[threshold]
}
