package practice

import "math"

// SetStats are the display-ready aggregates for a completed set.
type SetStats struct {
	Attempted   int
	Correct     int
	Accuracy    int     // whole percent
	AverageTime float64 // seconds, one decimal
}

// ComputeSetStats derives accuracy and average time from raw set
// counters. Both derivations return 0 for an empty set.
func ComputeSetStats(attempted, correct int, totalTime float64) SetStats {
	s := SetStats{Attempted: attempted, Correct: correct}
	if attempted == 0 {
		return s
	}
	s.Accuracy = int(math.Round(100 * float64(correct) / float64(attempted)))
	s.AverageTime = math.Round(totalTime/float64(attempted)*10) / 10
	return s
}
