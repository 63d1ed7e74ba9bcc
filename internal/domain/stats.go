package domain

import "math"

// DetectionStats is the spot count triple returned by the detection service
// for a single uploaded image. Total is reported by the remote and is
// expected to equal Open+Occupied, but this layer never enforces that:
// whatever arrives is carried through and displayed as-is.
type DetectionStats struct {
	Open     int
	Occupied int
	Total    int
}

// OccupancyPercent returns Occupied/Total as a percentage rounded to one
// decimal place. A Total of zero yields 0 rather than an error; the value is
// display-only, so a defined zero beats a divide-by-zero for an empty lot
// photo (policy choice, not a mathematical one).
func (s DetectionStats) OccupancyPercent() float64 {
	if s.Total == 0 {
		return 0
	}
	pct := float64(s.Occupied) / float64(s.Total) * 100
	return math.Round(pct*10) / 10
}

// ServiceStatus is the detection service's health-check payload. Classes maps
// class index to label name, mirroring the remote model's class table.
type ServiceStatus struct {
	Status  string
	Model   string
	Classes map[string]string
}
