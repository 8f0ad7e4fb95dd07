package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TissueStats summarizes the score distribution for one tissue.
type TissueStats struct {
	Tissue string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats computes per-tissue score summaries in first-seen tissue order.
func Stats(records []Record) []TissueStats {
	scores := make(map[string][]float64)
	for _, r := range records {
		scores[r.Tissue] = append(scores[r.Tissue], r.PCC)
	}

	var out []TissueStats
	for _, tissue := range Tissues(records) {
		s := scores[tissue]
		ts := TissueStats{
			Tissue: tissue,
			Count:  len(s),
			Mean:   stat.Mean(s, nil),
			Min:    floats.Min(s),
			Max:    floats.Max(s),
		}
		if len(s) > 1 {
			ts.StdDev = stat.StdDev(s, nil)
		}
		out = append(out, ts)
	}
	return out
}
