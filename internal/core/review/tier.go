package review

// Tier is the categorical performance label derived from a numeric rating.
type Tier string

// Performance tiers, worst to best.
const (
	TierPoor      Tier = "Poor"
	TierAverage   Tier = "Average"
	TierGood      Tier = "Good"
	TierExcellent Tier = "Excellent"
)

// TierFor maps a rating to its performance tier:
//
//	<= 3  Poor
//	4..6  Average
//	7..8  Good
//	>= 9  Excellent
func TierFor(rating int) Tier {
	switch {
	case rating <= 3:
		return TierPoor
	case rating <= 6:
		return TierAverage
	case rating <= 8:
		return TierGood
	default:
		return TierExcellent
	}
}

// DisplayRow is a Review annotated with its derived tier label. It is
// constructed by Derive and never written back to the store.
type DisplayRow struct {
	Review
	PerformanceTier Tier
}

// Derive recomputes the tier-annotated view over a collection. The input
// records are not mutated.
func Derive(records []Review) []DisplayRow {
	rows := make([]DisplayRow, len(records))
	for i, r := range records {
		rows[i] = DisplayRow{Review: r, PerformanceTier: TierFor(r.Rating)}
	}
	return rows
}
