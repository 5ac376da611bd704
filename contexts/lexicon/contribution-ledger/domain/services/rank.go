package services

// RankInterval is the number of contributions between rank bumps.
const RankInterval = 10

// ShouldAdvanceRank is evaluated against the pre-increment count, so the
// first bump happens on a user's very first contribution.
func ShouldAdvanceRank(observedCount int) bool {
	return observedCount >= 0 && observedCount%RankInterval == 0
}
