package report

// bonusThresholdPct is the ceiling, in displayed percentage points, that
// both the late rate and the rework rate must stay at or under.
const bonusThresholdPct = 5

// BonusEligible applies the bonus rule to the displayed (rounded)
// percentages. Ties at exactly the threshold remain eligible.
func BonusEligible(lateRatePct, reworkRatePct int) bool {
	return lateRatePct <= bonusThresholdPct && reworkRatePct <= bonusThresholdPct
}
