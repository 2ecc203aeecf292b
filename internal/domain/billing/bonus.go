package billing

import "lounge-billing/internal/domain/pricing"

const secondsPerHour = 3600

// Bonus returns the free seconds earned for totalSeconds of play. Tiers unlock
// on hours played (not billable hours), each boundary inclusive, and only the
// highest unlocked tier applies. Negative input is treated as zero.
func Bonus(totalSeconds int64, tiers pricing.BonusTiers) int64 {
	if tiers.Disabled() || totalSeconds <= 0 {
		return 0
	}

	switch hoursPlayed := totalSeconds / secondsPerHour; {
	case hoursPlayed >= 3:
		return tiers.ThreeHours
	case hoursPlayed >= 2:
		return tiers.TwoHours
	case hoursPlayed >= 1:
		return tiers.OneHour
	default:
		return 0
	}
}
