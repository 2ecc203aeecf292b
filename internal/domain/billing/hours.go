package billing

// BonusBufferMinutes is the grace period applied when bonus time was granted.
// It is fixed on purpose and is not the tenant's configurable buffer.
const BonusBufferMinutes = 5

// BillableHours converts play time into whole paid hours. The policy is picked
// by whether any bonus was granted:
//
//   - bonusSeconds == 0: noBonusPolicy, tenant buffer (bufferMinutes) on total time
//   - bonusSeconds  > 0: bonusPolicy, fixed 5 minute buffer on time after bonus
//
// Zero play time bills nothing; any positive play time bills at least one hour.
// Negative arguments are clamped to zero; callers validate input beforehand.
func BillableHours(totalSeconds, bonusSeconds int64, bufferMinutes int) int64 {
	if totalSeconds <= 0 {
		return 0
	}
	if bonusSeconds <= 0 {
		return noBonusPolicy(totalSeconds, max(bufferMinutes, 0))
	}
	return bonusPolicy(totalSeconds, bonusSeconds)
}

func noBonusPolicy(totalSeconds int64, bufferMinutes int) int64 {
	return roundWithBuffer(totalSeconds, int64(bufferMinutes)*60)
}

func bonusPolicy(totalSeconds, bonusSeconds int64) int64 {
	billableSeconds := max(totalSeconds-bonusSeconds, 0)
	return roundWithBuffer(billableSeconds, BonusBufferMinutes*60)
}

// roundWithBuffer rounds down to the last full hour while the overage stays
// within bufferSeconds, otherwise up. The floor is one hour.
func roundWithBuffer(seconds, bufferSeconds int64) int64 {
	fullHours := seconds / secondsPerHour
	bufferLimit := fullHours*secondsPerHour + bufferSeconds
	if seconds <= bufferLimit {
		return max(fullHours, 1)
	}
	return fullHours + 1
}

// extraTimeSeconds is time played past the no-bonus buffer. It is only reported
// for Playstation on weekends.
func extraTimeSeconds(totalSeconds int64, bufferMinutes int) int64 {
	fullHours := totalSeconds / secondsPerHour
	over := totalSeconds - (fullHours*secondsPerHour + int64(max(bufferMinutes, 0))*60)
	return max(over, 0)
}
