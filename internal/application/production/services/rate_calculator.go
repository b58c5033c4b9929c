package services

// RequiredPerMinute converts a target quantity over a time window into a per-minute rate.
// Both arguments must be finite and strictly positive; callers validate them.
func RequiredPerMinute(targetQuantity, timePeriodMinutes float64) float64 {
	return targetQuantity / timePeriodMinutes
}
