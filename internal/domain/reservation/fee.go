package reservation

// ComputeFee applies the consultant multiplier to the configured base fee.
func ComputeFee(baseFee, consultantRate int, isConsultant bool) int {
	if isConsultant {
		return baseFee * consultantRate
	}
	return baseFee
}
