package gamemath

// StatusTier maps a percentage to one of six bar images (0..5). Inclusive
// bars use >= thresholds. Strict bars (the boss bar) use > thresholds and
// only show the full image at exactly 100.
func StatusTier(pct float64, strict bool) int {
	pct = ClampPercentage(pct)
	if pct >= 100 {
		return 5
	}
	thresholds := [...]float64{80, 60, 40, 20}
	for i, th := range thresholds {
		if pct >= th && (!strict || pct > th) {
			return 4 - i
		}
	}
	return 0
}
