package reporting

import "time"

// Growth returns the percentage change from previous to current. The
// zero-previous edge case historically varied between endpoints (raw value
// in one place, clamped 100 in another); this is the single deliberate
// rule now: no history and something sold is +100%, no history and nothing
// sold is flat 0. Never NaN.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return ((current - previous) / previous) * 100
}

// PreviousWindow is the equal-length period immediately preceding w, with
// no gap. A zero-width window has no duration to mirror, so its previous
// period is the full calendar day before its start.
func PreviousWindow(w Window) Window {
	d := w.Duration()
	if d <= 0 {
		d = 24 * time.Hour
	}
	return Window{
		Start:        w.Start.Add(-d),
		End:          w.Start,
		InclusiveEnd: false,
	}
}
