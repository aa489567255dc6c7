package reporting

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// IST is the only civil timezone the business operates in.
var IST = time.FixedZone("IST", 5*3600+30*60)

// businessDayOffset is the café's operational rollover: a sale at 1am still
// belongs to the previous day, because the shop closes after midnight and
// the drawer is counted at 05:30.
const businessDayOffset = 5*time.Hour + 30*time.Minute

// WindowPolicy selects how a caller-supplied [startDate, endDate] pair is
// turned into a concrete createdAt range. The policies differ between
// endpoint families and the divergence is intentional: each endpoint keeps
// the window its consumers were built against, rather than silently
// unifying behaviour.
type WindowPolicy int

const (
	// PolicyBusinessDay spans start@05:30 IST to (end+1d)@05:30 IST,
	// exclusive upper bound. Used by /api/orders.
	PolicyBusinessDay WindowPolicy = iota

	// PolicyBusinessDayInclusive is the same span with an inclusive upper
	// bound. Used by /api/expenses and /api/bookings.
	PolicyBusinessDayInclusive

	// PolicyBusinessDayClipped ends 1ms before the rollover,
	// (end+1d)@05:29:59.999 IST, exclusive. Used by /api/insights.
	PolicyBusinessDayClipped

	// PolicyCalendarUTC spans UTC midnight to 23:59:59.999 of the nominal
	// dates with no IST shift. Used by /api/dashboard-data.
	PolicyCalendarUTC

	// PolicyVerbatim passes the supplied instants through untouched,
	// exclusive upper bound. Used by /api/percentage.
	PolicyVerbatim
)

// Window is a concrete createdAt range ready to become a Mongo filter.
type Window struct {
	Start        time.Time
	End          time.Time
	InclusiveEnd bool
}

// Normalize produces the window for the given policy. A single-day selection
// (start == end) still spans the full business day.
func Normalize(startDate, endDate time.Time, policy WindowPolicy) Window {
	switch policy {
	case PolicyBusinessDay:
		return Window{
			Start: atBusinessOpen(startDate),
			End:   atBusinessOpen(endDate).AddDate(0, 0, 1),
		}
	case PolicyBusinessDayInclusive:
		return Window{
			Start:        atBusinessOpen(startDate),
			End:          atBusinessOpen(endDate).AddDate(0, 0, 1),
			InclusiveEnd: true,
		}
	case PolicyBusinessDayClipped:
		return Window{
			Start: atBusinessOpen(startDate),
			End:   atBusinessOpen(endDate).AddDate(0, 0, 1).Add(-time.Millisecond),
		}
	case PolicyCalendarUTC:
		sy, sm, sd := startDate.UTC().Date()
		ey, em, ed := endDate.UTC().Date()
		return Window{
			Start:        time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC),
			End:          time.Date(ey, em, ed, 23, 59, 59, 999e6, time.UTC),
			InclusiveEnd: true,
		}
	default: // PolicyVerbatim
		return Window{Start: startDate, End: endDate}
	}
}

// atBusinessOpen returns 05:30 IST on the supplied instant's IST calendar
// date.
func atBusinessOpen(t time.Time) time.Time {
	y, m, d := t.In(IST).Date()
	return time.Date(y, m, d, 5, 30, 0, 0, IST)
}

// Filter renders the window as a createdAt range filter.
func (w Window) Filter() bson.M {
	bound := "$lt"
	if w.InclusiveEnd {
		bound = "$lte"
	}
	return bson.M{"createdAt": bson.M{"$gte": w.Start, bound: w.End}}
}

// Contains reports whether an instant falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if w.InclusiveEnd {
		return !t.After(w.End)
	}
	return t.Before(w.End)
}

// Duration is the window's length.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// BusinessDayKey assigns an instant to its business day label (YYYY-MM-DD).
// A timestamp belongs to day D when its IST civil time, shifted back by the
// 05:30 rollover, lands on D's calendar date. Since IST is UTC+5:30, that is
// exactly the UTC calendar date of the instant.
func BusinessDayKey(t time.Time) string {
	return t.In(IST).Add(-businessDayOffset).Format("2006-01-02")
}

// ISTDayKey is the plain IST calendar date (no rollover), used by the
// dashboard sales series which never adopted the business-day convention.
func ISTDayKey(t time.Time) string {
	return t.In(IST).Format("2006-01-02")
}

// DayLabels lists the nominal business-day labels for a caller-supplied
// date range, inclusive of both endpoints. The zero-filled insight rows come
// from this list.
func DayLabels(startDate, endDate time.Time) []string {
	start := dateOnly(startDate)
	end := dateOnly(endDate)
	var labels []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		labels = append(labels, d.Format("2006-01-02"))
	}
	return labels
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.In(IST).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts the formats the dashboard sends: a bare date or a full
// RFC 3339 instant.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
