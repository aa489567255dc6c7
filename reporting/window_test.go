package reporting

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return ts
}

func TestBusinessDayKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// 2am IST belongs to the previous business day.
		{"2024-01-02T02:00:00+05:30", "2024-01-01"},
		// After the 05:30 rollover the new day starts.
		{"2024-01-02T05:30:00+05:30", "2024-01-02"},
		{"2024-01-02T05:29:59+05:30", "2024-01-01"},
		{"2024-01-02T06:00:00+05:30", "2024-01-02"},
		// An ordinary evening sale.
		{"2024-01-01T20:15:00+05:30", "2024-01-01"},
		// Same instants expressed in UTC.
		{"2024-01-01T20:30:00Z", "2024-01-01"},
		{"2024-01-02T00:30:00Z", "2024-01-02"},
	}
	for _, tt := range tests {
		ts := mustParse(t, tt.in)
		if got := BusinessDayKey(ts); got != tt.want {
			t.Errorf("BusinessDayKey(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeBusinessDay(t *testing.T) {
	start := mustParse(t, "2024-01-01")
	end := mustParse(t, "2024-01-03")

	w := Normalize(start, end, PolicyBusinessDay)
	wantStart := time.Date(2024, 1, 1, 5, 30, 0, 0, IST)
	wantEnd := time.Date(2024, 1, 4, 5, 30, 0, 0, IST)
	if !w.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", w.End, wantEnd)
	}
	if w.InclusiveEnd {
		t.Error("business-day window should have an exclusive end")
	}
}

func TestNormalizeSingleDaySpansFullBusinessDay(t *testing.T) {
	day := mustParse(t, "2024-01-01")
	w := Normalize(day, day, PolicyBusinessDay)

	if got := w.Duration(); got != 24*time.Hour {
		t.Errorf("single-day window duration = %v, want 24h", got)
	}
	// 1am the next calendar day is still inside the business day.
	if !w.Contains(mustParse(t, "2024-01-02T01:00:00+05:30")) {
		t.Error("1am next day should fall inside the single-day window")
	}
	if w.Contains(mustParse(t, "2024-01-02T06:00:00+05:30")) {
		t.Error("6am next day should fall outside the single-day window")
	}
}

func TestNormalizeClippedEndsBeforeRollover(t *testing.T) {
	day := mustParse(t, "2024-01-01")
	w := Normalize(day, day, PolicyBusinessDayClipped)

	wantEnd := time.Date(2024, 1, 2, 5, 29, 59, 999e6, IST)
	if !w.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", w.End, wantEnd)
	}
}

func TestNormalizeInclusive(t *testing.T) {
	day := mustParse(t, "2024-01-01")
	w := Normalize(day, day, PolicyBusinessDayInclusive)
	if !w.InclusiveEnd {
		t.Error("inclusive policy should set InclusiveEnd")
	}
	if !w.Contains(w.End) {
		t.Error("inclusive window should contain its end instant")
	}
}

func TestNormalizeCalendarUTC(t *testing.T) {
	start := mustParse(t, "2024-03-10")
	end := mustParse(t, "2024-03-12")
	w := Normalize(start, end, PolicyCalendarUTC)

	if !w.Start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", w.Start)
	}
	if !w.End.Equal(time.Date(2024, 3, 12, 23, 59, 59, 999e6, time.UTC)) {
		t.Errorf("end = %v", w.End)
	}
	if !w.InclusiveEnd {
		t.Error("calendar-UTC window is inclusive")
	}
}

func TestNormalizeVerbatim(t *testing.T) {
	start := mustParse(t, "2024-01-05T12:00:00Z")
	end := mustParse(t, "2024-01-06T18:00:00Z")
	w := Normalize(start, end, PolicyVerbatim)
	if !w.Start.Equal(start) || !w.End.Equal(end) {
		t.Errorf("verbatim window altered the instants: %v %v", w.Start, w.End)
	}
}

func TestWindowFilterBounds(t *testing.T) {
	day := mustParse(t, "2024-01-01")

	f := Normalize(day, day, PolicyBusinessDay).Filter()
	rangeFilter := f["createdAt"].(bson.M)
	if _, ok := rangeFilter["$lt"]; !ok {
		t.Error("exclusive window should use $lt")
	}

	f = Normalize(day, day, PolicyBusinessDayInclusive).Filter()
	rangeFilter = f["createdAt"].(bson.M)
	if _, ok := rangeFilter["$lte"]; !ok {
		t.Error("inclusive window should use $lte")
	}
}

func TestDayLabels(t *testing.T) {
	got := DayLabels(mustParse(t, "2024-01-30"), mustParse(t, "2024-02-02"))
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	single := DayLabels(mustParse(t, "2024-01-15"), mustParse(t, "2024-01-15"))
	if len(single) != 1 || single[0] != "2024-01-15" {
		t.Errorf("single day labels = %v", single)
	}
}

func TestParseDate(t *testing.T) {
	for _, ok := range []string{"2024-01-01", "2024-01-01T10:30:00Z", "2024-01-01T10:30:00.123+05:30"} {
		if _, err := ParseDate(ok); err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "yesterday", "01/02/2024"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
