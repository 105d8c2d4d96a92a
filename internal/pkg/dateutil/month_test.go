package dateutil

import (
	"errors"
	"testing"
)

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		year, month int
		first, last string
	}{
		{2023, 1, "2023-01-01", "2023-01-31"},
		{2023, 2, "2023-02-01", "2023-02-28"},
		{2024, 2, "2024-02-01", "2024-02-29"}, // leap year
		{2000, 2, "2000-02-01", "2000-02-29"}, // leap century
		{1900, 2, "1900-02-01", "1900-02-28"}, // non-leap century
		{2023, 4, "2023-04-01", "2023-04-30"},
		{2023, 12, "2023-12-01", "2023-12-31"}, // year rollover for the bound
	}

	for _, c := range cases {
		first, last, err := MonthBounds(c.year, c.month)
		if err != nil {
			t.Fatalf("MonthBounds(%d, %d) returned error: %v", c.year, c.month, err)
		}
		if first.String() != c.first {
			t.Errorf("MonthBounds(%d, %d) first = %s, want %s", c.year, c.month, first, c.first)
		}
		if last.String() != c.last {
			t.Errorf("MonthBounds(%d, %d) last = %s, want %s", c.year, c.month, last, c.last)
		}
	}
}

func TestMonthBoundsInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1, 99} {
		_, _, err := MonthBounds(2023, month)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Errorf("MonthBounds(2023, %d) error = %v, want ErrInvalidDateRange", month, err)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}

	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Errorf("MarshalJSON = %s, want %q", b, "2024-02-29")
	}

	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON returned error: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed date: %s != %s", back, d)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	for _, raw := range []string{`"2024-13-01"`, `"not-a-date"`, `20240101`, `""`} {
		if err := d.UnmarshalJSON([]byte(raw)); err == nil {
			t.Errorf("UnmarshalJSON(%s) = nil, want error", raw)
		}
	}
}
