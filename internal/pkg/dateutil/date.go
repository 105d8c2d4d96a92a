package dateutil

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date without time-of-day. It marshals to and from
// JSON as "YYYY-MM-DD", which is the wire format the backend uses for
// date columns.
type Date struct {
	t time.Time
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(layout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(u Date) bool {
	return d.t.Before(u.t)
}

func (d Date) Equal(u Date) bool {
	return d.t.Equal(u.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(layout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	t, err := time.Parse(layout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.t = t
	return nil
}
