package plan

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ParseDate parses a calendar date argument. The plain YYYY-MM-DD form
// resolves to local midnight; a full RFC 3339 timestamp is also accepted.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// ParseMonth validates a YYYY-MM month key.
func ParseMonth(s string) error {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return nil
}

// DayBounds returns the inclusive [00:00:00.000, 23:59:59.999] bounds of the
// calendar day containing t, in t's location. Both instants are derived
// independently from t; neither computation can disturb the other.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
	return start, end
}
