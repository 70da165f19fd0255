package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Date is a calendar day. The zero value means no date.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(v string) (Date, error) {
	t, err := time.ParseInLocation(layoutISO, strings.TrimSpace(v), time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("entity: dates should be in the format YYYY-MM-DD, got %q", v)
	}
	return Date{Time: t}, nil
}

// MustDate parses the input and panics on error. Intended for tests.
func MustDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Same reports whether both dates fall on the same day.
func (d Date) Same(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Cmp orders dates; an unset date sorts last.
func (d Date) Cmp(other Date) int {
	switch {
	case d.IsZero() && other.IsZero():
		return 0
	case d.IsZero():
		return 1
	case other.IsZero():
		return -1
	default:
		return d.Time.Compare(other.Time)
	}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
