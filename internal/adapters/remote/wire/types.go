package wire

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Layouts used by the backend.
const (
	// GMTLayout is the *_gmt timestamp format: no zone, always UTC.
	GMTLayout = "2006-01-02T15:04:05"
	// DayLayout is the plain date format used by shipment tracking.
	DayLayout = "2006-01-02"
)

// GMTTime is a timestamp in GMTLayout. Empty strings and null decode to the
// zero time.
type GMTTime struct {
	time.Time
}

func (t *GMTTime) UnmarshalJSON(b []byte) error {
	return parseTime(b, GMTLayout, &t.Time)
}

func (t GMTTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(t.UTC().Format(GMTLayout))
}

// Day is a calendar date in DayLayout.
type Day struct {
	time.Time
}

func (d *Day) UnmarshalJSON(b []byte) error {
	return parseTime(b, DayLayout, &d.Time)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.UTC().Format(DayLayout))
}

// Millis is a Unix timestamp in milliseconds, as used by the shipping label
// API.
type Millis struct {
	time.Time
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		m.Time = time.Time{}
		return nil
	}
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("millisecond timestamp: %w", err)
	}
	m.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

func (m Millis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(strconv.FormatInt(m.UnixMilli(), 10)), nil
}

// Decimal accepts money and quantity values sent either as JSON numbers or
// as strings. Empty strings and null decode to zero.
type Decimal struct {
	decimal.Decimal
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if isNull(b) || bytes.Equal(b, []byte(`""`)) {
		d.Decimal = decimal.Zero
		return nil
	}
	return d.Decimal.UnmarshalJSON(b)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func parseTime(b []byte, layout string, dst *time.Time) error {
	if isNull(b) {
		*dst = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		*dst = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", s, err)
	}
	*dst = t
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
