package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedDate = errors.New("malformed date, expected YYYY-MM-DD")
	ErrInvalidRange  = errors.New("start date must be on or before end date")
	ErrZeroDate      = errors.New("date must not be zero")
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive interval of calendar days. A range whose
// start equals its end is a valid single-day stay.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrZeroDate
	}
	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return DateRange{}, ErrMalformedDate
	}
	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return DateRange{}, ErrMalformedDate
	}
	return NewDateRange(start, end)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps uses inclusive bounds on both sides: two stays that touch on
// the same calendar day both occupy that day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// Days is the number of calendar days covered, counting both endpoints.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s/%s", r.start.Format(DateLayout), r.end.Format(DateLayout))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
