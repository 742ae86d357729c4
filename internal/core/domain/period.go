package domain

import (
	"fmt"
	"time"

	"github.com/djoufack/cashpilot/internal/apperrors"
)

// DateLayout is the wire format of period bounds.
const DateLayout = "2006-01-02"

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// NewPeriod builds a validated period.
func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: start, End: end}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// ParsePeriod parses two YYYY-MM-DD bounds.
func ParsePeriod(start, end string) (Period, error) {
	if start == "" || end == "" {
		return Period{}, fmt.Errorf("%w: startDate and endDate are required", apperrors.ErrInvalidPeriod)
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: startDate %q: %v", apperrors.ErrInvalidPeriod, start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: endDate %q: %v", apperrors.ErrInvalidPeriod, end, err)
	}
	return NewPeriod(s, e)
}

// Validate checks both bounds are set and ordered.
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", apperrors.ErrInvalidPeriod)
	}
	if day(p.End).Before(day(p.Start)) {
		return fmt.Errorf("%w: startDate %s is after endDate %s", apperrors.ErrInvalidPeriod,
			p.Start.Format(DateLayout), p.End.Format(DateLayout))
	}
	return nil
}

// Contains reports whether t falls on a day inside the period.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	d := day(t)
	return !d.Before(day(p.Start)) && !d.After(day(p.End))
}

func (p Period) String() string {
	return p.Start.Format(DateLayout) + ".." + p.End.Format(DateLayout)
}

// day drops the clock part, keeping the calendar date as seen in t's own location.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
