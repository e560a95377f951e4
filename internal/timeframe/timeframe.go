// Package timeframe resolves user-specified timeframes (hours back, days
// back, explicit date, explicit range) into a validated UTC date window.
package timeframe

import (
	"time"

	"github.com/gnomegl/relslurp/internal/errs"
)

// MaxSpanDays caps the inclusive calendar-day span of a resolved window.
// The cap bounds how far back pagination early-stop has to scan and how
// large a warehouse result can get.
const MaxSpanDays = 7

var (
	// ErrInvalidWindow means the window start is after its end
	ErrInvalidWindow = errs.New(errs.CodeValidation, "window start is after window end")

	// ErrFutureWindow means the window starts in the future
	ErrFutureWindow = errs.New(errs.CodeValidation, "window start is in the future")

	// ErrWindowTooLarge means the window spans more than MaxSpanDays calendar days
	ErrWindowTooLarge = errs.Newf(errs.CodeValidation, "window spans more than %d days", MaxSpanDays)
)

// Kind discriminates Descriptor variants
type Kind int

const (
	KindHours Kind = iota
	KindDays
	KindDate
	KindRange
)

// Descriptor is a tagged union describing a requested timeframe.
// Exactly the fields of the active Kind are meaningful.
type Descriptor struct {
	Kind   Kind
	N      int       // KindHours, KindDays
	Anchor time.Time // optional end anchor for KindDays; zero means "now"
	Date   time.Time // KindDate
	Start  time.Time // KindRange
	End    time.Time // KindRange
}

// Hours describes the last n hours ending now
func Hours(n int) Descriptor { return Descriptor{Kind: KindHours, N: n} }

// Days describes the last n calendar days ending today
func Days(n int) Descriptor { return Descriptor{Kind: KindDays, N: n} }

// DaysEnding describes the last n calendar days ending on the anchor day
func DaysEnding(n int, anchor time.Time) Descriptor {
	return Descriptor{Kind: KindDays, N: n, Anchor: anchor}
}

// Date describes a single calendar day
func Date(d time.Time) Descriptor { return Descriptor{Kind: KindDate, Date: d} }

// Range describes an explicit start and end day, both inclusive
func Range(start, end time.Time) Descriptor {
	return Descriptor{Kind: KindRange, Start: start, End: end}
}

// Window is a resolved [Start, End] window, both bounds inclusive, in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, boundaries included
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days returns the inclusive calendar-day span of the window
func (w Window) Days() int {
	return int(startOfDay(w.End).Sub(startOfDay(w.Start)).Hours()/24) + 1
}

// Resolve turns a descriptor into a validated window. It is a pure function
// of its inputs; now is injected so callers can pin it in tests.
func Resolve(d Descriptor, now time.Time) (Window, error) {
	now = now.UTC()

	var w Window
	switch d.Kind {
	case KindHours:
		if d.N <= 0 {
			return Window{}, errs.Newf(errs.CodeInvalidArgument, "hours must be positive, got %d", d.N)
		}
		w = Window{Start: now.Add(-time.Duration(d.N) * time.Hour), End: now}
	case KindDays:
		if d.N <= 0 {
			return Window{}, errs.Newf(errs.CodeInvalidArgument, "days must be positive, got %d", d.N)
		}
		anchor := now
		if !d.Anchor.IsZero() {
			anchor = d.Anchor.UTC()
		}
		end := endOfDay(anchor)
		w = Window{Start: startOfDay(end.AddDate(0, 0, -(d.N - 1))), End: end}
	case KindDate:
		if d.Date.IsZero() {
			return Window{}, errs.New(errs.CodeInvalidArgument, "date is required")
		}
		w = Window{Start: startOfDay(d.Date), End: endOfDay(d.Date)}
	case KindRange:
		if d.Start.IsZero() || d.End.IsZero() {
			return Window{}, errs.New(errs.CodeInvalidArgument, "range start and end are required")
		}
		w = Window{Start: startOfDay(d.Start), End: endOfDay(d.End)}
	default:
		return Window{}, errs.Newf(errs.CodeInvalidArgument, "unknown timeframe kind %d", d.Kind)
	}

	if w.Start.After(w.End) {
		return Window{}, ErrInvalidWindow
	}
	if w.Start.After(now) {
		return Window{}, ErrFutureWindow
	}
	if w.Days() > MaxSpanDays {
		return Window{}, ErrWindowTooLarge
	}
	return w, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
