package kiosk

import "time"

// Clock supplies the current instant in the reference timezone.
type Clock interface {
	Now() time.Time
}

// ZoneClock reads the wall clock and converts it to Location.
type ZoneClock struct {
	Location *time.Location
}

func (c ZoneClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant. Tests use it.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
