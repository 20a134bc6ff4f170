package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/takvim/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// Resolution is one prayer picked out of a day.
type Resolution struct {
	Name models.PrayerName
	Time string
	// PreviousDay is set when the active prayer is carried over from yesterday.
	PreviousDay bool
	// NextDay is set when the next prayer wraps to tomorrow.
	NextDay bool
}

// FallbackDay returns the built-in times used when the table has no entry for date.
func FallbackDay(date string) models.PrayerDay {
	return models.PrayerDay{
		Date:    date,
		Imsaku:  "02:47",
		Sabahu:  "03:15",
		Sunrise: "04:59",
		Dreka:   "12:44",
		Ikindia: "16:47",
		Akshami: "20:22",
		Jacia:   "22:24",
	}
}

// TodaysTimes looks up today by exact date string.
func TodaysTimes(table models.PrayerTable, today string) models.PrayerDay {
	if day, ok := table[today]; ok {
		return day
	}
	return FallbackDay(today)
}

// ParseClock converts "HH:MM" into minutes past midnight.
func ParseClock(value string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return h*60 + m, nil
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

type timedEntry struct {
	models.PrayerEntry
	second int
}

// parsedEntries drops entries whose time cannot be parsed; they are never reached.
func parsedEntries(day models.PrayerDay) []timedEntry {
	var out []timedEntry
	for _, e := range day.Entries() {
		minutes, err := ParseClock(e.Time)
		if err != nil {
			continue
		}
		out = append(out, timedEntry{PrayerEntry: e, second: minutes * 60})
	}
	return out
}

// CurrentPrayer returns the last prayer whose time is at or before now. Before the
// first prayer of the day the night prayer is still running, so the last entry is
// returned with PreviousDay set. Its Time is taken from day, not from the previous
// day's row, since the display only shows the name.
func CurrentPrayer(day models.PrayerDay, now time.Time) (Resolution, bool) {
	entries := parsedEntries(day)
	if len(entries) == 0 {
		return Resolution{}, false
	}
	nowSec := secondOfDay(now)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].second <= nowSec {
			return Resolution{Name: entries[i].Name, Time: entries[i].Time}, true
		}
	}
	last := entries[len(entries)-1]
	return Resolution{Name: last.Name, Time: last.Time, PreviousDay: true}, true
}

// NextPrayer returns the first prayer strictly after now, wrapping to the first
// prayer of the next day.
func NextPrayer(day models.PrayerDay, now time.Time) (Resolution, bool) {
	entries := parsedEntries(day)
	if len(entries) == 0 {
		return Resolution{}, false
	}
	nowSec := secondOfDay(now)
	for _, e := range entries {
		if e.second > nowSec {
			return Resolution{Name: e.Name, Time: e.Time}, true
		}
	}
	first := entries[0]
	return Resolution{Name: first.Name, Time: first.Time, NextDay: true}, true
}

// Countdown is the time left from now until nextTime (HH:MM). A time at or before
// now is taken to be tomorrow.
func Countdown(nextTime string, now time.Time) (time.Duration, error) {
	minutes, err := ParseClock(nextTime)
	if err != nil {
		return 0, err
	}
	remaining := minutes*60 - secondOfDay(now)
	if remaining <= 0 {
		remaining += secondsPerDay
	}
	return time.Duration(remaining) * time.Second, nil
}
