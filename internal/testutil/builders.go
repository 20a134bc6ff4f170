package testutil

import (
	"time"

	"github.com/akyairhashvil/takvim/internal/models"
)

// PrayerDayBuilder provides fluent API for creating test prayer days.
type PrayerDayBuilder struct {
	day models.PrayerDay
}

// NewPrayerDay starts from round, easy-to-read times.
func NewPrayerDay() *PrayerDayBuilder {
	return &PrayerDayBuilder{
		day: models.PrayerDay{
			Date:    "2024-01-15",
			Imsaku:  "03:00",
			Sunrise: "05:00",
			Dreka:   "12:00",
			Ikindia: "16:00",
			Akshami: "20:00",
			Jacia:   "22:00",
		},
	}
}

func (b *PrayerDayBuilder) WithDate(date string) *PrayerDayBuilder {
	b.day.Date = date
	return b
}

func (b *PrayerDayBuilder) WithTime(name models.PrayerName, value string) *PrayerDayBuilder {
	switch name {
	case models.Imsaku:
		b.day.Imsaku = value
	case models.Sabahu:
		b.day.Sabahu = value
	case models.Sunrise:
		b.day.Sunrise = value
	case models.Dreka:
		b.day.Dreka = value
	case models.Ikindia:
		b.day.Ikindia = value
	case models.Akshami:
		b.day.Akshami = value
	case models.Jacia:
		b.day.Jacia = value
	}
	return b
}

func (b *PrayerDayBuilder) WithHoliday(holiday, notes string) *PrayerDayBuilder {
	b.day.Holiday = holiday
	b.day.Notes = notes
	return b
}

func (b *PrayerDayBuilder) Build() models.PrayerDay {
	return b.day
}

// TableOf indexes days by their date.
func TableOf(days ...models.PrayerDay) models.PrayerTable {
	table := make(models.PrayerTable, len(days))
	for _, d := range days {
		table[d.Date] = d
	}
	return table
}

// At returns a moment on 2024-01-15 in loc (UTC when nil).
func At(hour, minute, second int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(2024, time.January, 15, hour, minute, second, 0, loc)
}
