// Package calendar formats Gregorian and Hijri dates with the fixed Albanian
// name tables used on the display.
package calendar

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/takvim/internal/models"
)

// DayNames is indexed by time.Weekday (Sunday first).
var DayNames = [7]string{"E Diel", "E Hënë", "E Martë", "E Mërkurë", "E Enjte", "E Premte", "E Shtunë"}

// MonthNames is indexed by time.Month - 1.
var MonthNames = [12]string{
	"Janar", "Shkurt", "Mars", "Prill", "Maj", "Qershor",
	"Korrik", "Gusht", "Shtator", "Tetor", "Nëntor", "Dhjetor",
}

var prayerLabels = map[models.PrayerName]string{
	models.Imsaku:  "Imsaku",
	models.Sabahu:  "Sabahu",
	models.Sunrise: "L. e Diellit",
	models.Dreka:   "Dreka",
	models.Ikindia: "Ikindia",
	models.Akshami: "Akshami",
	models.Jacia:   "Jacia",
}

// PrayerLabel returns the display name of a prayer.
func PrayerLabel(name models.PrayerName) string {
	if label, ok := prayerLabels[name]; ok {
		return label
	}
	return string(name)
}

// FormatGregorian renders "DayName, Day Month Year" for t as seen in loc.
func FormatGregorian(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s, %d %s %d", DayNames[t.Weekday()], t.Day(), MonthNames[t.Month()-1], t.Year())
}

// ISODate returns the YYYY-MM-DD key of t as seen in loc.
func ISODate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("2006-01-02")
}
