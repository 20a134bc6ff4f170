package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/hablullah/go-hijri"
	"github.com/maypok86/otter/v2"
	"github.com/rs/zerolog/log"
)

// HijriMonthNames replaces the numeric month returned by the converter.
var HijriMonthNames = [12]string{
	"Muharrem", "Sefer", "Rebiul Evvel", "Rebiul Ahir", "Xhumadel Ula", "Xhumadel Ahir",
	"Rexheb", "Shaban", "Ramazan", "Shevval", "Dhul Kaade", "Dhul Hixhxhe",
}

// HijriDate is a numeric Islamic calendar date; Month is 1-based.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

// HijriConverter turns a civil date into a Hijri date.
type HijriConverter interface {
	ToHijri(t time.Time) (HijriDate, error)
}

// UmmAlQura converts with the Umm al-Qura calendar tables.
type UmmAlQura struct{}

func (UmmAlQura) ToHijri(t time.Time) (HijriDate, error) {
	civil := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	d, err := hijri.CreateUmmAlQuraDate(civil)
	if err != nil {
		return HijriDate{}, fmt.Errorf("umm al-qura conversion of %s: %w", civil.Format("2006-01-02"), err)
	}
	return HijriDate{Year: int(d.Year), Month: int(d.Month), Day: int(d.Day)}, nil
}

// HijriFormatter renders Hijri dates and remembers the result for each civil date,
// since the display asks for it on every clock tick.
type HijriFormatter struct {
	conv  HijriConverter
	loc   *time.Location
	cache *otter.Cache[string, string]
}

func NewHijriFormatter(conv HijriConverter, loc *time.Location) *HijriFormatter {
	if conv == nil {
		conv = UmmAlQura{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &HijriFormatter{
		conv: conv,
		loc:  loc,
		cache: otter.Must(&otter.Options[string, string]{
			MaximumSize: 64,
		}),
	}
}

// Format returns e.g. "3/ Rexheb /1445 AH", or "" when conversion fails.
func (f *HijriFormatter) Format(t time.Time) string {
	t = t.In(f.loc)
	key := ISODate(t, nil)
	if s, ok := f.cache.GetIfPresent(key); ok {
		return s
	}
	d, err := f.conv.ToHijri(t)
	if err != nil {
		log.Error().Err(err).Str("date", key).Msg("[calendar] hijri conversion failed")
		return ""
	}
	s := formatHijri(d)
	f.cache.Set(key, s)
	return s
}

func formatHijri(d HijriDate) string {
	month := fmt.Sprintf("%d", d.Month)
	if d.Month >= 1 && d.Month <= len(HijriMonthNames) {
		month = HijriMonthNames[d.Month-1]
	}
	out := fmt.Sprintf("%d/ %s /%d", d.Day, month, d.Year)
	if !strings.Contains(out, "AH") {
		out += " AH"
	}
	return out
}
