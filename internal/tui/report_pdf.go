package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/takvim/internal/calendar"
	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/akyairhashvil/takvim/internal/util"
	"github.com/go-pdf/fpdf"
)

// ErrEmptyMonth is returned when the table has no day in the requested month.
var ErrEmptyMonth = errors.New("no prayer times for month")

// ExportMonthPDF writes the timetable of month's calendar month to dir and
// returns the file path. An empty dir means the user's reports directory.
func ExportMonthPDF(table models.PrayerTable, month time.Time, prof models.MosqueProfile, dir string) (string, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	var days []models.PrayerDay
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if day, ok := table[calendar.ISODate(d, nil)]; ok {
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return "", fmt.Errorf("%w %s", ErrEmptyMonth, first.Format("2006-01"))
	}

	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	names := []models.PrayerName{models.Imsaku}
	if prof.ShowIqamah {
		names = append(names, models.Sabahu)
	}
	names = append(names, models.Sunrise, models.Dreka, models.Ikindia, models.Akshami, models.Jacia)

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	title := fmt.Sprintf("Takvimi %s %d", calendar.MonthNames[first.Month()-1], first.Year())
	if prof.MosqueName != "" {
		title = prof.MosqueName + " - " + title
	}
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	if prof.Location != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 6, tr(prof.Location), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	const dateWidth, timeWidth = 42.0, 24.0
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(dateWidth, 8, tr("Data"), "1", 0, "C", false, 0, "")
	for _, n := range names {
		pdf.CellFormat(timeWidth, 8, tr(calendar.PrayerLabel(n)), "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(0, 8, tr("Shënime"), "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, day := range days {
		d, err := time.Parse("2006-01-02", day.Date)
		label := day.Date
		if err == nil {
			label = fmt.Sprintf("%s %d", calendar.DayNames[d.Weekday()], d.Day())
		}
		pdf.CellFormat(dateWidth, 7, tr(label), "1", 0, "L", false, 0, "")
		for _, n := range names {
			pdf.CellFormat(timeWidth, 7, day.Time(n), "1", 0, "C", false, 0, "")
		}
		note := day.Holiday
		if day.Notes != "" {
			if note != "" {
				note += " - "
			}
			note += day.Notes
		}
		pdf.CellFormat(0, 7, tr(note), "1", 1, "L", false, 0, "")
	}

	if prof.Imam != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, tr("Imami: "+prof.Imam), "", 1, "L", false, 0, "")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", config.AppName, first.Format("2006-01")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
