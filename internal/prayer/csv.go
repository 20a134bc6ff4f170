// Package prayer parses prayer-time tables and resolves the active and next
// prayer for a moment of the day.
package prayer

import (
	"strings"

	"github.com/akyairhashvil/takvim/internal/models"
)

// Column layout of a prayer-times row:
//
//	date,imsaku,sunrise,dreka,ikindia,akshami,jacia[,sabahu[,holiday[,notes]]]
const (
	colDate = iota
	colImsaku
	colSunrise
	colDreka
	colIkindia
	colAkshami
	colJacia
	colSabahu
	colHoliday
	colNotes
)

// ParseTable builds a table from CSV text. Surrounding whitespace and a byte order
// mark are dropped, then the first line is a header. Blank rows
// and rows with an empty date are skipped; no other validation is done, so short or
// malformed rows keep whatever strings they carry.
func ParseTable(text string) models.PrayerTable {
	table := make(models.PrayerTable)
	text = strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return table
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")
		date := strings.TrimSpace(values[colDate])
		if date == "" {
			continue
		}
		field := func(i int) string {
			if i >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[i])
		}
		table[date] = models.PrayerDay{
			Date:    date,
			Imsaku:  field(colImsaku),
			Sunrise: field(colSunrise),
			Dreka:   field(colDreka),
			Ikindia: field(colIkindia),
			Akshami: field(colAkshami),
			Jacia:   field(colJacia),
			Sabahu:  field(colSabahu),
			Holiday: field(colHoliday),
			Notes:   field(colNotes),
		}
	}
	return table
}
