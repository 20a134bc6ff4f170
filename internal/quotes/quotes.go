// Package quotes parses the quotes resource and rotates the content panel between
// the prayer countdown and a quote.
package quotes

import (
	"regexp"
	"strings"

	"github.com/akyairhashvil/takvim/internal/models"
)

var quoteLine = regexp.MustCompile(`^"([^"]*)",(.*)$`)

// ParseQuotes reads lines of the form "<text>",<source>. Lines that do not match,
// including a header, are skipped.
func ParseQuotes(text string) []models.Quote {
	var out []models.Quote
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		m := quoteLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[1])
		if body == "" {
			continue
		}
		out = append(out, models.Quote{Text: body, Source: strings.TrimSpace(m[2])})
	}
	return out
}

// Defaults is the built-in list shown when the quotes resource is unavailable.
func Defaults() []models.Quote {
	return []models.Quote{
		{
			Text:   "Kushdo që duron dhe fal, ta dijë se, në të vërtetë, këto janë nga veprimet më të virtytshme.",
			Source: "Shura - Ajeti 43",
		},
		{
			Text:   "Nuk ka ndodhur që të ketë ndonjë të pandëgjueshëm ndaj prindërve të tij, vetëmse e kemi gjetur të ishte arrogant, i palumtur. Pastaj e lexoi fjalën e Allahut të Lartësuar: \"Më ka bërë të mirësjellshëm ndaj nënës sime, e nuk më ka bërë kryelartë dhe as të pa lumtur (shekija)\"",
			Source: "Merjem: 32",
		},
		{
			Text:   "E kush beson në Allah dhe bën vepra të mira, Ai do t'i fusë në kopshte nëpër të cilat rrjedhin lumenj, ku do të qëndrojnë përgjithmonë.",
			Source: "Nisa: 57",
		},
		{
			Text:   "Dhe kush i frikësohet Allahut, Ai do t'i bëjë një rrugëdalje dhe do ta furnizojë nga aty ku nuk e pret.",
			Source: "Talak: 2-3",
		},
		{
			Text:   "O ju që besoni! Kërkoni ndihmë me durim dhe me namaz. Vërtet, Allahu është me të durueshmit.",
			Source: "Bekare: 153",
		},
		{
			Text:   "Dhe kush shpëton një jetë, është sikur të ketë shpëtuar gjithë njerëzimin.",
			Source: "Maide: 32",
		},
		{
			Text:   "Allahu nuk e ngarkon asnjë shpirt përtej mundësive të tij.",
			Source: "Bekare: 286",
		},
		{
			Text:   "Dhe kush mbështetet tek Allahu, atij Ai i mjafton. Vërtet, Allahu e realizon çështjen e Tij.",
			Source: "Talak: 3",
		},
		{
			Text:   "Dhe jepni lajmin e mirë të durueshmëve, të cilët kur i godet ndonjë fatkeqësi, thonë: 'Ne jemi të Allahut dhe tek Ai do të kthehemi'.",
			Source: "Bekare: 155-156",
		},
		{
			Text:   "Dhe mos humbni shpresën nga mëshira e Allahut. Vërtet, nga mëshira e Allahut nuk humbin shpresën, përveç popullit jobesimtar.",
			Source: "Jusuf: 87",
		},
	}
}
