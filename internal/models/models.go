package models

import "strings"

// PrayerName identifies one time-of-day entry in a prayer day.
type PrayerName string

const (
	Imsaku  PrayerName = "imsaku"
	Sabahu  PrayerName = "sabahu"
	Sunrise PrayerName = "sunrise"
	Dreka   PrayerName = "dreka"
	Ikindia PrayerName = "ikindia"
	Akshami PrayerName = "akshami"
	Jacia   PrayerName = "jacia"
)

// ResolutionOrder is the fixed daily sequence used to find the active and next prayer.
// Sabahu is informational and never takes part in resolution.
var ResolutionOrder = []PrayerName{Imsaku, Sunrise, Dreka, Ikindia, Akshami, Jacia}

// PrayerEntry pairs a prayer with its HH:MM time.
type PrayerEntry struct {
	Name PrayerName
	Time string
}

// PrayerDay holds the times for a single calendar date.
type PrayerDay struct {
	Date    string // YYYY-MM-DD
	Imsaku  string
	Sunrise string
	Dreka   string
	Ikindia string
	Akshami string
	Jacia   string
	Sabahu  string // optional
	Holiday string // optional
	Notes   string // optional
}

// Time returns the HH:MM value stored for name, or "" when unknown.
func (d PrayerDay) Time(name PrayerName) string {
	switch name {
	case Imsaku:
		return d.Imsaku
	case Sabahu:
		return d.Sabahu
	case Sunrise:
		return d.Sunrise
	case Dreka:
		return d.Dreka
	case Ikindia:
		return d.Ikindia
	case Akshami:
		return d.Akshami
	case Jacia:
		return d.Jacia
	}
	return ""
}

// Entries returns the six resolution entries in their fixed order.
func (d PrayerDay) Entries() []PrayerEntry {
	out := make([]PrayerEntry, 0, len(ResolutionOrder))
	for _, name := range ResolutionOrder {
		out = append(out, PrayerEntry{Name: name, Time: d.Time(name)})
	}
	return out
}

// PrayerTable maps an ISO date to its prayer day. It is built once per load and
// replaced wholesale, never edited in place.
type PrayerTable map[string]PrayerDay

// Quote is a text with its source citation.
type Quote struct {
	Text   string
	Source string
}

// MosqueProfile is the user-editable record shown on the display.
type MosqueProfile struct {
	Imam              string `json:"imam"`
	MosqueName        string `json:"mosqueName"`
	Location          string `json:"location"`
	AnnouncementTitle string `json:"announcementTitle,omitempty"`
	AnnouncementBody  string `json:"announcementBody,omitempty"`
	ShowIqamah        bool   `json:"showIqamah"`
}

// HasAnnouncement reports whether an announcement should replace quotes.
func (p MosqueProfile) HasAnnouncement() bool {
	return strings.TrimSpace(p.AnnouncementTitle) != "" || strings.TrimSpace(p.AnnouncementBody) != ""
}
