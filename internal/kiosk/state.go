// Package kiosk holds the display state and the pure transitions that move it
// forward on each timer tick or load completion.
package kiosk

import (
	"math/rand"
	"time"

	"github.com/akyairhashvil/takvim/internal/calendar"
	"github.com/akyairhashvil/takvim/internal/loader"
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/akyairhashvil/takvim/internal/prayer"
	"github.com/akyairhashvil/takvim/internal/quotes"
)

// State is the single state object behind the display. Transitions take and
// return values; nothing is mutated in place.
type State struct {
	Location *time.Location
	Now      time.Time

	Table      models.PrayerTable
	Today      models.PrayerDay
	Current    prayer.Resolution
	HasCurrent bool
	Next       prayer.Resolution
	HasNext    bool
	Countdown  time.Duration

	Quotes  []models.Quote
	Rotator quotes.Rotator

	Profile      models.MosqueProfile
	ProfileFound bool

	Theme int

	TableLoaded  bool
	QuotesLoaded bool
	TableFailed  bool
	QuotesFailed bool
}

// Content is what the rotating panel shows while it is on the content side.
type Content struct {
	Title          string
	Body           string
	Source         string
	IsAnnouncement bool
}

// New returns a state at now with an empty table and no quotes loaded yet.
func New(loc *time.Location, order quotes.Order, rng *rand.Rand, now time.Time) State {
	if loc == nil {
		loc = time.UTC
	}
	s := State{
		Location: loc,
		Table:    models.PrayerTable{},
		Rotator:  quotes.NewRotator(order, rng, 0),
	}
	return s.Tick(now)
}

// Tick recomputes today's times, the active and next prayer, and the countdown
// from scratch.
func (s State) Tick(now time.Time) State {
	s.Now = now.In(s.Location)
	s.Today = prayer.TodaysTimes(s.Table, calendar.ISODate(s.Now, nil))
	s.Current, s.HasCurrent = prayer.CurrentPrayer(s.Today, s.Now)
	s.Next, s.HasNext = prayer.NextPrayer(s.Today, s.Now)
	s.Countdown = 0
	if s.HasNext {
		if d, err := prayer.Countdown(s.Next.Time, s.Now); err == nil {
			s.Countdown = d
		}
	}
	return s
}

// Rotate flips between the countdown and the content panel.
func (s State) Rotate() State {
	s.Rotator = s.Rotator.Toggle(len(s.Quotes))
	return s
}

// RotateWallpaper advances to the next of n themes.
func (s State) RotateWallpaper(n int) State {
	if n <= 0 {
		s.Theme = 0
		return s
	}
	s.Theme = (s.Theme + 1) % n
	return s
}

// ApplyPrayerTable swaps the table in whole and recomputes the derived fields.
func (s State) ApplyPrayerTable(res loader.PrayerResult) State {
	s.Table = res.Table
	if s.Table == nil {
		s.Table = models.PrayerTable{}
	}
	s.TableLoaded = true
	s.TableFailed = res.Failed
	return s.Tick(s.Now)
}

// ApplyQuotes replaces the quote list and restarts selection.
func (s State) ApplyQuotes(res loader.QuotesResult) State {
	s.Quotes = res.Quotes
	s.QuotesLoaded = true
	s.QuotesFailed = res.Failed
	s.Rotator = s.Rotator.Reset(len(s.Quotes))
	return s
}

// ApplyProfile replaces the profile.
func (s State) ApplyProfile(p models.MosqueProfile, found bool) State {
	s.Profile = p
	s.ProfileFound = found
	return s
}

// Loaded reports whether both resources have arrived.
func (s State) Loaded() bool {
	return s.TableLoaded && s.QuotesLoaded
}

// ShowingCountdown reports whether the panel is on the countdown side.
func (s State) ShowingCountdown() bool {
	return s.Rotator.Panel == quotes.ShowingCountdown
}

// Content returns the announcement when the profile has one, else the selected quote.
func (s State) Content() (Content, bool) {
	if s.Profile.HasAnnouncement() {
		return Content{
			Title:          s.Profile.AnnouncementTitle,
			Body:           s.Profile.AnnouncementBody,
			IsAnnouncement: true,
		}, true
	}
	q, ok := s.Rotator.Current(s.Quotes)
	if !ok {
		return Content{}, false
	}
	return Content{Body: q.Text, Source: q.Source}, true
}

// IsActive reports whether name is the highlighted prayer.
func (s State) IsActive(name models.PrayerName) bool {
	return s.HasCurrent && s.Current.Name == name
}
