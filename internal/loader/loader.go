// Package loader fetches the prayer-times and quotes resources. Failures never
// reach the caller as errors: they are logged and replaced by a fallback.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/akyairhashvil/takvim/internal/prayer"
	"github.com/akyairhashvil/takvim/internal/quotes"
	"github.com/rs/zerolog/log"
)

const maxResourceBytes = 4 << 20

// ErrEmptyLocation is returned when a resource location is blank.
var ErrEmptyLocation = errors.New("empty resource location")

// PrayerResult is the outcome of loading the prayer table.
type PrayerResult struct {
	Table  models.PrayerTable
	Failed bool
}

// QuotesResult is the outcome of loading quotes.
type QuotesResult struct {
	Quotes []models.Quote
	Failed bool
}

// Loader resolves resource locations against a base directory or over HTTP.
type Loader struct {
	PrayerTimesURL string
	QuotesURL      string
	ResourceDir    string
	Client         *http.Client
}

// New builds a Loader from the configuration.
func New(cfg *config.Config) *Loader {
	return &Loader{
		PrayerTimesURL: cfg.PrayerTimesURL,
		QuotesURL:      cfg.QuotesURL,
		ResourceDir:    cfg.ResourceDir,
		Client:         &http.Client{Timeout: config.FetchTimeout},
	}
}

// PrayerTable fetches and parses the prayer table. On failure the table is empty.
func (l *Loader) PrayerTable(ctx context.Context) PrayerResult {
	text, err := l.Fetch(ctx, l.PrayerTimesURL)
	if err != nil {
		log.Error().Err(err).Str("location", l.PrayerTimesURL).Msg("[loader] prayer times unavailable")
		return PrayerResult{Table: models.PrayerTable{}, Failed: true}
	}
	table := prayer.ParseTable(text)
	log.Debug().Int("days", len(table)).Msg("[loader] prayer times loaded")
	return PrayerResult{Table: table}
}

// Quotes fetches and parses quotes. On failure, or when the resource holds no
// usable line, the built-in list is returned.
func (l *Loader) Quotes(ctx context.Context) QuotesResult {
	text, err := l.Fetch(ctx, l.QuotesURL)
	if err != nil {
		log.Error().Err(err).Str("location", l.QuotesURL).Msg("[loader] quotes unavailable, using defaults")
		return QuotesResult{Quotes: quotes.Defaults(), Failed: true}
	}
	list := quotes.ParseQuotes(text)
	if len(list) == 0 {
		log.Warn().Str("location", l.QuotesURL).Msg("[loader] no quotes parsed, using defaults")
		return QuotesResult{Quotes: quotes.Defaults()}
	}
	log.Debug().Int("quotes", len(list)).Msg("[loader] quotes loaded")
	return QuotesResult{Quotes: list}
}

// Fetch returns the text at location: an http(s) URL or a path under ResourceDir.
func (l *Loader) Fetch(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", ErrEmptyLocation
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return l.fetchHTTP(ctx, location)
	}
	return l.readFile(location)
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")
	req.Header.Set("User-Agent", config.AppName)

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: config.FetchTimeout}
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("[loader] failed to close response body")
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceBytes))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	log.Debug().Str("url", url).Dur("took", time.Since(start)).Int("bytes", len(body)).Msg("[loader] fetched")
	return string(body), nil
}

// readFile treats location like a path under a web root: a leading slash is
// relative to ResourceDir and ".." cannot climb out of it.
func (l *Loader) readFile(location string) (string, error) {
	dir := l.ResourceDir
	if dir == "" {
		dir = config.DefaultResourceDir
	}
	rel := filepath.Clean("/" + filepath.FromSlash(location))
	path := filepath.Join(dir, rel)
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxResourceBytes))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
