package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imanhub/solat-server/internal/model"
)

// PrimarySource queries the waktusolat-style monthly API: a day-indexed
// collection of rows whose five prayer fields are Unix timestamps. The API
// has drifted shapes across versions, so decoding walks an ordered list of
// known variants and takes the first that matches.
type PrimarySource struct {
	base   string
	loc    *time.Location
	client *http.Client
}

// NewPrimary builds the primary source. Timestamps are rendered to "HH:MM"
// in loc, the zone's civil timezone.
func NewPrimary(base string, loc *time.Location) *PrimarySource {
	return &PrimarySource{
		base: strings.TrimRight(base, "/"),
		loc:  loc,
		// no client-level timeout: the per-source deadline on the request
		// context bounds the call
		client: &http.Client{},
	}
}

func (p *PrimarySource) Name() string { return "waktusolat" }

// primaryRow is one day's boundaries as epoch seconds, already lifted out of
// whichever wire variant carried it.
type primaryRow struct {
	Day                             int
	Fajr, Dhuhr, Asr, Maghrib, Isha int64
}

func (r primaryRow) complete() bool {
	return r.Fajr > 0 && r.Dhuhr > 0 && r.Asr > 0 && r.Maghrib > 0 && r.Isha > 0
}

// primaryVariants is the ordered list of wire shapes the API has been seen
// returning, newest first. A decoder returns no rows on structural mismatch.
var primaryVariants = []struct {
	name   string
	decode func([]byte) []primaryRow
}{
	{"v2", decodePrimaryV2},
	{"v1", decodePrimaryV1},
	{"takwim", decodePrimaryTakwim},
}

func (p *PrimarySource) Fetch(ctx context.Context, zone string, day time.Time) (model.Schedule, error) {
	url := fmt.Sprintf("%s/v2/solat/%s", p.base, strings.ToLower(zone))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Schedule{}, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("primary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Schedule{}, fmt.Errorf("primary returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("reading primary response: %w", err)
	}

	for _, v := range primaryVariants {
		rows := v.decode(body)
		if len(rows) == 0 {
			continue
		}
		row, substituted := pickRow(rows, day.Day())
		s := p.normalize(row, zone, day)
		s.Provenance = p.Name() + "/" + v.name
		if substituted {
			// wrong-day fallback is surfaced, not silently guessed
			s.Provenance += " (substituted day)"
		}
		return s, nil
	}
	return model.Schedule{}, fmt.Errorf("%w (primary)", ErrMalformedResponse)
}

// pickRow selects the row for the given day of month. When the collection
// has no matching row the first row is used as a best-effort stand-in and
// the substitution is reported to the caller.
func pickRow(rows []primaryRow, dayOfMonth int) (primaryRow, bool) {
	for _, r := range rows {
		if r.Day == dayOfMonth {
			return r, false
		}
	}
	return rows[0], true
}

// normalize converts a row of epoch seconds into the canonical local-time
// schedule.
func (p *PrimarySource) normalize(r primaryRow, zone string, day time.Time) model.Schedule {
	hhmm := func(ts int64) string {
		return time.Unix(ts, 0).In(p.loc).Format("15:04")
	}
	return model.Schedule{
		Zone:    strings.ToUpper(zone),
		Date:    day.Format("2006-01-02"),
		Fajr:    hhmm(r.Fajr),
		Dhuhr:   hhmm(r.Dhuhr),
		Asr:     hhmm(r.Asr),
		Maghrib: hhmm(r.Maghrib),
		Isha:    hhmm(r.Isha),
	}
}

// decodePrimaryV2 handles the current shape: a top-level "prayers" array
// with canonical field names.
func decodePrimaryV2(body []byte) []primaryRow {
	var doc struct {
		Prayers []struct {
			Day     int   `json:"day"`
			Fajr    int64 `json:"fajr"`
			Dhuhr   int64 `json:"dhuhr"`
			Asr     int64 `json:"asr"`
			Maghrib int64 `json:"maghrib"`
			Isha    int64 `json:"isha"`
		} `json:"prayers"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil
	}
	rows := make([]primaryRow, 0, len(doc.Prayers))
	for _, r := range doc.Prayers {
		row := primaryRow{Day: r.Day, Fajr: r.Fajr, Dhuhr: r.Dhuhr, Asr: r.Asr, Maghrib: r.Maghrib, Isha: r.Isha}
		if !row.complete() {
			return nil
		}
		rows = append(rows, row)
	}
	return rows
}

// decodePrimaryV1 handles the older envelope that nested the same rows under
// data.prayerTimes.
func decodePrimaryV1(body []byte) []primaryRow {
	var doc struct {
		Data struct {
			PrayerTimes []struct {
				Day     int   `json:"day"`
				Fajr    int64 `json:"fajr"`
				Dhuhr   int64 `json:"dhuhr"`
				Asr     int64 `json:"asr"`
				Maghrib int64 `json:"maghrib"`
				Isha    int64 `json:"isha"`
			} `json:"prayerTimes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil
	}
	rows := make([]primaryRow, 0, len(doc.Data.PrayerTimes))
	for _, r := range doc.Data.PrayerTimes {
		row := primaryRow{Day: r.Day, Fajr: r.Fajr, Dhuhr: r.Dhuhr, Asr: r.Asr, Maghrib: r.Maghrib, Isha: r.Isha}
		if !row.complete() {
			return nil
		}
		rows = append(rows, row)
	}
	return rows
}

// decodePrimaryTakwim handles the legacy takwim export with transliterated
// Malay field names.
func decodePrimaryTakwim(body []byte) []primaryRow {
	var doc struct {
		PrayerTime []struct {
			Day     int   `json:"day"`
			Subuh   int64 `json:"subuh"`
			Zohor   int64 `json:"zohor"`
			Asar    int64 `json:"asar"`
			Maghrib int64 `json:"maghrib"`
			Isyak   int64 `json:"isyak"`
		} `json:"prayerTime"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil
	}
	rows := make([]primaryRow, 0, len(doc.PrayerTime))
	for _, r := range doc.PrayerTime {
		row := primaryRow{Day: r.Day, Fajr: r.Subuh, Dhuhr: r.Zohor, Asr: r.Asar, Maghrib: r.Maghrib, Isha: r.Isyak}
		if !row.complete() {
			return nil
		}
		rows = append(rows, row)
	}
	return rows
}
