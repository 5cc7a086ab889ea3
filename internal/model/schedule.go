package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Prayer names in chronological order over one day.
const (
	Fajr    = "fajr"
	Dhuhr   = "dhuhr"
	Asr     = "asr"
	Maghrib = "maghrib"
	Isha    = "isha"
)

// PrayerNames lists the five daily prayers in boundary order.
var PrayerNames = []string{Fajr, Dhuhr, Asr, Maghrib, Isha}

// Schedule is one day's canonical prayer table for a zone. Every time field
// is a local-time "HH:MM" string; the five fields must be strictly
// increasing, which Validate enforces before a schedule leaves the fetch
// layer.
type Schedule struct {
	Zone       string `json:"zone"`
	Date       string `json:"date"` // YYYY-MM-DD
	Fajr       string `json:"fajr"`
	Dhuhr      string `json:"dhuhr"`
	Asr        string `json:"asr"`
	Maghrib    string `json:"maghrib"`
	Isha       string `json:"isha"`
	Provenance string `json:"provenance"`
}

// Moment is a single (prayer, time-of-day) pair, the unit the clock layer
// hands back to callers.
type Moment struct {
	Name string `json:"name"`
	Time string `json:"time"` // "HH:MM"
}

// Moments returns the five boundaries in chronological order.
func (s Schedule) Moments() []Moment {
	return []Moment{
		{Name: Fajr, Time: s.Fajr},
		{Name: Dhuhr, Time: s.Dhuhr},
		{Name: Asr, Time: s.Asr},
		{Name: Maghrib, Time: s.Maghrib},
		{Name: Isha, Time: s.Isha},
	}
}

// Validate checks the canonical invariants: all five fields present,
// parseable as "HH:MM", and strictly increasing through the day.
func (s Schedule) Validate() error {
	prev := -1
	for _, m := range s.Moments() {
		if m.Time == "" {
			return fmt.Errorf("missing %s time", m.Name)
		}
		min, err := MinuteOfDay(m.Time)
		if err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		if min <= prev {
			return fmt.Errorf("%s (%s) is not after the previous boundary", m.Name, m.Time)
		}
		prev = min
	}
	return nil
}

// MinuteOfDay parses an "HH:MM" string into minutes since midnight.
func MinuteOfDay(hhmm string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	// some feeds append seconds ("05:45:00"); ignore everything past minutes
	if rest, _, cut := strings.Cut(m, ":"); cut {
		m = rest
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return hour*60 + minute, nil
}
