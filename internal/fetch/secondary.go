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

// SecondarySource queries the mpt-style daily API, which answers with a
// status field and a single day's boundaries as "HH:MM" strings. It only
// gets asked when the primary failed, so it keeps the same defensive
// variant-walking as the primary even though its shape has drifted less.
type SecondarySource struct {
	base   string
	client *http.Client
}

func NewSecondary(base string) *SecondarySource {
	return &SecondarySource{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{},
	}
}

func (s *SecondarySource) Name() string { return "mpt" }

// secondaryTimes is one day's boundaries as wall-clock strings.
type secondaryTimes struct {
	Fajr    string `json:"fajr"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

func (t secondaryTimes) complete() bool {
	return t.Fajr != "" && t.Dhuhr != "" && t.Asr != "" && t.Maghrib != "" && t.Isha != ""
}

var secondaryVariants = []struct {
	name   string
	decode func([]byte) (secondaryTimes, bool)
}{
	{"data", decodeSecondaryData},
	{"times", decodeSecondaryTimes},
}

func (s *SecondarySource) Fetch(ctx context.Context, zone string, day time.Time) (model.Schedule, error) {
	url := fmt.Sprintf("%s/solat/%s", s.base, strings.ToLower(zone))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Schedule{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("secondary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Schedule{}, fmt.Errorf("secondary returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("reading secondary response: %w", err)
	}

	for _, v := range secondaryVariants {
		times, ok := v.decode(body)
		if !ok {
			continue
		}
		return model.Schedule{
			Zone:       strings.ToUpper(zone),
			Date:       day.Format("2006-01-02"),
			Fajr:       times.Fajr,
			Dhuhr:      times.Dhuhr,
			Asr:        times.Asr,
			Maghrib:    times.Maghrib,
			Isha:       times.Isha,
			Provenance: s.Name() + "/" + v.name,
		}, nil
	}
	return model.Schedule{}, fmt.Errorf("%w (secondary)", ErrMalformedResponse)
}

// statusOK accepts the status spellings the API has used over time
// ("ok", "OK!", "SUCCESS").
func statusOK(status string) bool {
	st := strings.ToLower(strings.TrimSpace(status))
	return strings.HasPrefix(st, "ok") || st == "success"
}

func decodeSecondaryData(body []byte) (secondaryTimes, bool) {
	var doc struct {
		Status string         `json:"status"`
		Data   secondaryTimes `json:"data"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return secondaryTimes{}, false
	}
	if !statusOK(doc.Status) || !doc.Data.complete() {
		return secondaryTimes{}, false
	}
	return doc.Data, true
}

func decodeSecondaryTimes(body []byte) (secondaryTimes, bool) {
	var doc struct {
		Status string         `json:"status"`
		Times  secondaryTimes `json:"times"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return secondaryTimes{}, false
	}
	if !statusOK(doc.Status) || !doc.Times.complete() {
		return secondaryTimes{}, false
	}
	return doc.Times, true
}
