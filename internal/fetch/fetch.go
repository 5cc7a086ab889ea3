// Package fetch resolves one day's prayer schedule for a zone by walking an
// ordered chain of external time-table sources. Each source gets its own
// time budget; a source that times out or answers with an unrecognized shape
// is skipped and the next one is tried. Only exhaustion of the whole chain
// surfaces to the caller.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/imanhub/solat-server/internal/model"
)

var (
	// ErrInvalidZone means the requested code is not in the zone directory.
	ErrInvalidZone = errors.New("unknown zone code")
	// ErrTimeout marks a single source exceeding its time budget. It is
	// absorbed by the chain and only visible in logs.
	ErrTimeout = errors.New("prayer source timed out")
	// ErrMalformedResponse marks an HTTP response that parsed as JSON but
	// matched none of the known shapes. Absorbed like a source failure.
	ErrMalformedResponse = errors.New("no known response shape matched")
	// ErrUnavailable is the terminal failure after every source failed.
	ErrUnavailable = errors.New("all prayer sources failed")
)

// Source is a single external time-table provider. Implementations return a
// schedule with Provenance set but are not required to validate it; the
// chain validates before anything reaches a caller.
type Source interface {
	Name() string
	Fetch(ctx context.Context, zone string, day time.Time) (model.Schedule, error)
}

// ZoneChecker is the slice of the zone directory the fetcher needs to reject
// unknown codes before spending network calls on them.
type ZoneChecker interface {
	Lookup(code string) (model.Zone, error)
}

// Fetcher tries its sources in order and returns the first valid schedule.
type Fetcher struct {
	zones   ZoneChecker
	timeout time.Duration
	sources []Source
}

// Interface is the fetching contract shared by Fetcher and anything stacked
// on top of it (the cache layer, fakes in tests).
type Interface interface {
	Fetch(ctx context.Context, zone string, day time.Time) (model.Schedule, error)
}

func New(zones ZoneChecker, timeout time.Duration, sources ...Source) *Fetcher {
	return &Fetcher{zones: zones, timeout: timeout, sources: sources}
}

// Fetch resolves the canonical schedule for a zone and day. Failures of
// individual sources (network, timeout, shape mismatch, invariant violation)
// are logged and absorbed; the error returned is ErrInvalidZone for codes
// the directory doesn't know, or ErrUnavailable once every source failed.
func (f *Fetcher) Fetch(ctx context.Context, zone string, day time.Time) (model.Schedule, error) {
	if _, err := f.zones.Lookup(zone); err != nil {
		return model.Schedule{}, fmt.Errorf("%w: %s", ErrInvalidZone, zone)
	}

	for _, src := range f.sources {
		s, err := f.fetchOne(ctx, src, zone, day)
		if err != nil {
			log.Warn().Err(err).
				Str("source", src.Name()).
				Str("zone", zone).
				Msg("prayer source failed, trying next")
			continue
		}
		if err := s.Validate(); err != nil {
			log.Warn().Err(err).
				Str("source", src.Name()).
				Str("zone", zone).
				Msg("prayer source returned non-canonical schedule, trying next")
			continue
		}
		log.Info().
			Str("zone", zone).
			Str("provenance", s.Provenance).
			Msg("prayer schedule resolved")
		return s, nil
	}
	return model.Schedule{}, ErrUnavailable
}

// fetchOne runs a single source under its own deadline. The HTTP request
// races the deadline; whichever finishes first wins and the loser is
// cancelled through the context.
func (f *Fetcher) fetchOne(ctx context.Context, src Source, zone string, day time.Time) (model.Schedule, error) {
	sctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	s, err := src.Fetch(sctx, zone, day)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(sctx.Err(), context.DeadlineExceeded) {
			return model.Schedule{}, fmt.Errorf("%w after %s", ErrTimeout, f.timeout)
		}
		return model.Schedule{}, err
	}
	return s, nil
}
