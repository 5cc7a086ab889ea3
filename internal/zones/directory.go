// Package zones holds the process-wide directory of prayer-time zones,
// loaded once from the zone source and cached for the process lifetime.
package zones

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/imanhub/solat-server/internal/model"
)

// ErrNotFound is returned by Lookup for codes the directory doesn't know.
var ErrNotFound = errors.New("zone not found")

// ErrSourceUnavailable signals that the external zone source could not be
// read and the directory is serving the builtin fallback set.
var ErrSourceUnavailable = errors.New("zone source unavailable")

// Source is the slice of the storage layer the directory needs.
type Source interface {
	ListZones() ([]model.Zone, error)
}

// Directory is a read-through cache over the zone source. Load populates it
// once; Lookup and List serve from memory afterwards.
type Directory struct {
	source Source

	loadMu sync.Mutex // serializes loads from the source

	mu     sync.RWMutex
	byCode map[string]model.Zone
	loaded bool
}

func NewDirectory(source Source) *Directory {
	return &Directory{source: source}
}

// Load populates the directory from the zone source. It is idempotent and
// may be called again to force a refresh. If the source fails, the directory
// falls back to the builtin zone set and returns ErrSourceUnavailable so the
// caller knows it is running degraded; the process stays usable either way.
func (d *Directory) Load() error {
	rows, err := d.source.ListZones()
	if err != nil || len(rows) == 0 {
		if err == nil {
			err = errors.New("zone source returned no rows")
		}
		log.Error().Err(err).Msg("zone load failed, using builtin fallback set")
		d.install(fallbackZones)
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	valid := rows[:0]
	for _, z := range rows {
		if !z.Valid() {
			log.Warn().Str("code", z.Code).Msg("skipping invalid zone row")
			continue
		}
		valid = append(valid, z)
	}
	d.install(valid)
	log.Info().Int("zones", len(valid)).Msg("zone directory loaded")
	return nil
}

// ensureLoaded lazily triggers the first Load. Double-checked behind loadMu
// so concurrent early callers don't each hit the source.
func (d *Directory) ensureLoaded() {
	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if loaded {
		return
	}

	d.loadMu.Lock()
	defer d.loadMu.Unlock()

	d.mu.RLock()
	loaded = d.loaded
	d.mu.RUnlock()
	if !loaded {
		// Load error is absorbed here: the fallback set is installed either way.
		_ = d.Load()
	}
}

func (d *Directory) install(zs []model.Zone) {
	byCode := make(map[string]model.Zone, len(zs))
	for _, z := range zs {
		byCode[z.Code] = z
	}
	d.mu.Lock()
	d.byCode = byCode
	d.loaded = true
	d.mu.Unlock()
}

// Lookup returns the zone for a code, or ErrNotFound.
func (d *Directory) Lookup(code string) (model.Zone, error) {
	d.ensureLoaded()
	d.mu.RLock()
	z, ok := d.byCode[code]
	d.mu.RUnlock()
	if !ok {
		return model.Zone{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return z, nil
}

// List returns a snapshot of every known zone, ordered by code.
func (d *Directory) List() []model.Zone {
	d.ensureLoaded()
	d.mu.RLock()
	out := make([]model.Zone, 0, len(d.byCode))
	for _, z := range d.byCode {
		out = append(out, z)
	}
	d.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
