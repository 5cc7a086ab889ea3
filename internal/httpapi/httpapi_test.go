package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imanhub/solat-server/internal/fetch"
	"github.com/imanhub/solat-server/internal/model"
	"github.com/imanhub/solat-server/internal/zones"
)

type fakeZoneSource struct{ zones []model.Zone }

func (f *fakeZoneSource) ListZones() ([]model.Zone, error) { return f.zones, nil }

type fakeFetcher struct {
	s   model.Schedule
	err error
}

func (f *fakeFetcher) Fetch(context.Context, string, time.Time) (model.Schedule, error) {
	return f.s, f.err
}

func apiSchedule() model.Schedule {
	return model.Schedule{
		Zone: "SGR01", Date: "2026-08-29",
		Fajr: "05:45", Dhuhr: "13:10", Asr: "16:35", Maghrib: "19:20", Isha: "20:35",
		Provenance: "waktusolat/v2",
	}
}

func setupRouter(t *testing.T, fetcher fetch.Interface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := zones.NewDirectory(&fakeZoneSource{zones: []model.Zone{
		{Code: "SGR01", Region: "Selangor", District: "Gombak, Petaling"},
		{Code: "WLY01", Region: "Wilayah Persekutuan", District: "Kuala Lumpur"},
	}})
	require.NoError(t, dir.Load())

	now := func() time.Time {
		return time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	}

	r := gin.New()
	MountGroup(r, GroupConfig{Prefix: "/api"},
		ZonesModule(dir),
		SolatModule(fetcher, time.UTC, now),
	)
	return r
}

func do(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListZones(t *testing.T) {
	r := setupRouter(t, &fakeFetcher{s: apiSchedule()})

	w := do(r, "/api/zones")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Zones []model.Zone `json:"zones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Zones, 2)
	assert.Equal(t, "SGR01", resp.Zones[0].Code)
}

func TestGetZone(t *testing.T) {
	r := setupRouter(t, &fakeFetcher{s: apiSchedule()})

	w := do(r, "/api/zones/SGR01")
	require.Equal(t, http.StatusOK, w.Code)
	var z model.Zone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &z))
	assert.Equal(t, "Selangor", z.Region)

	assert.Equal(t, http.StatusNotFound, do(r, "/api/zones/XXX99").Code)
}

func TestReloadZones(t *testing.T) {
	r := setupRouter(t, &fakeFetcher{s: apiSchedule()})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/zones/reload", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reloaded":true`)
}

func TestNearestZone(t *testing.T) {
	r := setupRouter(t, &fakeFetcher{s: apiSchedule()})

	t.Run("resolves coordinates", func(t *testing.T) {
		w := do(r, "/api/zones/nearest?lat=3.1578&lng=101.7123")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "WLY01", resp.Code)
	})

	t.Run("rejects malformed coordinates", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(r, "/api/zones/nearest?lat=abc&lng=101").Code)
		assert.Equal(t, http.StatusBadRequest, do(r, "/api/zones/nearest?lat=3.1").Code)
		assert.Equal(t, http.StatusBadRequest, do(r, "/api/zones/nearest?lat=95&lng=101").Code)
	})
}

func TestTodaySchedule(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := setupRouter(t, &fakeFetcher{s: apiSchedule()})
		w := do(r, "/api/solat/SGR01")
		require.Equal(t, http.StatusOK, w.Code)

		var s model.Schedule
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
		assert.Equal(t, "05:45", s.Fajr)
		assert.Equal(t, "waktusolat/v2", s.Provenance)
	})

	t.Run("unknown zone maps to 404", func(t *testing.T) {
		r := setupRouter(t, &fakeFetcher{err: fetch.ErrInvalidZone})
		assert.Equal(t, http.StatusNotFound, do(r, "/api/solat/XXX99").Code)
	})

	t.Run("exhausted sources map to 503", func(t *testing.T) {
		r := setupRouter(t, &fakeFetcher{err: fetch.ErrUnavailable})
		w := do(r, "/api/solat/SGR01")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "retry")
	})
}

func TestCurrentState(t *testing.T) {
	r := setupRouter(t, &fakeFetcher{s: apiSchedule()})

	// router clock is pinned to 15:00
	w := do(r, "/api/solat/SGR01/now")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Current          model.Moment `json:"current"`
		Next             model.Moment `json:"next"`
		RemainingMinutes int          `json:"remaining_minutes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.Dhuhr, resp.Current.Name)
	assert.Equal(t, model.Asr, resp.Next.Name)
	assert.Equal(t, 95, resp.RemainingMinutes)
}
