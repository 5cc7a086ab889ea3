package clock

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imanhub/solat-server/internal/model"
)

func testSchedule() model.Schedule {
	return model.Schedule{
		Zone:    "SGR01",
		Date:    "2026-08-29",
		Fajr:    "05:45",
		Dhuhr:   "13:10",
		Asr:     "16:35",
		Maghrib: "19:20",
		Isha:    "20:35",
	}
}

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 8, 29, hour, min, 0, 0, time.UTC)
}

func TestCurrentAndNext(t *testing.T) {
	tests := []struct {
		name        string
		hour, min   int
		wantCurrent string
		wantNext    string
	}{
		{"before fajr is still isha", 4, 0, model.Isha, model.Fajr},
		{"midnight", 0, 0, model.Isha, model.Fajr},
		{"exactly at fajr", 5, 45, model.Fajr, model.Dhuhr},
		{"mid morning", 9, 30, model.Fajr, model.Dhuhr},
		{"just before dhuhr", 13, 9, model.Fajr, model.Dhuhr},
		{"afternoon", 15, 0, model.Dhuhr, model.Asr},
		{"late afternoon", 17, 0, model.Asr, model.Maghrib},
		{"evening", 19, 45, model.Maghrib, model.Isha},
		{"exactly at isha", 20, 35, model.Isha, model.Fajr},
		{"night wraps to fajr", 23, 0, model.Isha, model.Fajr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, next := CurrentAndNext(testSchedule(), at(t, tt.hour, tt.min))
			assert.Equal(t, tt.wantCurrent, current.Name)
			assert.Equal(t, tt.wantNext, next.Name)
		})
	}
}

// Every minute of the day must resolve to exactly one current/next pair,
// with next always the cyclic successor of current.
func TestCurrentAndNextTotal(t *testing.T) {
	successor := map[string]string{
		model.Fajr:    model.Dhuhr,
		model.Dhuhr:   model.Asr,
		model.Asr:     model.Maghrib,
		model.Maghrib: model.Isha,
		model.Isha:    model.Fajr,
	}

	s := testSchedule()
	for min := 0; min < 24*60; min++ {
		now := at(t, min/60, min%60)
		current, next := CurrentAndNext(s, now)
		require.NotEmpty(t, current.Name, "minute %d", min)
		require.Equal(t, successor[current.Name], next.Name,
			"minute %d: next %s does not follow current %s", min, next.Name, current.Name)
	}
}

func TestRemaining(t *testing.T) {
	s := testSchedule()

	t.Run("same day", func(t *testing.T) {
		_, next := CurrentAndNext(s, at(t, 15, 0))
		require.Equal(t, model.Asr, next.Name)
		assert.Equal(t, 95*time.Minute, Remaining(next, at(t, 15, 0)))
	})

	t.Run("next day wrap before fajr", func(t *testing.T) {
		now := at(t, 4, 0)
		current, next := CurrentAndNext(s, now)
		require.Equal(t, model.Isha, current.Name)
		require.Equal(t, model.Fajr, next.Name)
		assert.Equal(t, 105*time.Minute, Remaining(next, now))
	})

	t.Run("next day wrap after isha", func(t *testing.T) {
		now := at(t, 22, 0)
		_, next := CurrentAndNext(s, now)
		require.Equal(t, model.Fajr, next.Name)
		// 2h to midnight plus 5h45 to fajr
		assert.Equal(t, 7*time.Hour+45*time.Minute, Remaining(next, now))
	})

	t.Run("unparseable moment yields zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), Remaining(model.Moment{Name: model.Fajr, Time: "bad"}, at(t, 10, 0)))
	})
}

// Sanity-check the example from the schedule fixture used across packages.
func ExampleCurrentAndNext() {
	s := model.Schedule{
		Fajr: "05:45", Dhuhr: "13:10", Asr: "16:35", Maghrib: "19:20", Isha: "20:35",
	}
	now := time.Date(2026, 8, 29, 4, 0, 0, 0, time.UTC)
	current, next := CurrentAndNext(s, now)
	fmt.Println(current.Name, next.Name)
	// Output: isha fajr
}
