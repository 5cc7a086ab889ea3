package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imanhub/solat-server/internal/clock"
	"github.com/imanhub/solat-server/internal/fetch"
	"github.com/imanhub/solat-server/internal/model"
)

// SolatModule serves today's schedule and the live current/next state.
// now is injectable for tests; production passes time.Now.
func SolatModule(fetcher fetch.Interface, loc *time.Location, now func() time.Time) Module {
	if now == nil {
		now = time.Now
	}
	return ModuleFunc(func(c *Controller) {
		c.Group.GET("/solat/:code", todaySchedule(fetcher, loc, now))
		c.Group.GET("/solat/:code/now", currentState(fetcher, loc, now))
	})
}

func fetchToday(ctx *gin.Context, fetcher fetch.Interface, loc *time.Location, now func() time.Time) (model.Schedule, time.Time, bool) {
	today := now().In(loc)
	s, err := fetcher.Fetch(ctx.Request.Context(), ctx.Param("code"), today)
	switch {
	case err == nil:
		return s, today, true
	case errors.Is(err, fetch.ErrInvalidZone):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown zone code"})
	case errors.Is(err, fetch.ErrUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "unable to fetch prayer times, please retry",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return model.Schedule{}, today, false
}

func todaySchedule(fetcher fetch.Interface, loc *time.Location, now func() time.Time) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, _, ok := fetchToday(ctx, fetcher, loc, now)
		if !ok {
			return
		}
		ctx.JSON(http.StatusOK, s)
	}
}

func currentState(fetcher fetch.Interface, loc *time.Location, now func() time.Time) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, today, ok := fetchToday(ctx, fetcher, loc, now)
		if !ok {
			return
		}
		current, next := clock.CurrentAndNext(s, today)
		ctx.JSON(http.StatusOK, gin.H{
			"zone":              s.Zone,
			"date":              s.Date,
			"current":           current,
			"next":              next,
			"remaining_minutes": int(clock.Remaining(next, today).Minutes()),
			"provenance":        s.Provenance,
		})
	}
}
