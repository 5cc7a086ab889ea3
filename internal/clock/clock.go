// Package clock turns a day's schedule plus wall-clock time into the
// current/next prayer state. Pure functions, safe for any number of
// concurrent callers.
package clock

import (
	"time"

	"github.com/imanhub/solat-server/internal/model"
)

// CurrentAndNext walks the five boundaries as a cyclic sequence and returns
// the prayer window containing now plus the one after it. Before the first
// boundary of the day the current window is still isha, carried over from
// the previous night; after isha the next wraps back to fajr.
func CurrentAndNext(s model.Schedule, now time.Time) (current, next model.Moment) {
	moments := s.Moments()
	nowMin := now.Hour()*60 + now.Minute()

	cur := -1
	for i, m := range moments {
		min, err := model.MinuteOfDay(m.Time)
		if err != nil {
			continue
		}
		if min <= nowMin {
			cur = i
		}
	}
	if cur == -1 {
		// still inside last night's isha window
		cur = len(moments) - 1
	}
	return moments[cur], moments[(cur+1)%len(moments)]
}

// Remaining returns the duration from now until the next boundary. A next
// time-of-day numerically behind now means it falls on the following
// calendar day, so it wraps forward.
func Remaining(next model.Moment, now time.Time) time.Duration {
	nextMin, err := model.MinuteOfDay(next.Time)
	if err != nil {
		return 0
	}
	nowMin := now.Hour()*60 + now.Minute()

	diff := nextMin - nowMin
	if diff < 0 {
		diff += 24 * 60
	}
	return time.Duration(diff) * time.Minute
}
