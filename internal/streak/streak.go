// Package streak implements the consecutive-login-day counter. The state is the
// (Current, Longest, LastLogin) triple stored on the user row; Advance applies the
// per-login transition and StaleCutoff supports the daily reset sweep.
package streak

import "time"

// State is a user's streak triple. LastLogin is nil for users who have never logged in.
type State struct {
	Current   int
	Longest   int
	LastLogin *time.Time
}

// sweepGraceDays is how many days a user may stay away before the sweep zeroes their
// streak: a last login older than this many days is considered abandoned.
const sweepGraceDays = 2

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Advance applies one login event at time now and returns the new state. Re-login on
// the same calendar day leaves the counters untouched but still refreshes LastLogin.
// Negative stored counters are clamped to 0 before the transition.
func Advance(s State, now time.Time) State {
	if s.Current < 0 {
		s.Current = 0
	}
	if s.Longest < 0 {
		s.Longest = 0
	}

	today := dateOf(now)

	switch {
	case s.LastLogin == nil:
		s.Current = 1
		if s.Longest < 1 {
			s.Longest = 1
		}
	default:
		last := dateOf(*s.LastLogin)
		switch {
		case last.Equal(today):
			// Same-day re-login, idempotent.
		case last.Equal(today.AddDate(0, 0, -1)):
			s.Current++
			if s.Current > s.Longest {
				s.Longest = s.Current
			}
		default:
			// Gap of two or more days resets the run; the record stands untouched.
			s.Current = 1
		}
	}

	t := now
	s.LastLogin = &t
	return s
}

// StaleCutoff returns the instant before which a last login makes a streak stale. The
// daily sweep resets Current to 0 for every user whose LastLogin is before this cutoff.
func StaleCutoff(now time.Time) time.Time {
	return dateOf(now).AddDate(0, 0, -sweepGraceDays)
}

// IsStale reports whether a streak should be zeroed by the sweep.
func IsStale(s State, now time.Time) bool {
	if s.LastLogin == nil {
		return false
	}
	return s.LastLogin.Before(StaleCutoff(now))
}
