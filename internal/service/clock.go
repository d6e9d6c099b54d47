package service

import "time"

// utcNow is the default clock of every service. Timestamps are truncated to
// microseconds so they survive a round trip through timestamptz unchanged.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
