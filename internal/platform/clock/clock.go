package clock

import "time"

// Clock abstracts time so the lookahead window stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time; order dates are calendar days in the
// user's own timezone.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
