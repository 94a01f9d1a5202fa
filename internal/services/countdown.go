package services

import (
	"time"

	"launchpage/internal/domain"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// ReleaseDateLayout renders a release instant as e.g. "March 1, 2026 9:00 AM GMT".
const ReleaseDateLayout = "January 2, 2006 3:04 PM MST"

// ComputeTimeRemaining returns the time left from now until target as seen by
// an observer in observerTZ. Both instants are converted to the observer's
// wall clock before differencing. Unknown zones are treated as UTC.
func ComputeTimeRemaining(target time.Time, observerTZ string, now time.Time) domain.TimeRemaining {
	loc := LoadLocationOrUTC(observerTZ)
	diff := civil(target, loc).Sub(civil(now, loc)).Milliseconds()
	if diff <= 0 {
		return domain.TimeRemaining{IsReached: true}
	}
	return domain.TimeRemaining{
		Days:    diff / msPerDay,
		Hours:   diff % msPerDay / msPerHour,
		Minutes: diff % msPerHour / msPerMinute,
		Seconds: diff % msPerMinute / msPerSecond,
	}
}

// FormatAbsoluteDate renders target in observerTZ using ReleaseDateLayout.
func FormatAbsoluteDate(target time.Time, observerTZ string) string {
	return target.In(LoadLocationOrUTC(observerTZ)).Format(ReleaseDateLayout)
}

// LoadLocationOrUTC resolves an IANA zone name, falling back to UTC.
func LoadLocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// civil reinterprets the wall clock of t in loc as a UTC instant.
func civil(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), lt.Minute(), lt.Second(), lt.Nanosecond(), time.UTC)
}

// CountdownService answers countdown queries for one release target.
type CountdownService struct {
	target domain.ReleaseTarget
	now    func() time.Time
}

// NewCountdownService returns a CountdownService for target. A nil clock uses time.Now.
func NewCountdownService(target domain.ReleaseTarget, clock func() time.Time) *CountdownService {
	if clock == nil {
		clock = time.Now
	}
	return &CountdownService{target: target, now: clock}
}

// Target returns the configured release target.
func (s *CountdownService) Target() domain.ReleaseTarget {
	return s.target
}

// ResolveTimezone returns tz when it names a known zone, otherwise the release timezone.
func (s *CountdownService) ResolveTimezone(tz string) string {
	if tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	return s.target.Timezone
}

// Remaining returns the time left for an observer in tz.
func (s *CountdownService) Remaining(tz string) domain.TimeRemaining {
	return ComputeTimeRemaining(s.target.Instant, tz, s.now())
}

// FormattedRelease returns the release instant rendered in tz.
func (s *CountdownService) FormattedRelease(tz string) string {
	return FormatAbsoluteDate(s.target.Instant, tz)
}

// Snapshot bundles Remaining and FormattedRelease for the zone resolved from tz.
func (s *CountdownService) Snapshot(tz string) domain.CountdownSnapshot {
	zone := s.ResolveTimezone(tz)
	return domain.CountdownSnapshot{
		TimeRemaining: s.Remaining(zone),
		ReleaseDate:   s.FormattedRelease(zone),
		Timezone:      zone,
	}
}
