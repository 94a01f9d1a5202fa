package domain

import (
	"fmt"
	"strings"
	"time"
)

// Release date layouts accepted when RELEASE_DATE carries no offset.
// Such values are read as wall-clock time in the release timezone.
var zonelessReleaseLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReleaseTarget is the instant the countdown runs to, plus the timezone it
// was authored in. Timezone is only used for display.
type ReleaseTarget struct {
	Instant  time.Time
	Timezone string
}

// NewReleaseTarget parses raw as RFC 3339 or, failing that, as a zone-less
// timestamp in tz. tz must be a valid IANA name.
func NewReleaseTarget(raw, tz string) (ReleaseTarget, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ReleaseTarget{}, fmt.Errorf("release date is required")
	}
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return ReleaseTarget{}, fmt.Errorf("invalid release timezone %q: %w", tz, err)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return ReleaseTarget{Instant: t, Timezone: tz}, nil
	}
	for _, layout := range zonelessReleaseLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ReleaseTarget{Instant: t, Timezone: tz}, nil
		}
	}
	return ReleaseTarget{}, fmt.Errorf("invalid release date %q", raw)
}

// TimeRemaining is the decomposed duration left until a release target.
// When IsReached is true every numeric field is zero.
type TimeRemaining struct {
	Days      int64 `json:"days"`
	Hours     int64 `json:"hours"`
	Minutes   int64 `json:"minutes"`
	Seconds   int64 `json:"seconds"`
	IsReached bool  `json:"is_reached"`
}

// CountdownSnapshot is what the display layer needs for one render.
// swagger:model CountdownSnapshot
type CountdownSnapshot struct {
	TimeRemaining
	ReleaseDate string `json:"release_date"`
	Timezone    string `json:"timezone"`
}

// CountdownService answers countdown queries for the configured release.
type CountdownService interface {
	Snapshot(tz string) CountdownSnapshot
}
