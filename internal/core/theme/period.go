// Package theme maps a weather description, the sun's timings and the current
// moment onto the visual theme shown by the client: day period, icon and the
// sky/ground gradients. Every function here is pure.
package theme

import (
	"fmt"
	"time"
)

const (
	// TwilightBuffer is the length of the dawn window before sunrise and the
	// dusk window after sunset.
	TwilightBuffer = 90 * time.Minute

	solarDay = 24 * time.Hour
)

// DayPeriod is one of the four phases of the solar day.
type DayPeriod int

const (
	Night DayPeriod = iota
	Dawn
	Day
	Dusk
)

var periodNames = map[DayPeriod]string{
	Night: "night",
	Dawn:  "dawn",
	Day:   "day",
	Dusk:  "dusk",
}

// Periods lists every day period in chronological order starting at dawn.
var Periods = []DayPeriod{Dawn, Day, Dusk, Night}

func (p DayPeriod) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (p DayPeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *DayPeriod) UnmarshalText(text []byte) error {
	for period, name := range periodNames {
		if name == string(text) {
			*p = period
			return nil
		}
	}
	return fmt.Errorf("unknown day period %q", string(text))
}

// IsTwilight reports whether the period is dawn or dusk.
func (p DayPeriod) IsTwilight() bool {
	return p == Dawn || p == Dusk
}

// window is a half-open time range [start, end) in fractional epoch seconds.
type window struct {
	start, end float64
}

func (w window) contains(t float64) bool {
	return t >= w.start && t < w.end
}

// progress is the linear position of t inside w clamped to [0,1]. Zero-length
// and inverted windows report 0.
func (w window) progress(t float64) float64 {
	length := w.end - w.start
	if length <= 0 {
		return 0
	}
	return clamp01((t - w.start) / length)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func epochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

// Classify returns the day period now falls in together with the progress
// through that period.
//
// Windows are half-open, so sunrise itself is day with progress 0 and sunset
// itself is dusk with progress 0. Night progress is measured either from the
// previous day's dusk end up to dawn, or from dusk end up to the next day's
// dawn, assuming sunrise and sunset move less than TwilightBuffer per day.
func Classify(now, sunrise, sunset time.Time) (DayPeriod, float64) {
	t := epochSeconds(now)
	rise := epochSeconds(sunrise)
	set := epochSeconds(sunset)
	buffer := TwilightBuffer.Seconds()
	day := solarDay.Seconds()

	dawn := window{start: rise - buffer, end: rise}
	daylight := window{start: rise, end: set}
	dusk := window{start: set, end: set + buffer}

	switch {
	case dawn.contains(t):
		return Dawn, dawn.progress(t)
	case daylight.contains(t):
		return Day, daylight.progress(t)
	case dusk.contains(t):
		return Dusk, dusk.progress(t)
	}

	if t < dawn.start {
		beforeDawn := window{start: set - day + buffer, end: dawn.start}
		return Night, beforeDawn.progress(t)
	}

	afterDusk := window{start: dusk.end, end: rise + day - buffer}
	return Night, afterDusk.progress(t)
}

// IsNight reports whether the sun is down, comparing against the raw sunrise
// and sunset instants rather than the buffered twilight windows.
func IsNight(now, sunrise, sunset time.Time) bool {
	return now.Before(sunrise) || now.After(sunset)
}
