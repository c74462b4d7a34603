package theme

import (
	"slices"
	"strings"
)

// Gradient is an ordered list of color tokens from top to bottom.
type Gradient []string

// Classes renders the gradient as utility classes: "from-a [via-b] to-c".
func (g Gradient) Classes() string {
	switch len(g) {
	case 0:
		return ""
	case 1:
		return "from-" + g[0] + " to-" + g[0]
	}

	parts := make([]string, 0, len(g))
	parts = append(parts, "from-"+g[0])
	for _, token := range g[1 : len(g)-1] {
		parts = append(parts, "via-"+token)
	}
	parts = append(parts, "to-"+g[len(g)-1])
	return strings.Join(parts, " ")
}

// Theme is the pair of gradients used to paint the sky and the ground.
type Theme struct {
	Sky    Gradient `json:"sky"`
	Ground Gradient `json:"ground"`
}

func (t Theme) clone() Theme {
	return Theme{Sky: slices.Clone(t.Sky), Ground: slices.Clone(t.Ground)}
}

// Equal reports whether both gradients match token for token.
func (t Theme) Equal(other Theme) bool {
	return slices.Equal(t.Sky, other.Sky) && slices.Equal(t.Ground, other.Ground)
}

// Band splits a day period into early, middle and late thirds of progress.
type Band int

const (
	Early Band = iota
	Middle
	Late
)

// Bands lists every band in order.
var Bands = []Band{Early, Middle, Late}

// BandFor returns Early below 0.3, Middle below 0.7 and Late otherwise.
func BandFor(progress float64) Band {
	switch {
	case progress < 0.3:
		return Early
	case progress < 0.7:
		return Middle
	default:
		return Late
	}
}

type baseKey struct {
	period DayPeriod
	band   Band
}

// DefaultTheme is used before any weather has been resolved.
var DefaultTheme = Theme{
	Sky:    Gradient{"blue-400", "blue-500"},
	Ground: Gradient{"green-600", "green-700"},
}

var nightTheme = Theme{
	Sky:    Gradient{"indigo-950", "black"},
	Ground: Gradient{"green-950", "black"},
}

// basePalettes is the time-of-day palette. Night has a single palette and is
// looked up separately.
var basePalettes = map[baseKey]Theme{
	{Dawn, Early}: {
		Sky:    Gradient{"indigo-900", "purple-800", "orange-900"},
		Ground: Gradient{"green-900", "green-800"},
	},
	{Dawn, Middle}: {
		Sky:    Gradient{"orange-400", "pink-400", "blue-500"},
		Ground: Gradient{"green-800", "green-700"},
	},
	{Dawn, Late}: {
		Sky:    Gradient{"orange-300", "sky-300", "blue-400"},
		Ground: Gradient{"green-700", "green-600"},
	},
	{Day, Early}: {
		Sky:    Gradient{"sky-300", "blue-400"},
		Ground: Gradient{"green-600", "green-700"},
	},
	{Day, Middle}: {
		Sky:    Gradient{"sky-400", "blue-500"},
		Ground: Gradient{"green-600", "green-700"},
	},
	{Day, Late}: {
		Sky:    Gradient{"sky-400", "blue-400", "blue-600"},
		Ground: Gradient{"green-600", "green-700"},
	},
	{Dusk, Early}: {
		Sky:    Gradient{"orange-400", "amber-400", "blue-600"},
		Ground: Gradient{"green-700", "green-800"},
	},
	{Dusk, Middle}: {
		Sky:    Gradient{"orange-500", "purple-500", "indigo-800"},
		Ground: Gradient{"green-800", "green-900"},
	},
	{Dusk, Late}: {
		Sky:    Gradient{"purple-900", "indigo-900", "black"},
		Ground: Gradient{"green-900", "black"},
	},
}

// BaseTheme returns the time-of-day palette for a period and progress.
func BaseTheme(period DayPeriod, progress float64) Theme {
	if period == Night {
		return nightTheme.clone()
	}
	if palette, ok := basePalettes[baseKey{period: period, band: BandFor(progress)}]; ok {
		return palette.clone()
	}
	return DefaultTheme.clone()
}

// override replaces the base palette. A nil Ground keeps the base ground.
type override struct {
	Sky    Gradient
	Ground Gradient
}

func sameForAllPeriods(o override) map[DayPeriod]override {
	return map[DayPeriod]override{Night: o, Dawn: o, Day: o, Dusk: o}
}

func byLight(night, twilight, day override) map[DayPeriod]override {
	return map[DayPeriod]override{Night: night, Dawn: twilight, Dusk: twilight, Day: day}
}

// conditionOverrides is keyed by condition then period. Conditions missing
// here (clear, partly cloudy, unknown) keep the base palette.
var conditionOverrides = map[Condition]map[DayPeriod]override{
	Thunderstorm: sameForAllPeriods(override{
		Sky:    Gradient{"gray-800", "gray-900"},
		Ground: Gradient{"green-900", "black"},
	}),
	Rain: byLight(
		override{Sky: Gradient{"slate-900", "black"}, Ground: Gradient{"green-900", "black"}},
		override{Sky: Gradient{"slate-600", "slate-700", "slate-800"}, Ground: Gradient{"green-800", "green-900"}},
		override{Sky: Gradient{"slate-600", "slate-700"}, Ground: Gradient{"green-800", "green-900"}},
	),
	Snow: byLight(
		override{Sky: Gradient{"blue-950", "slate-900"}, Ground: Gradient{"blue-100", "slate-200"}},
		override{Sky: Gradient{"blue-200", "purple-200", "blue-300"}, Ground: Gradient{"white", "blue-100"}},
		override{Sky: Gradient{"blue-100", "blue-200"}, Ground: Gradient{"white", "blue-50"}},
	),
	Fog: byLight(
		override{Sky: Gradient{"gray-800", "gray-950"}, Ground: Gradient{"gray-700", "gray-900"}},
		override{Sky: Gradient{"gray-400", "gray-500", "gray-600"}, Ground: Gradient{"gray-500", "gray-700"}},
		override{Sky: Gradient{"gray-300", "gray-400"}, Ground: Gradient{"gray-500", "gray-600"}},
	),
	Cloudy: {
		Night: {Sky: Gradient{"slate-900", "black"}, Ground: Gradient{"green-900", "black"}},
		Dawn:  {Sky: Gradient{"gray-500", "purple-400", "slate-600"}},
		Dusk:  {Sky: Gradient{"orange-600", "purple-500", "slate-700"}},
		Day:   {Sky: Gradient{"gray-400", "gray-500"}, Ground: Gradient{"green-700", "green-800"}},
	},
}

// ResolveTheme computes the base palette from period and progress and then
// applies the condition override, which always wins when one exists.
func ResolveTheme(condition Condition, period DayPeriod, progress float64) Theme {
	result := BaseTheme(period, progress)

	byPeriod, ok := conditionOverrides[condition]
	if !ok {
		return result
	}
	o, ok := byPeriod[period]
	if !ok {
		return result
	}

	result.Sky = slices.Clone(o.Sky)
	if o.Ground != nil {
		result.Ground = slices.Clone(o.Ground)
	}
	return result
}
