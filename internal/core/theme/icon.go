package theme

import (
	"fmt"
	"strings"
)

// Icon is the weather glyph displayed next to the temperature.
type Icon int

const (
	IconPartlyCloudy Icon = iota
	IconSun
	IconMoon
	IconCloud
	IconRain
	IconThunderstorm
	IconSnow
	IconFog
)

var iconNames = map[Icon]string{
	IconPartlyCloudy: "cloud-sun",
	IconSun:          "sun",
	IconMoon:         "moon",
	IconCloud:        "cloud",
	IconRain:         "rain",
	IconThunderstorm: "thunderstorm",
	IconSnow:         "snow",
	IconFog:          "fog",
}

func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return "cloud-sun"
}

// MarshalText implements encoding.TextMarshaler
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Icon) UnmarshalText(text []byte) error {
	for icon, name := range iconNames {
		if name == string(text) {
			*i = icon
			return nil
		}
	}
	return fmt.Errorf("unknown icon %q", string(text))
}

// iconVariant holds the icon for day and night; most conditions use the same
// glyph for both.
type iconVariant struct {
	day, night Icon
}

var conditionIcons = map[Condition]iconVariant{
	Clear:        {day: IconSun, night: IconMoon},
	Thunderstorm: {day: IconThunderstorm, night: IconThunderstorm},
	Rain:         {day: IconRain, night: IconRain},
	Snow:         {day: IconSnow, night: IconSnow},
	Fog:          {day: IconFog, night: IconFog},
	PartlyCloudy: {day: IconPartlyCloudy, night: IconPartlyCloudy},
	Cloudy:       {day: IconCloud, night: IconCloud},
	Unknown:      {day: IconPartlyCloudy, night: IconMoon},
}

// SelectIcon picks the icon for a condition. Use IsNight to compute isNight.
func SelectIcon(condition Condition, isNight bool) Icon {
	variant, ok := conditionIcons[condition]
	if !ok {
		variant = conditionIcons[Unknown]
	}
	if isNight {
		return variant.night
	}
	return variant.day
}

// ProviderNightCode reports whether a provider icon code ("01n", "10d") marks
// night. The second result is false when the code carries no day/night suffix.
func ProviderNightCode(code string) (night bool, ok bool) {
	code = strings.TrimSpace(code)
	switch {
	case strings.HasSuffix(code, "n"):
		return true, true
	case strings.HasSuffix(code, "d"):
		return false, true
	default:
		return false, false
	}
}
