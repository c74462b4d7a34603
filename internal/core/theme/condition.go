package theme

import (
	"fmt"
	"strings"
)

// Condition is the canonical weather category derived from a provider's
// free-text description.
type Condition int

const (
	Unknown Condition = iota
	Clear
	Thunderstorm
	Rain
	Snow
	Fog
	PartlyCloudy
	Cloudy
)

var conditionNames = map[Condition]string{
	Unknown:      "unknown",
	Clear:        "clear",
	Thunderstorm: "thunderstorm",
	Rain:         "rain",
	Snow:         "snow",
	Fog:          "fog",
	PartlyCloudy: "partly_cloudy",
	Cloudy:       "cloudy",
}

func (c Condition) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Condition) UnmarshalText(text []byte) error {
	for condition, name := range conditionNames {
		if name == string(text) {
			*c = condition
			return nil
		}
	}
	return fmt.Errorf("unknown condition %q", string(text))
}

// ConditionRule maps any of its keywords to a condition.
type ConditionRule struct {
	Condition Condition
	Keywords  []string
}

// ConditionRules is evaluated top to bottom and the first matching rule wins.
// Order matters: providers combine terms ("light rain and clouds"), so
// precipitation and fog are checked before generic cloud cover, and
// "few clouds" before "cloud".
var ConditionRules = []ConditionRule{
	{Condition: Clear, Keywords: []string{"clear"}},
	{Condition: Thunderstorm, Keywords: []string{"thunder", "storm"}},
	{Condition: Rain, Keywords: []string{"rain", "drizzle"}},
	{Condition: Snow, Keywords: []string{"snow", "sleet"}},
	{Condition: Fog, Keywords: []string{"fog", "mist", "haze"}},
	{Condition: PartlyCloudy, Keywords: []string{"few clouds", "scattered"}},
	{Condition: Cloudy, Keywords: []string{"cloud", "overcast"}},
}

// ClassifyCondition matches description case-insensitively against
// ConditionRules and returns Unknown when nothing matches.
func ClassifyCondition(description string) Condition {
	return classifyWith(ConditionRules, description)
}

func classifyWith(rules []ConditionRule, description string) Condition {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, keyword) {
				return rule.Condition
			}
		}
	}
	return Unknown
}
