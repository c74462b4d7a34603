package theme

import "time"

// Input is everything the resolver needs: the moment to render and the
// weather snapshot fields that influence the theme.
type Input struct {
	Now         time.Time
	Sunrise     time.Time
	Sunset      time.Time
	Description string
}

// Result is the fully resolved visual state for one moment.
type Result struct {
	Period    DayPeriod `json:"period"`
	Progress  float64   `json:"progress"`
	Condition Condition `json:"condition"`
	Night     bool      `json:"night"`
	Icon      Icon      `json:"icon"`
	Theme     Theme     `json:"theme"`
}

// Resolve runs the classifiers and the theme resolver for one input. It is a
// pure function of in.
func Resolve(in Input) Result {
	period, progress := Classify(in.Now, in.Sunrise, in.Sunset)
	condition := ClassifyCondition(in.Description)
	night := IsNight(in.Now, in.Sunrise, in.Sunset)

	return Result{
		Period:    period,
		Progress:  progress,
		Condition: condition,
		Night:     night,
		Icon:      SelectIcon(condition, night),
		Theme:     ResolveTheme(condition, period, progress),
	}
}
