package theme

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSunrise = int64(1_700_000_000)
	testDayLen  = int64(10 * 60 * 60)
	buffer      = int64(5400)
)

func at(offset int64) time.Time {
	return time.Unix(testSunrise+offset, 0).UTC()
}

func classifyAt(offset int64) (DayPeriod, float64) {
	return Classify(at(offset), at(0), at(testDayLen))
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		offset   int64
		period   DayPeriod
		progress float64
	}{
		{"DawnStart", -buffer, Dawn, 0},
		{"MidDawn", -buffer / 2, Dawn, 0.5},
		{"Sunrise", 0, Day, 0},
		{"MidDay", testDayLen / 2, Day, 0.5},
		{"Sunset", testDayLen, Dusk, 0},
		{"MidDusk", testDayLen + buffer/2, Dusk, 0.5},
		{"DuskEnd", testDayLen + buffer, Night, 0},
		{"JustBeforeDawn", -buffer - 1, Night, 39599.0 / 39600.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, progress := classifyAt(tt.offset)
			assert.Equal(t, tt.period, period)
			assert.InDelta(t, tt.progress, progress, 1e-9)
		})
	}
}

func TestClassify_DawnProgressIncreases(t *testing.T) {
	previous := -1.0
	for offset := -buffer; offset < 0; offset += 60 {
		period, progress := classifyAt(offset)
		require.Equal(t, Dawn, period, "offset %d", offset)
		require.Greater(t, progress, previous, "offset %d", offset)
		require.Less(t, progress, 1.0)
		previous = progress
	}
}

func TestClassify_NightSubRanges(t *testing.T) {
	// Post-dusk night runs from dusk end to the next day's dawn start.
	nightStart := testDayLen + buffer
	nextDawn := 86400 - buffer
	period, progress := classifyAt(nightStart + (nextDawn-nightStart)/2)
	assert.Equal(t, Night, period)
	assert.InDelta(t, 0.5, progress, 1e-9)

	// Pre-dawn night runs from the previous day's dusk end to dawn start.
	prevDuskEnd := testDayLen - 86400 + buffer
	period, progress = classifyAt(prevDuskEnd + (-buffer-prevDuskEnd)/4)
	assert.Equal(t, Night, period)
	assert.InDelta(t, 0.25, progress, 1e-9)
}

func TestClassify_PartitionsTime(t *testing.T) {
	rise := float64(testSunrise)
	set := float64(testSunrise + testDayLen)
	b := float64(buffer)

	for offset := -int64(86400); offset <= 2*86400; offset += 97 {
		now := float64(testSunrise + offset)
		period, progress := classifyAt(offset)

		matches := 0
		expected := Night
		if now >= rise-b && now < rise {
			matches++
			expected = Dawn
		}
		if now >= rise && now < set {
			matches++
			expected = Day
		}
		if now >= set && now < set+b {
			matches++
			expected = Dusk
		}

		require.LessOrEqual(t, matches, 1, "offset %d", offset)
		require.Equal(t, expected, period, "offset %d", offset)
		require.GreaterOrEqual(t, progress, 0.0)
		require.LessOrEqual(t, progress, 1.0)
	}
}

func TestClassify_DegenerateDaylight(t *testing.T) {
	t.Run("SunriseEqualsSunset", func(t *testing.T) {
		period, progress := Classify(at(0), at(0), at(0))
		assert.Equal(t, Dusk, period)
		assert.Equal(t, 0.0, progress)
	})

	t.Run("NearPolarDay", func(t *testing.T) {
		sunset := at(86000)
		for _, offset := range []int64{-6000, 86000 + buffer + 10, 90000} {
			_, progress := Classify(at(offset), at(0), sunset)
			assert.False(t, math.IsNaN(progress))
			assert.GreaterOrEqual(t, progress, 0.0)
			assert.LessOrEqual(t, progress, 1.0)
		}
	})

	t.Run("SunsetBeforeSunrise", func(t *testing.T) {
		_, progress := Classify(at(100), at(0), at(-100))
		assert.False(t, math.IsNaN(progress))
		assert.GreaterOrEqual(t, progress, 0.0)
		assert.LessOrEqual(t, progress, 1.0)
	})
}

func TestClassify_SubSecondPrecision(t *testing.T) {
	now := at(testDayLen / 2).Add(500 * time.Millisecond)
	period, progress := Classify(now, at(0), at(testDayLen))
	assert.Equal(t, Day, period)
	assert.InDelta(t, (float64(testDayLen/2)+0.5)/float64(testDayLen), progress, 1e-9)
}

func TestIsNight(t *testing.T) {
	assert.True(t, IsNight(at(-1), at(0), at(testDayLen)))
	assert.False(t, IsNight(at(0), at(0), at(testDayLen)))
	assert.False(t, IsNight(at(testDayLen), at(0), at(testDayLen)))
	assert.True(t, IsNight(at(testDayLen+1), at(0), at(testDayLen)))

	// Raw comparison: dawn twilight already counts as night.
	period, _ := classifyAt(-60)
	assert.Equal(t, Dawn, period)
	assert.True(t, IsNight(at(-60), at(0), at(testDayLen)))
}

func TestDayPeriod_Text(t *testing.T) {
	for _, period := range Periods {
		text, err := period.MarshalText()
		require.NoError(t, err)

		var decoded DayPeriod
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, period, decoded)
	}

	var p DayPeriod
	assert.Error(t, p.UnmarshalText([]byte("noon")))
	assert.Equal(t, "unknown", DayPeriod(42).String())
	assert.True(t, Dawn.IsTwilight())
	assert.True(t, Dusk.IsTwilight())
	assert.False(t, Day.IsTwilight())
}
