package questionnaire

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yourname/dreamwell/internal"
)

// Values used when an answer is missing or cannot be parsed.
const (
	DefaultSleepQuality     = 5
	DefaultSleepDuration    = 8.0
	DefaultBedtime          = "22:00"
	DefaultWakeTime         = "06:00"
	DefaultSleepLatency     = 15
	DefaultNightAwakenings  = 0
	DefaultMorningMood      = internal.MoodOkay
	DefaultEnergyLevel      = 5
	DefaultCaffeineIntake   = 2
	DefaultScreenTime       = 1.0
	DefaultExerciseHours    = 0.0
	DefaultStressLevel      = 5
	DefaultSleepEnvironment = internal.EnvironmentGood
)

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
)

// Build derives a complete assessment from raw answers keyed by question id.
// Every typed field falls back to its default when the answer is absent or
// unparseable. Numeric strings are read up to the first non-numeric character,
// so the "4+" and "3+" select values count as 4 and 3.
func Build(raw map[string]any, now time.Time, id string) internal.Assessment {
	answers := make(map[string]any, len(raw))
	for k, v := range raw {
		answers[k] = v
	}

	return internal.Assessment{
		ID:               id,
		Date:             now.UTC(),
		SleepQuality:     intAnswer(answers, "sleepQuality", DefaultSleepQuality),
		SleepDuration:    floatAnswer(answers, "sleepDuration", DefaultSleepDuration),
		Bedtime:          clockAnswer(answers, "bedtime", DefaultBedtime),
		WakeTime:         clockAnswer(answers, "wakeTime", DefaultWakeTime),
		SleepLatency:     intAnswer(answers, "sleepLatency", DefaultSleepLatency),
		NightAwakenings:  intAnswer(answers, "nightAwakenings", DefaultNightAwakenings),
		MorningMood:      moodAnswer(answers, "morningMood"),
		EnergyLevel:      intAnswer(answers, "energyLevel", DefaultEnergyLevel),
		CaffeineIntake:   intAnswer(answers, "caffeineIntake", DefaultCaffeineIntake),
		ScreenTime:       floatAnswer(answers, "screenTime", DefaultScreenTime),
		ExerciseHours:    floatAnswer(answers, "exerciseHours", DefaultExerciseHours),
		StressLevel:      intAnswer(answers, "stressLevel", DefaultStressLevel),
		SleepEnvironment: environmentAnswer(answers, "sleepEnvironment"),
		RawAnswers:       answers,
	}
}

func intAnswer(answers map[string]any, key string, def int) int {
	if n, ok := parseInt(answers[key]); ok {
		return n
	}
	return def
}

func floatAnswer(answers map[string]any, key string, def float64) float64 {
	if f, ok := parseFloat(answers[key]); ok {
		return f
	}
	return def
}

func clockAnswer(answers map[string]any, key, def string) string {
	s, ok := answers[key].(string)
	if !ok {
		return def
	}
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return def
	}
	h, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s", h, m[2])
}

func moodAnswer(answers map[string]any, key string) internal.MorningMood {
	s, _ := answers[key].(string)
	m := internal.MorningMood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return DefaultMorningMood
	}
	return m
}

func environmentAnswer(answers map[string]any, key string) internal.SleepEnvironment {
	s, _ := answers[key].(string)
	e := internal.SleepEnvironment(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return DefaultSleepEnvironment
	}
	return e
}

func parseInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > math.MaxInt32 {
			return 0, false
		}
		return int(x), true
	case json.Number:
		return parseInt(string(x))
	case string:
		m := leadingInt.FindString(strings.TrimSpace(x))
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func parseFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case json.Number:
		return parseFloat(string(x))
	case string:
		m := leadingFloat.FindString(strings.TrimSpace(x))
		if m == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
