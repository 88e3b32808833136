package scoring

import "github.com/yourname/dreamwell/internal"

// MinRecordsForInsights is how much history the presentation layer waits for
// before showing insights.
const MinRecordsForInsights = 3

// MaxRecommendations caps Recommend's output.
const MaxRecommendations = 3

const (
	RecRelaxation = "Practice relaxation techniques before bed"
	RecCaffeine   = "Cut back on caffeine, especially in the afternoon"
	RecStress     = "Build stress-reduction practices into your day"
	RecExercise   = "Add regular physical activity to your routine"
	RecEarlierBed = "Try going to bed earlier"
	RecKeepItUp   = "Keep up your good sleep habits!"
)

type rule struct {
	message string
	applies func(averages) bool
}

type averages struct {
	latency  float64
	caffeine float64
	stress   float64
	exercise float64
	duration float64
}

// Rules in priority order. Only the first MaxRecommendations that apply are kept.
var rules = []rule{
	{RecRelaxation, func(m averages) bool { return m.latency > 30 }},
	{RecCaffeine, func(m averages) bool { return m.caffeine > 3 }},
	{RecStress, func(m averages) bool { return m.stress > 7 }},
	{RecExercise, func(m averages) bool { return m.exercise < 0.5 }},
	{RecEarlierBed, func(m averages) bool { return m.duration < 7 }},
}

// Recommend evaluates the rules over the history's averages. Latency and
// duration use the rounded values from ComputeStats so the advice agrees with
// the numbers shown next to it.
func Recommend(records []internal.Assessment) []string {
	stats := ComputeStats(records)
	m := averages{
		latency:  float64(stats.AvgLatency),
		caffeine: meanCaffeine(records),
		stress:   meanStress(records),
		exercise: meanExercise(records),
		duration: stats.AvgDuration,
	}

	var out []string
	for _, r := range rules {
		if len(out) == MaxRecommendations {
			break
		}
		if r.applies(m) {
			out = append(out, r.message)
		}
	}
	if len(out) == 0 {
		out = append(out, RecKeepItUp)
	}
	return out
}

const (
	QualityExcellent = "Your sleep quality is excellent! Keep it up."
	QualityFair      = "Your sleep quality is reasonable. There is room for improvement."
	QualityPoor      = "Your sleep quality needs attention. Consider adjusting your habits."

	DurationInRange = "Your sleep duration is within the recommended range (7-9h)."
	DurationShort   = "You are sleeping less than recommended. Try going to bed earlier."
	DurationLong    = "You are sleeping more than usual. Check for outside factors."
)

func QualityInsight(avgQuality float64) string {
	switch {
	case avgQuality >= 7:
		return QualityExcellent
	case avgQuality >= 5:
		return QualityFair
	default:
		return QualityPoor
	}
}

func DurationInsight(avgDuration float64) string {
	switch {
	case avgDuration >= 7 && avgDuration <= 9:
		return DurationInRange
	case avgDuration < 7:
		return DurationShort
	default:
		return DurationLong
	}
}
