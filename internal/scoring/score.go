// Package scoring derives composite scores, aggregate statistics and
// recommendations from assessment records. Every function is pure.
package scoring

import (
	"math"

	"github.com/yourname/dreamwell/internal"
)

// Component weights; they sum to 100.
const (
	QualityWeight    = 30
	DurationWeight   = 25
	LatencyWeight    = 15
	AwakeningsWeight = 15
	EnergyWeight     = 15
)

// ScoreBreakdown holds the weighted value of each sub-score.
type ScoreBreakdown struct {
	Quality    float64 `json:"quality"`
	Duration   float64 `json:"duration"`
	Latency    float64 `json:"latency"`
	Awakenings float64 `json:"awakenings"`
	Energy     float64 `json:"energy"`
	Total      int     `json:"total"`
}

func Breakdown(a internal.Assessment) ScoreBreakdown {
	b := ScoreBreakdown{
		Quality:    float64(a.SleepQuality) / 10 * QualityWeight,
		Duration:   DurationFactor(a.SleepDuration) * DurationWeight,
		Latency:    LatencyFactor(a.SleepLatency) * LatencyWeight,
		Awakenings: AwakeningsFactor(a.NightAwakenings) * AwakeningsWeight,
		Energy:     float64(a.EnergyLevel) / 10 * EnergyWeight,
	}
	sum := b.Quality + b.Duration + b.Latency + b.Awakenings + b.Energy
	b.Total = clamp(int(math.Round(sum)), 0, 100)
	return b
}

// Score returns the 0-100 composite sleep score of a.
func Score(a internal.Assessment) int {
	return Breakdown(a).Total
}

// DurationFactor: 7-9h is optimal, each band outside it scores lower.
func DurationFactor(hours float64) float64 {
	switch {
	case hours >= 7 && hours <= 9:
		return 1.0
	case hours >= 6 && hours <= 10:
		return 0.8
	case hours >= 5 && hours <= 11:
		return 0.6
	default:
		return 0.4
	}
}

func LatencyFactor(minutes int) float64 {
	switch {
	case minutes <= 15:
		return 1.0
	case minutes <= 30:
		return 0.8
	case minutes <= 45:
		return 0.6
	default:
		return 0.4
	}
}

func AwakeningsFactor(n int) float64 {
	switch {
	case n == 0:
		return 1.0
	case n <= 1:
		return 0.8
	case n <= 2:
		return 0.6
	default:
		return 0.4
	}
}

const (
	LabelExcellent        = "Excellent"
	LabelGood             = "Good"
	LabelFair             = "Fair"
	LabelNeedsImprovement = "Needs improvement"
)

func Label(score int) string {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelFair
	default:
		return LabelNeedsImprovement
	}
}

// Tier groups scores for display highlighting.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func ScoreTier(score int) Tier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= 60:
		return TierMedium
	default:
		return TierLow
	}
}

var moodEmoji = map[internal.MorningMood]string{
	internal.MoodRefreshed: "😊",
	internal.MoodOkay:      "😐",
	internal.MoodTired:     "😴",
	internal.MoodGroggy:    "😵",
	internal.MoodExhausted: "😫",
}

func MoodEmoji(m internal.MorningMood) string {
	if e, ok := moodEmoji[m]; ok {
		return e
	}
	return "😐"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
