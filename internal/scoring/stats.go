package scoring

import (
	"math"

	"github.com/yourname/dreamwell/internal"
)

type Stats struct {
	AvgQuality  float64 `json:"avgQuality"`
	AvgDuration float64 `json:"avgDuration"`
	AvgLatency  int     `json:"avgLatency"`
	Count       int     `json:"count"`
}

// Lifestyle holds the habit averages shown next to the recommendations.
type Lifestyle struct {
	AvgCaffeine float64 `json:"avgCaffeine"`
	AvgStress   float64 `json:"avgStress"`
	AvgExercise float64 `json:"avgExercise"`
}

// ComputeStats averages quality and duration to one decimal place and latency
// to whole minutes. All fields are zero for an empty history.
func ComputeStats(records []internal.Assessment) Stats {
	if len(records) == 0 {
		return Stats{}
	}
	return Stats{
		AvgQuality:  round1(mean(records, func(a internal.Assessment) float64 { return float64(a.SleepQuality) })),
		AvgDuration: round1(mean(records, func(a internal.Assessment) float64 { return a.SleepDuration })),
		AvgLatency:  int(math.Round(mean(records, func(a internal.Assessment) float64 { return float64(a.SleepLatency) }))),
		Count:       len(records),
	}
}

func ComputeLifestyle(records []internal.Assessment) Lifestyle {
	return Lifestyle{
		AvgCaffeine: round1(meanCaffeine(records)),
		AvgStress:   round1(meanStress(records)),
		AvgExercise: round1(meanExercise(records)),
	}
}

func meanCaffeine(records []internal.Assessment) float64 {
	return mean(records, func(a internal.Assessment) float64 { return float64(a.CaffeineIntake) })
}

func meanStress(records []internal.Assessment) float64 {
	return mean(records, func(a internal.Assessment) float64 { return float64(a.StressLevel) })
}

func meanExercise(records []internal.Assessment) float64 {
	return mean(records, func(a internal.Assessment) float64 { return a.ExerciseHours })
}

func mean(records []internal.Assessment, field func(internal.Assessment) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += field(r)
	}
	return sum / float64(len(records))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
