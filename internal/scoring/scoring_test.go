package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/dreamwell/internal"
)

func baseline() internal.Assessment {
	return internal.Assessment{
		ID:               "r",
		SleepQuality:     5,
		SleepDuration:    8,
		Bedtime:          "22:00",
		WakeTime:         "06:00",
		SleepLatency:     15,
		NightAwakenings:  0,
		MorningMood:      internal.MoodOkay,
		EnergyLevel:      5,
		CaffeineIntake:   2,
		ScreenTime:       1,
		ExerciseHours:    0,
		StressLevel:      5,
		SleepEnvironment: internal.EnvironmentGood,
	}
}

func TestScoreBaseline(t *testing.T) {
	b := Breakdown(baseline())
	assert.InDelta(t, 15.0, b.Quality, 1e-9)
	assert.InDelta(t, 25.0, b.Duration, 1e-9)
	assert.InDelta(t, 15.0, b.Latency, 1e-9)
	assert.InDelta(t, 15.0, b.Awakenings, 1e-9)
	assert.InDelta(t, 7.5, b.Energy, 1e-9)
	assert.Equal(t, 78, b.Total)
	assert.Equal(t, 78, Score(baseline()))
}

func TestScoreExtremes(t *testing.T) {
	best := baseline()
	best.SleepQuality, best.EnergyLevel = 10, 10
	assert.Equal(t, 100, Score(best))

	worst := baseline()
	worst.SleepQuality, worst.EnergyLevel = 1, 1
	worst.SleepDuration, worst.SleepLatency, worst.NightAwakenings = 0, 120, 4
	// 3 + 10 + 6 + 6 + 1.5
	assert.Equal(t, 27, Score(worst))
}

func TestScoreAlwaysInRange(t *testing.T) {
	durations := []float64{0, 3.5, 5, 6, 7, 9, 9.5, 10, 10.5, 11, 12, 24}
	latencies := []int{0, 15, 16, 30, 31, 45, 46, 180}
	for q := 1; q <= 10; q++ {
		for e := 1; e <= 10; e++ {
			for _, d := range durations {
				for _, l := range latencies {
					for n := 0; n <= 5; n++ {
						a := baseline()
						a.SleepQuality, a.EnergyLevel = q, e
						a.SleepDuration, a.SleepLatency, a.NightAwakenings = d, l, n
						s := Score(a)
						if s < 0 || s > 100 {
							t.Fatalf("score %d out of range for %+v", s, a)
						}
					}
				}
			}
		}
	}
}

func TestScoreMonotonicInQualityAndEnergy(t *testing.T) {
	for _, d := range []float64{4, 6.5, 8, 10.5} {
		prev := -1
		for q := 1; q <= 10; q++ {
			a := baseline()
			a.SleepDuration, a.SleepQuality = d, q
			s := Score(a)
			assert.GreaterOrEqual(t, s, prev, "quality %d duration %v", q, d)
			prev = s
		}

		prev = -1
		for e := 1; e <= 10; e++ {
			a := baseline()
			a.SleepDuration, a.EnergyLevel = d, e
			s := Score(a)
			assert.GreaterOrEqual(t, s, prev, "energy %d duration %v", e, d)
			prev = s
		}
	}
}

func TestScoreOptimalDurationBeatsShortSleep(t *testing.T) {
	eight, four := baseline(), baseline()
	eight.SleepDuration, four.SleepDuration = 8, 4
	assert.GreaterOrEqual(t, Score(eight), Score(four))
	assert.Equal(t, 15, Score(eight)-Score(four))
}

func TestDurationFactorBands(t *testing.T) {
	cases := map[float64]float64{
		4.9: 0.4, 5: 0.6, 5.9: 0.6, 6: 0.8, 6.9: 0.8, 7: 1, 8: 1, 9: 1,
		9.5: 0.8, 10: 0.8, 10.5: 0.6, 11: 0.6, 11.5: 0.4, 0: 0.4,
	}
	for hours, want := range cases {
		assert.Equal(t, want, DurationFactor(hours), "hours=%v", hours)
	}
}

func TestLatencyAndAwakeningsFactors(t *testing.T) {
	assert.Equal(t, 1.0, LatencyFactor(0))
	assert.Equal(t, 1.0, LatencyFactor(15))
	assert.Equal(t, 0.8, LatencyFactor(16))
	assert.Equal(t, 0.8, LatencyFactor(30))
	assert.Equal(t, 0.6, LatencyFactor(45))
	assert.Equal(t, 0.4, LatencyFactor(46))

	assert.Equal(t, 1.0, AwakeningsFactor(0))
	assert.Equal(t, 0.8, AwakeningsFactor(1))
	assert.Equal(t, 0.6, AwakeningsFactor(2))
	assert.Equal(t, 0.4, AwakeningsFactor(3))
	assert.Equal(t, 0.4, AwakeningsFactor(4))
}

func TestLabelBoundaries(t *testing.T) {
	assert.Equal(t, "Excellent", Label(100))
	assert.Equal(t, "Excellent", Label(80))
	assert.Equal(t, "Good", Label(79))
	assert.Equal(t, "Good", Label(60))
	assert.Equal(t, "Fair", Label(59))
	assert.Equal(t, "Fair", Label(40))
	assert.Equal(t, "Needs improvement", Label(39))
	assert.Equal(t, "Needs improvement", Label(0))
}

func TestScoreTierAndMood(t *testing.T) {
	assert.Equal(t, TierHigh, ScoreTier(80))
	assert.Equal(t, TierMedium, ScoreTier(60))
	assert.Equal(t, TierLow, ScoreTier(59))

	assert.Equal(t, "😊", MoodEmoji(internal.MoodRefreshed))
	assert.Equal(t, "😫", MoodEmoji(internal.MoodExhausted))
	assert.Equal(t, "😐", MoodEmoji("unknown"))
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
	assert.Equal(t, Stats{AvgQuality: 0, AvgDuration: 0, AvgLatency: 0, Count: 0}, ComputeStats([]internal.Assessment{}))
}

func TestComputeStatsSingle(t *testing.T) {
	a := baseline()
	a.SleepQuality, a.SleepDuration, a.SleepLatency = 7, 7.5, 10
	assert.Equal(t, Stats{AvgQuality: 7, AvgDuration: 7.5, AvgLatency: 10, Count: 1}, ComputeStats([]internal.Assessment{a}))
}

func TestComputeStatsRounding(t *testing.T) {
	a, b, c := baseline(), baseline(), baseline()
	a.SleepQuality, b.SleepQuality, c.SleepQuality = 7, 8, 8       // 7.666…
	a.SleepDuration, b.SleepDuration, c.SleepDuration = 6, 7, 7.25 // 6.75
	a.SleepLatency, b.SleepLatency, c.SleepLatency = 10, 11, 12    // 11
	got := ComputeStats([]internal.Assessment{a, b, c})
	assert.Equal(t, 7.7, got.AvgQuality)
	assert.Equal(t, 6.8, got.AvgDuration)
	assert.Equal(t, 11, got.AvgLatency)
	assert.Equal(t, 3, got.Count)
}

func TestComputeLifestyle(t *testing.T) {
	a, b := baseline(), baseline()
	a.CaffeineIntake, b.CaffeineIntake = 1, 2
	a.StressLevel, b.StressLevel = 3, 8
	a.ExerciseHours, b.ExerciseHours = 0.5, 0.25
	assert.Equal(t, Lifestyle{AvgCaffeine: 1.5, AvgStress: 5.5, AvgExercise: 0.4}, ComputeLifestyle([]internal.Assessment{a, b}))
	assert.Equal(t, Lifestyle{}, ComputeLifestyle(nil))
}

func repeat(a internal.Assessment, n int) []internal.Assessment {
	out := make([]internal.Assessment, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func TestRecommendTruncatesInPriorityOrder(t *testing.T) {
	a := baseline()
	a.SleepLatency, a.CaffeineIntake, a.StressLevel, a.ExerciseHours, a.SleepDuration = 45, 5, 9, 0, 5

	got := Recommend(repeat(a, 3))
	assert.Equal(t, []string{RecRelaxation, RecCaffeine, RecStress}, got)
}

func TestRecommendIdealHistory(t *testing.T) {
	a := baseline()
	a.SleepLatency, a.CaffeineIntake, a.StressLevel, a.ExerciseHours, a.SleepDuration = 10, 1, 2, 1, 8

	assert.Equal(t, []string{RecKeepItUp}, Recommend(repeat(a, 3)))
}

func TestRecommendLaterRulesWhenEarlierDoNotApply(t *testing.T) {
	a := baseline()
	a.SleepLatency, a.CaffeineIntake, a.StressLevel, a.ExerciseHours, a.SleepDuration = 10, 1, 2, 0, 6

	assert.Equal(t, []string{RecExercise, RecEarlierBed}, Recommend(repeat(a, 4)))
}

func TestRecommendThresholdsAreStrict(t *testing.T) {
	a := baseline()
	a.SleepLatency, a.CaffeineIntake, a.StressLevel, a.ExerciseHours, a.SleepDuration = 30, 3, 7, 0.5, 7

	assert.Equal(t, []string{RecKeepItUp}, Recommend(repeat(a, 3)))
}

func TestRecommendUsesMeansAcrossRecords(t *testing.T) {
	calm, wired := baseline(), baseline()
	calm.ExerciseHours, wired.ExerciseHours = 1, 1
	calm.CaffeineIntake, wired.CaffeineIntake = 0, 8 // mean 4
	calm.SleepLatency, wired.SleepLatency = 10, 10

	got := Recommend([]internal.Assessment{calm, wired, calm, wired})
	require.Len(t, got, 1)
	assert.Equal(t, RecCaffeine, got[0])
}

func TestRecommendIsTotalOnEmptyInput(t *testing.T) {
	got := Recommend(nil)
	assert.LessOrEqual(t, len(got), MaxRecommendations)
	assert.NotEmpty(t, got)
}

func TestInsightMessages(t *testing.T) {
	assert.Equal(t, QualityExcellent, QualityInsight(7))
	assert.Equal(t, QualityFair, QualityInsight(6.9))
	assert.Equal(t, QualityFair, QualityInsight(5))
	assert.Equal(t, QualityPoor, QualityInsight(4.9))

	assert.Equal(t, DurationInRange, DurationInsight(7))
	assert.Equal(t, DurationInRange, DurationInsight(9))
	assert.Equal(t, DurationShort, DurationInsight(6.9))
	assert.Equal(t, DurationLong, DurationInsight(9.1))
}
