package internal

import "time"

type MorningMood string

const (
	MoodRefreshed MorningMood = "refreshed"
	MoodOkay      MorningMood = "okay"
	MoodTired     MorningMood = "tired"
	MoodGroggy    MorningMood = "groggy"
	MoodExhausted MorningMood = "exhausted"
)

func (m MorningMood) Valid() bool {
	switch m {
	case MoodRefreshed, MoodOkay, MoodTired, MoodGroggy, MoodExhausted:
		return true
	}
	return false
}

type SleepEnvironment string

const (
	EnvironmentIdeal SleepEnvironment = "ideal"
	EnvironmentGood  SleepEnvironment = "good"
	EnvironmentOkay  SleepEnvironment = "okay"
	EnvironmentPoor  SleepEnvironment = "poor"
	EnvironmentBad   SleepEnvironment = "bad"
)

func (e SleepEnvironment) Valid() bool {
	switch e {
	case EnvironmentIdeal, EnvironmentGood, EnvironmentOkay, EnvironmentPoor, EnvironmentBad:
		return true
	}
	return false
}

// Assessment is one completed questionnaire submission. It is immutable once
// built; RawAnswers keeps the user-entered values the typed fields came from.
type Assessment struct {
	ID               string           `json:"id"`
	Date             time.Time        `json:"date"`
	SleepQuality     int              `json:"sleepQuality" validate:"gte=1,lte=10"`
	SleepDuration    float64          `json:"sleepDuration" validate:"gte=0,lte=24"`
	Bedtime          string           `json:"bedtime" validate:"required"`
	WakeTime         string           `json:"wakeTime" validate:"required"`
	SleepLatency     int              `json:"sleepLatency" validate:"gte=0,lte=180"` // minutes
	NightAwakenings  int              `json:"nightAwakenings" validate:"gte=0"`
	MorningMood      MorningMood      `json:"morningMood" validate:"oneof=refreshed okay tired groggy exhausted"`
	EnergyLevel      int              `json:"energyLevel" validate:"gte=1,lte=10"`
	CaffeineIntake   int              `json:"caffeineIntake" validate:"gte=0,lte=20"` // cups
	ScreenTime       float64          `json:"screenTime" validate:"gte=0,lte=24"`
	ExerciseHours    float64          `json:"exerciseHours" validate:"gte=0,lte=24"`
	StressLevel      int              `json:"stressLevel" validate:"gte=1,lte=10"`
	SleepEnvironment SleepEnvironment `json:"sleepEnvironment" validate:"oneof=ideal good okay poor bad"`
	RawAnswers       map[string]any   `json:"rawAnswers"`
}
