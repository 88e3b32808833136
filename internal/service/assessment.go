package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/dreamwell/internal"
	"github.com/yourname/dreamwell/internal/questionnaire"
	"github.com/yourname/dreamwell/internal/scoring"
	"github.com/yourname/dreamwell/internal/storage"
)

type SubmitOptions struct {
	// Strict rejects answers that parse but fall outside their allowed range.
	Strict bool
	Now    func() time.Time
	NewID  func() string
}

// SubmitAssessment builds a record from raw answers and prepends it to the
// store. With Strict set, a *questionnaire.ValidationError is returned and
// nothing is stored when a value is out of range.
func SubmitAssessment(ctx context.Context, repo storage.AssessmentRepository, answers map[string]any, opts SubmitOptions) (*internal.Assessment, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	a := questionnaire.Build(answers, now(), newID())
	if opts.Strict {
		if err := questionnaire.Validate(a); err != nil {
			return nil, err
		}
	}
	if _, err := repo.Append(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

type ScoredAssessment struct {
	internal.Assessment
	Score     int          `json:"score"`
	Label     string       `json:"label"`
	Tier      scoring.Tier `json:"tier"`
	MoodEmoji string       `json:"moodEmoji"`
}

func Scored(a internal.Assessment) ScoredAssessment {
	score := scoring.Score(a)
	return ScoredAssessment{
		Assessment: a,
		Score:      score,
		Label:      scoring.Label(score),
		Tier:       scoring.ScoreTier(score),
		MoodEmoji:  scoring.MoodEmoji(a.MorningMood),
	}
}

// ScoredHistory scores every record, keeping the input order.
func ScoredHistory(records []internal.Assessment) []ScoredAssessment {
	out := make([]ScoredAssessment, len(records))
	for i, r := range records {
		out[i] = Scored(r)
	}
	return out
}

type StatsReport struct {
	scoring.Stats
	Lifestyle scoring.Lifestyle `json:"lifestyle"`
}

func CalculateStats(records []internal.Assessment) StatsReport {
	return StatsReport{
		Stats:     scoring.ComputeStats(records),
		Lifestyle: scoring.ComputeLifestyle(records),
	}
}
