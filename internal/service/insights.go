package service

import (
	"github.com/yourname/dreamwell/internal"
	"github.com/yourname/dreamwell/internal/scoring"
)

// Insights is the analysis shown once enough history exists. Until then only
// Ready, Count and Required are filled in.
type Insights struct {
	Ready           bool               `json:"ready"`
	Count           int                `json:"count"`
	Required        int                `json:"required"`
	Stats           *scoring.Stats     `json:"stats,omitempty"`
	Lifestyle       *scoring.Lifestyle `json:"lifestyle,omitempty"`
	QualityInsight  string             `json:"qualityInsight,omitempty"`
	DurationInsight string             `json:"durationInsight,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

func BuildInsights(records []internal.Assessment) Insights {
	in := Insights{
		Count:    len(records),
		Required: scoring.MinRecordsForInsights,
	}
	if len(records) < scoring.MinRecordsForInsights {
		return in
	}

	stats := scoring.ComputeStats(records)
	lifestyle := scoring.ComputeLifestyle(records)
	in.Ready = true
	in.Stats = &stats
	in.Lifestyle = &lifestyle
	in.QualityInsight = scoring.QualityInsight(stats.AvgQuality)
	in.DurationInsight = scoring.DurationInsight(stats.AvgDuration)
	in.Recommendations = scoring.Recommend(records)
	return in
}
