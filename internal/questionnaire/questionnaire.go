// Package questionnaire holds the sleep assessment questions and turns a set of
// raw answers into an internal.Assessment.
package questionnaire

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type QuestionType string

const (
	TypeScale  QuestionType = "scale"  // integer slider between Min and Max
	TypeNumber QuestionType = "number" // free numeric input
	TypeTime   QuestionType = "time"   // HH:MM
	TypeSelect QuestionType = "select" // one of Options
)

type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Question struct {
	ID          string       `json:"id" yaml:"id"`
	Order       int          `json:"order" yaml:"order"`
	Prompt      string       `json:"prompt" yaml:"prompt"`
	Type        QuestionType `json:"type" yaml:"type"`
	Min         *float64     `json:"min,omitempty" yaml:"min"`
	Max         *float64     `json:"max,omitempty" yaml:"max"`
	Step        float64      `json:"step,omitempty" yaml:"step"`
	ScaleLabels []string     `json:"scale_labels,omitempty" yaml:"scale_labels"`
	Options     []Option     `json:"options,omitempty" yaml:"options"`
}

// HasOption reports whether v is one of the question's select values.
func (q Question) HasOption(v string) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

//go:embed questions.yaml
var questionsYAML []byte

// Load parses the embedded questionnaire and returns it sorted by Order.
func Load() ([]Question, error) {
	return parse(questionsYAML)
}

func parse(data []byte) ([]Question, error) {
	var qs []Question
	if err := yaml.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("questionnaire: decode: %w", err)
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("questionnaire: no questions defined")
	}

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			return nil, fmt.Errorf("questionnaire: question at order %d has no id", q.Order)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("questionnaire: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Type == TypeSelect && len(q.Options) == 0 {
			return nil, fmt.Errorf("questionnaire: select question %q has no options", q.ID)
		}
	}

	sort.SliceStable(qs, func(i, j int) bool { return qs[i].Order < qs[j].Order })
	return qs, nil
}
