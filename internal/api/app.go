package api

import (
	"github.com/yourname/dreamwell/internal"
	"github.com/yourname/dreamwell/internal/questionnaire"
	"github.com/yourname/dreamwell/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Assessments() storage.AssessmentRepository
	Questions() []questionnaire.Question
	StrictValidation() bool
}

type app struct {
	logger    internal.Logger
	store     storage.AssessmentRepository
	questions []questionnaire.Question
	strict    bool
}

func NewApp(logger internal.Logger, store storage.AssessmentRepository, questions []questionnaire.Question, strict bool) App {
	return &app{logger: logger, store: store, questions: questions, strict: strict}
}

func (a *app) Logger() internal.Logger                   { return a.logger }
func (a *app) Assessments() storage.AssessmentRepository { return a.store }
func (a *app) Questions() []questionnaire.Question       { return a.questions }
func (a *app) StrictValidation() bool                    { return a.strict }
