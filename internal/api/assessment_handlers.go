package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/dreamwell/internal/questionnaire"
	"github.com/yourname/dreamwell/internal/service"
)

type SubmitRequest struct {
	Answers map[string]any `json:"answers"`
}

func GetQuestions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		qs := app.Questions()
		HandleSuccess(c, app.Logger(), qs, map[string]any{"count": len(qs)})
	}
}

func PostAssessment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body SubmitRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		a, err := service.SubmitAssessment(c.Request.Context(), app.Assessments(), body.Answers, service.SubmitOptions{
			Strict: app.StrictValidation(),
		})
		if err != nil {
			var verr *questionnaire.ValidationError
			if errors.As(err, &verr) {
				HandleValidationError(c, app.Logger(), verr.Fields, "Validation failed")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save assessment")
			return
		}

		app.Logger().Infof("stored assessment %s", a.ID)
		HandleCreated(c, app.Logger(), service.Scored(*a), nil)
	}
}

func GetAssessments(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		history := service.ScoredHistory(app.Assessments().List())
		HandleSuccess(c, app.Logger(), history, map[string]any{"count": len(history)})
	}
}

func GetAssessmentStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), service.CalculateStats(app.Assessments().List()), nil)
	}
}

func GetAssessmentInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), service.BuildInsights(app.Assessments().List()), nil)
	}
}
