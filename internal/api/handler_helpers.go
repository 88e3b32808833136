package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/dreamwell/internal"
	"github.com/yourname/dreamwell/internal/response"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case http.StatusBadRequest:
		resp = response.BadRequest(msg + ": " + err.Error())
	case http.StatusNotFound:
		resp = response.NotFound(msg + ": " + err.Error())
	case http.StatusInternalServerError:
		resp = response.InternalError(msg + ": " + err.Error())
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, resp)
}

func HandleValidationError(c *gin.Context, logger internal.Logger, fields []internal.FieldError, msg string) {
	requestID := c.GetString("request_id")
	logger.Warnf("[request_id=%s] %s: %d field(s) rejected", requestID, msg, len(fields))
	c.JSON(http.StatusBadRequest, response.ValidationFailed(msg, fields))
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	respond(c, logger, http.StatusOK, data, meta)
}

func HandleCreated(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	respond(c, logger, http.StatusCreated, data, meta)
}

func respond(c *gin.Context, logger internal.Logger, status int, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Debugf("[request_id=%s] Success", requestID)
	c.JSON(status, response.Success(data, meta))
}
