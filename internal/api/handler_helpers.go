package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/logging"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func HandleError(c *gin.Context, logger logging.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp APIResponse
	switch status {
	case http.StatusBadRequest:
		resp = BadRequest(msg + ": " + err.Error())
	case http.StatusNotFound:
		resp = NotFound(msg + ": " + err.Error())
	case http.StatusInternalServerError:
		resp = InternalError(msg + ": " + err.Error())
	default:
		resp = APIResponse{Error: NewAppError(status, msg+": "+err.Error())}
	}
	c.JSON(status, resp)
}

func HandleSuccess(c *gin.Context, logger logging.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	c.JSON(http.StatusOK, Success(data, meta))
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	var nf engine.NotFoundError
	if errors.As(err, &nf) || errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
