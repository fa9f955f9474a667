// Package handlers implements the HTTP API surface of the compliance
// engine.  Handlers validate and decode requests, delegate to the
// application services, and translate AppError codes to HTTP statuses.
package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError writes a structured error response.  AppError codes map to
// their canonical HTTP status; anything else is masked as a 500.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *errors.AppError
	if !goerrors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    string(errors.ErrCodeInternal),
			Message: "internal server error",
		})
		return
	}

	status := errors.HTTPStatusForCode(appErr.Code)
	body := ErrorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Detail:  appErr.Detail,
	}
	if status >= http.StatusInternalServerError {
		// Internal detail stays in the logs, not on the wire.
		body.Detail = ""
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body and reports malformed payloads as a
// COMMON_002 bad request.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    string(errors.ErrCodeBadRequest),
			Message: "malformed request body",
			Detail:  err.Error(),
		})
		return false
	}
	return true
}
