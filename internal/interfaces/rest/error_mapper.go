package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/aquapure/internal/application"
)

// Response is the envelope of every successful reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// BuildErrorResponse maps err to its HTTP status and response body.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	statusCode := application.ToHTTPStatus(err)

	message := err.Error()
	if statusCode >= http.StatusInternalServerError {
		if svcErr, ok := application.IsServiceError(err); ok {
			message = svcErr.Message
		} else {
			message = http.StatusText(statusCode)
		}
	}

	return statusCode, ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: message,
			Details: application.ToErrorDetails(err),
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"status", statusCode,
			"code", response.Error.Code,
			"error", err,
		)
	} else {
		logger.Debug("request rejected",
			"status", statusCode,
			"code", response.Error.Code,
			"error", err,
		)
	}

	writeBody(w, statusCode, response, logger)
}

func WriteJSON(w http.ResponseWriter, statusCode int, message string, data any, logger *slog.Logger) {
	writeBody(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	}, logger)
}

func writeBody(w http.ResponseWriter, statusCode int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("failed to write response body", "error", err)
	}
}
