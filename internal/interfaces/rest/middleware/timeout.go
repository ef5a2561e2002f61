package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
)

// Timeout answers 503 with a TIMEOUT envelope when a request runs longer
// than limit. Handlers see the deadline on the request context. A
// non-positive limit leaves requests unbounded.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	body := deadlineBody()

	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.TimeoutHandler(next, limit, body)
	}
}

func deadlineBody() string {
	b, _ := json.Marshal(rest.ErrorResponse{
		Error: rest.ErrorDetail{
			Code:    application.ErrCodeTimeout,
			Message: "Request timeout",
		},
	})
	return string(b)
}
