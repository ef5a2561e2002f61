package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
	"github.com/swaggo/swag"
)

func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, "Service is running", rest.StatusResponse{
		Service: "aquapure",
		Status:  "UP",
		Env:     h.env,
		Time:    time.Now().UTC(),
	}, h.logger)
}

// Health pings the database and reports 503 when it is unreachable.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err)
		rest.WriteError(w, &application.ServiceError{
			Code:       application.ErrCodeStoreFailure,
			Message:    "Database unreachable",
			HTTPStatus: http.StatusServiceUnavailable,
			Err:        err,
		}, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, "Healthy", map[string]string{"database": "UP"}, h.logger)
}

func (h *Handlers) OpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(rest.DocsInstanceName)
	if err != nil {
		rest.WriteError(w, application.NewInternalError(err), h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
