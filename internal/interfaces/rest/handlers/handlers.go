package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/application/services"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
	"github.com/go-playground/validator"
	"github.com/oapi-codegen/runtime"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	queryService   *services.QueryService
	createService  *services.CreateService
	updateService  *services.UpdateService
	deleteService  *services.DeleteService
	imageService   *services.ImageService
	health         HealthChecker
	env            string
	maxUploadBytes int64
	validate       *validator.Validate
	logger         *slog.Logger
}

type Options struct {
	Env            string
	MaxUploadBytes int64
}

func NewHandlers(
	queryService *services.QueryService,
	createService *services.CreateService,
	updateService *services.UpdateService,
	deleteService *services.DeleteService,
	imageService *services.ImageService,
	health HealthChecker,
	opts Options,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		queryService:   queryService,
		createService:  createService,
		updateService:  updateService,
		deleteService:  deleteService,
		imageService:   imageService,
		health:         health,
		env:            opts.Env,
		maxUploadBytes: opts.MaxUploadBytes,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Routes registers every endpoint on a fresh mux.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("POST /api/products", h.CreateProduct)
	mux.HandleFunc("GET /api/products/{id}", h.GetProductByID)
	mux.HandleFunc("PUT /api/products/{id}", h.UpdateProduct)
	mux.HandleFunc("PATCH /api/products/{id}/quantity", h.UpdateProductQuantity)
	mux.HandleFunc("DELETE /api/products/{id}", h.DeleteProduct)

	mux.HandleFunc("POST /api/images", h.UploadImage)
	mux.HandleFunc("DELETE /api/images/{id}", h.DeleteImage)
	mux.HandleFunc("GET /api/images/search/tag/{tag}", h.SearchImagesByTag)
	mux.HandleFunc("GET /api/images/search/description/{keyword}", h.SearchImagesByDescription)
	mux.HandleFunc("GET /api/images/search/filename/{keyword}", h.SearchImagesByFileName)

	mux.HandleFunc("GET /api/status", h.Status)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /docs/openapi.yaml", h.OpenAPIDocument)

	return mux
}

// bindPathParam decodes a simple-style path parameter into dest.
func bindPathParam(r *http.Request, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return application.NewInvalidInputError(fmt.Errorf("invalid path parameter %q: %w", name, err))
	}
	return nil
}

// decodeJSON reads a single JSON document of at most rest.MaxJSONBodyBytes
// into dest and runs the struct validation tags.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, rest.MaxJSONBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return application.NewPayloadTooLargeError(rest.MaxJSONBodyBytes)
		case errors.Is(err, io.EOF):
			return application.NewInvalidInputError(errors.New("request body is empty"))
		}
		return application.NewInvalidInputError(err)
	}

	if err := h.validate.Struct(dest); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}
