package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/application/services"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
)

// multipartOverhead is the slack allowed on top of the file limit for the
// form's boundaries and text fields.
const multipartOverhead = 1 << 20

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rest.WriteError(w, application.NewPayloadTooLargeError(h.maxUploadBytes), h.logger)
			return
		}
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		rest.WriteError(w, domain.NewValidationError("file", "file is required"), h.logger)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		rest.WriteError(w, application.NewPayloadTooLargeError(h.maxUploadBytes), h.logger)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	doc, err := h.imageService.Upload(r.Context(), services.UploadImageCommand{
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
		Description: r.FormValue("description"),
		Tags:        domain.ParseTags(r.FormValue("tags")),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, "Image uploaded successfully", rest.ToImageResponse(doc), h.logger)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPathParam(r, "id", &id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if err := h.imageService.Delete(r.Context(), id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SearchImagesByTag(w http.ResponseWriter, r *http.Request) {
	var tag string
	if err := bindPathParam(r, "tag", &tag); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	docs, err := h.imageService.SearchByTag(r.Context(), tag)
	h.writeSearchResult(w, docs, err)
}

func (h *Handlers) SearchImagesByDescription(w http.ResponseWriter, r *http.Request) {
	var keyword string
	if err := bindPathParam(r, "keyword", &keyword); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	docs, err := h.imageService.SearchByDescription(r.Context(), keyword)
	h.writeSearchResult(w, docs, err)
}

func (h *Handlers) SearchImagesByFileName(w http.ResponseWriter, r *http.Request) {
	var keyword string
	if err := bindPathParam(r, "keyword", &keyword); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	docs, err := h.imageService.SearchByFileName(r.Context(), keyword)
	h.writeSearchResult(w, docs, err)
}

func (h *Handlers) writeSearchResult(w http.ResponseWriter, docs []*domain.ImageDocument, err error) {
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, "Images retrieved successfully", rest.ToImageResponses(docs), h.logger)
}
