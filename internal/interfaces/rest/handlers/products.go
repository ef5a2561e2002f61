package handlers

import (
	"net/http"

	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
)

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.queryService.ListProducts(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, "Products retrieved successfully", rest.ToProductResponses(products), h.logger)
}

func (h *Handlers) GetProductByID(w http.ResponseWriter, r *http.Request) {
	var id int64
	if err := bindPathParam(r, "id", &id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	product, err := h.queryService.GetProductByID(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, "Product retrieved successfully", rest.ToProductResponse(product), h.logger)
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req rest.ProductRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	candidate, err := rest.ToDomainProduct(req)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	product, err := h.createService.CreateProduct(r.Context(), candidate)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, "Product created successfully", rest.ToProductResponse(product), h.logger)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var id int64
	if err := bindPathParam(r, "id", &id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req rest.ProductRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	candidate, err := rest.ToDomainProduct(req)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	product, err := h.updateService.UpdateProduct(r.Context(), id, candidate)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, "Product updated successfully", rest.ToProductResponse(product), h.logger)
}

func (h *Handlers) UpdateProductQuantity(w http.ResponseWriter, r *http.Request) {
	var id int64
	if err := bindPathParam(r, "id", &id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req rest.QuantityRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	product, err := h.updateService.UpdateProductQuantity(r.Context(), id, *req.Quantity)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, "Product quantity updated successfully", rest.ToProductResponse(product), h.logger)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	var id int64
	if err := bindPathParam(r, "id", &id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if err := h.deleteService.DeleteProduct(r.Context(), id); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
