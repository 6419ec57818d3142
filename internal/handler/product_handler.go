package handler

import (
	"net/http"
	"strconv"
	"strings"

	"shopkart/internal/model"
	"shopkart/internal/service"
	"shopkart/internal/validation"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, validate *validatorv10.Validate, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests. Supports limit, offset and
// category query parameters.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	category := r.URL.Query().Get("category")

	products, err := h.service.GetAll(r.Context(), limit, offset, category)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id, ok := pathID(r.URL.Path, "/api/products/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/api/products/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, model.ErrCodeInvalidJSON, "Invalid request body")
		return
	}

	if err := validation.Check(h.validate, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/api/products/", "")
	if !ok {
		writeBadRequest(w, model.ErrCodeMissingField, "Invalid product ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// pathID extracts the UUID path segment between prefix and suffix.
// Expecting paths like /api/orders/{id}/status with suffix "/status",
// or /api/products/{id} with an empty suffix.
func pathID(path, prefix, suffix string) (uuid.UUID, bool) {
	if !strings.HasPrefix(path, prefix) {
		return uuid.Nil, false
	}
	segment := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		if !strings.HasSuffix(segment, suffix) {
			return uuid.Nil, false
		}
		segment = strings.TrimSuffix(segment, suffix)
	}
	segment = strings.TrimSuffix(segment, "/")
	if segment == "" || strings.Contains(segment, "/") {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(segment)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an integer query parameter, falling back to def when
// absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}
