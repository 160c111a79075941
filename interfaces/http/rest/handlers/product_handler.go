package handlers

import (
	"net/http"
	"strconv"

	"ecommerce-backend/application/services"
	"ecommerce-backend/domain/entities"
	"ecommerce-backend/pkg/common"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	products *services.ProductService
	logger   *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// ProductRequest is the wire shape of a product draft
type ProductRequest struct {
	Name  string          `json:"name" validate:"required,max=200"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

func (r ProductRequest) draft() entities.ProductDraft {
	return entities.ProductDraft{Name: r.Name, Price: r.Price}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		respondServiceError(w, err, h.logger)
		return
	}
	common.RespondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, h.logger)
		return
	}
	common.RespondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.products.Create(r.Context(), req.draft())
	if err != nil {
		respondServiceError(w, err, h.logger)
		return
	}
	common.RespondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/{productID}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := h.products.Update(r.Context(), id, req.draft())
	if err != nil {
		respondServiceError(w, err, h.logger)
		return
	}
	common.RespondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "product id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.ValidationError, err.Error())
		return req, false
	}
	return req, true
}
