package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecommerce-backend/application/services"
	"ecommerce-backend/domain/entities"
	"ecommerce-backend/pkg/common"
	apperrors "ecommerce-backend/pkg/errors"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies accepted by the handlers
const maxBodyBytes = 1 << 20

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders *services.OrderService
	logger *zap.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *services.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// ProductRef references an existing product by id
type ProductRef struct {
	ID int `json:"id" validate:"required"`
}

// OrderRequest is the wire shape of an order draft
type OrderRequest struct {
	CustomerID int        `json:"customerId" validate:"required"`
	Product    ProductRef `json:"product" validate:"required"`
	Quantity   int        `json:"quantity" validate:"required,gt=0"`
}

func (r OrderRequest) draft() entities.OrderDraft {
	return entities.OrderDraft{
		CustomerID: r.CustomerID,
		ProductID:  r.Product.ID,
		Quantity:   r.Quantity,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{orderID}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Create(r.Context(), req.draft())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /orders/{orderID}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeOrder(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Update(r.Context(), id, req.draft())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/{orderID}. Deleting an absent order
// still answers 204.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// orderID parses the path parameter, answering 400 on a non-numeric id
func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "orderID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.BadRequest, "order id must be an integer")
		return 0, false
	}
	return id, true
}

// decodeOrder parses and validates an order draft body
func (h *OrderHandler) decodeOrder(w http.ResponseWriter, r *http.Request) (OrderRequest, bool) {
	var req OrderRequest
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

// respondServiceError maps service errors onto HTTP responses
func (h *OrderHandler) respondServiceError(w http.ResponseWriter, err error) {
	respondServiceError(w, err, h.logger)
}

func respondServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	status := apperrors.HTTPStatusOf(err)
	code := common.StandardErrorCodes.InternalError
	message := "internal error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code = string(appErr.Type)
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
		// Internal detail stays in the logs.
		message = "internal error"
	}

	common.RespondError(w, status, code, message)
}
