package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"
)

type PaymentHandler struct {
	log            *logrus.Logger
	paymentUsecase *usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(log *logrus.Logger, paymentUsecase *usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		log:            log,
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	payments, err := h.paymentUsecase.List(r.Context(), user)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentForbidden) {
			response.Forbidden(w, "")
			return
		}
		response.InternalServerError(w, "Failed to list payments")
		return
	}

	response.Success(w, http.StatusOK, "", payments)
}

func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment id", nil)
		return
	}

	var request dto.SettlePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Settle(r.Context(), user, id, request.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPaymentNotFound):
			response.NotFound(w, "Payment not found")
		case errors.Is(err, usecase.ErrPaymentForbidden):
			response.Forbidden(w, "Not allowed to settle this payment")
		case errors.Is(err, usecase.ErrPaymentNotPending):
			response.Conflict(w, "Payment is not pending")
		default:
			response.InternalServerError(w, "Failed to settle payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment settled", payment)
}
