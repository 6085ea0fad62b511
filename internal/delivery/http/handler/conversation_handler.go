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

type ConversationHandler struct {
	log                 *logrus.Logger
	conversationUsecase *usecase.ConversationUsecase
	validator           *validator.CustomValidator
}

func NewConversationHandler(log *logrus.Logger, conversationUsecase *usecase.ConversationUsecase, validator *validator.CustomValidator) *ConversationHandler {
	return &ConversationHandler{
		log:                 log,
		conversationUsecase: conversationUsecase,
		validator:           validator,
	}
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	conversations, err := h.conversationUsecase.List(r.Context(), user)
	if err != nil {
		response.InternalServerError(w, "Failed to list conversations")
		return
	}

	response.Success(w, http.StatusOK, "", conversations)
}

func (h *ConversationHandler) Start(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var request dto.StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	conversation, err := h.conversationUsecase.Start(r.Context(), user, request.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecipientNotFound):
			response.NotFound(w, "Recipient not found")
		case errors.Is(err, usecase.ErrMessagingNotAllowed):
			response.Forbidden(w, "Messaging is only available between patients and doctors")
		default:
			response.InternalServerError(w, "Failed to start conversation")
		}
		return
	}

	response.Success(w, http.StatusOK, "", conversation)
}

func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	conversationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation id", nil)
		return
	}

	messages, err := h.conversationUsecase.Messages(r.Context(), user, conversationID)
	if err != nil {
		h.writeConversationError(w, err, "Failed to list messages")
		return
	}

	response.Success(w, http.StatusOK, "", messages)
}

func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	conversationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid conversation id", nil)
		return
	}

	var request dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.conversationUsecase.Send(r.Context(), user, conversationID, &request)
	if err != nil {
		h.writeConversationError(w, err, "Failed to send message")
		return
	}

	response.Success(w, http.StatusCreated, "Message sent", message)
}

func (h *ConversationHandler) writeConversationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrConversationNotFound):
		response.NotFound(w, "Conversation not found")
	case errors.Is(err, usecase.ErrNotParticipant):
		response.Forbidden(w, "Not a participant of this conversation")
	default:
		response.InternalServerError(w, fallback)
	}
}
