package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
)

type NotificationHandler struct {
	log                 *logrus.Logger
	notificationUsecase *usecase.NotificationUsecase
}

func NewNotificationHandler(log *logrus.Logger, notificationUsecase *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		log:                 log,
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	notifications, err := h.notificationUsecase.List(r.Context(), user.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.Success(w, http.StatusOK, "", notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification id", nil)
		return
	}

	if err := h.notificationUsecase.MarkRead(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, "Failed to mark notification read")
		return
	}

	response.Success(w, http.StatusOK, "Notification marked read", nil)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.notificationUsecase.MarkAllRead(r.Context(), user.ID); err != nil {
		response.InternalServerError(w, "Failed to mark notifications read")
		return
	}

	response.Success(w, http.StatusOK, "All notifications marked read", nil)
}
