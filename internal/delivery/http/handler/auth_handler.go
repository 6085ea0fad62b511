package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/session"
	"mediconnect/pkg/validator"
)

type AuthHandler struct {
	log         *logrus.Logger
	authUsecase *usecase.AuthUsecase
	validator   *validator.CustomValidator
	cookies     *session.CookieManager
}

func NewAuthHandler(log *logrus.Logger, authUsecase *usecase.AuthUsecase, validator *validator.CustomValidator, cookies *session.CookieManager) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authUsecase: authUsecase,
		validator:   validator,
		cookies:     cookies,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, token, err := h.authUsecase.Register(r.Context(), &request)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			response.Conflict(w, "Email already registered")
			return
		}
		response.InternalServerError(w, "Failed to register")
		return
	}

	h.cookies.Set(w, token)
	response.Success(w, http.StatusCreated, "Registered successfully", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, usecase.ErrAccountDeactivated):
			response.Unauthorized(w, "Account is deactivated")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.cookies.Set(w, token)
	response.Success(w, http.StatusOK, "Logged in successfully", user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	if err := h.authUsecase.Logout(r.Context(), user.ID, sessionID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	h.cookies.Clear(w)
	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated user with their role profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	response.Success(w, http.StatusOK, "", converter.UserToResponse(user))
}
