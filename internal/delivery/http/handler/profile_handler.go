package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"
)

type ProfileHandler struct {
	log            *logrus.Logger
	profileUsecase *usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(log *logrus.Logger, profileUsecase *usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		log:            log,
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var request dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.profileUsecase.UpdateUser(r.Context(), user, &request)
	if err != nil {
		response.InternalServerError(w, "Failed to update account")
		return
	}

	response.Success(w, http.StatusOK, "Account updated", updated)
}

func (h *ProfileHandler) GetPatientProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	profile, err := h.profileUsecase.GetPatientProfile(r.Context(), user)
	if err != nil {
		h.writeProfileError(w, err, "Failed to load profile")
		return
	}

	response.Success(w, http.StatusOK, "", profile)
}

func (h *ProfileHandler) UpdatePatientProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var request dto.UpdatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdatePatientProfile(r.Context(), user, &request)
	if err != nil {
		h.writeProfileError(w, err, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated", profile)
}

func (h *ProfileHandler) GetDoctorProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	profile, err := h.profileUsecase.GetDoctorProfile(r.Context(), user)
	if err != nil {
		h.writeProfileError(w, err, "Failed to load profile")
		return
	}

	response.Success(w, http.StatusOK, "", profile)
}

func (h *ProfileHandler) UpdateDoctorProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var request dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateDoctorProfile(r.Context(), user, &request)
	if err != nil {
		h.writeProfileError(w, err, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated", profile)
}

// ListPatients returns the doctor's patient roster, built from their
// appointment history.
func (h *ProfileHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patients, err := h.profileUsecase.ListDoctorPatients(r.Context(), user)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "", patients)
}

func (h *ProfileHandler) writeProfileError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		response.NotFound(w, "Profile not found")
	case errors.Is(err, usecase.ErrInvalidDateOfBirth):
		response.Error(w, http.StatusBadRequest, "date_of_birth must be a YYYY-MM-DD date", nil)
	case errors.Is(err, usecase.ErrInvalidConsultationFee):
		response.Error(w, http.StatusBadRequest, "consultation_fee must be a decimal number", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
