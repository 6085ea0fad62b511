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

type MedicalReportHandler struct {
	log           *logrus.Logger
	reportUsecase *usecase.MedicalReportUsecase
	validator     *validator.CustomValidator
}

func NewMedicalReportHandler(log *logrus.Logger, reportUsecase *usecase.MedicalReportUsecase, validator *validator.CustomValidator) *MedicalReportHandler {
	return &MedicalReportHandler{
		log:           log,
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func (h *MedicalReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var request dto.CreateMedicalReportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&request); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.Create(r.Context(), user, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidReportDate):
			response.Error(w, http.StatusBadRequest, "report_date must be a YYYY-MM-DD date", nil)
		case errors.Is(err, usecase.ErrShareTargetInvalid):
			response.Error(w, http.StatusBadRequest, "shared_with_doctor_id must reference a doctor", nil)
		default:
			response.InternalServerError(w, "Failed to create medical report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical report created", report)
}

func (h *MedicalReportHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var patientID *uuid.UUID
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
			return
		}
		patientID = &parsed
	}

	reports, err := h.reportUsecase.List(r.Context(), user, patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrReportForbidden) {
			response.Forbidden(w, "")
			return
		}
		response.InternalServerError(w, "Failed to list medical reports")
		return
	}

	response.Success(w, http.StatusOK, "", reports)
}

func (h *MedicalReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report id", nil)
		return
	}

	if err := h.reportUsecase.Delete(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrReportNotFound):
			response.NotFound(w, "Medical report not found")
		case errors.Is(err, usecase.ErrReportForbidden):
			response.Forbidden(w, "Not allowed to delete this report")
		default:
			response.InternalServerError(w, "Failed to delete medical report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical report deleted", nil)
}
