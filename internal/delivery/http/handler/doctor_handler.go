package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"mediconnect/internal/domain/entity"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
)

// DoctorHandler serves the public doctor directory. No authentication
// is required to browse it.
type DoctorHandler struct {
	log           *logrus.Logger
	doctorUsecase *usecase.DoctorUsecase
}

func NewDoctorHandler(log *logrus.Logger, doctorUsecase *usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		log:           log,
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := entity.DoctorFilter{
		Specialization: r.URL.Query().Get("specialization"),
		Search:         r.URL.Query().Get("search"),
	}

	doctors, err := h.doctorUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to load doctor")
		return
	}

	response.Success(w, http.StatusOK, "", doctor)
}
