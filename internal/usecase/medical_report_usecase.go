package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
)

var (
	ErrReportNotFound     = errors.New("medical report not found")
	ErrReportForbidden    = errors.New("not allowed to act on this report")
	ErrInvalidReportDate  = errors.New("report_date must be a YYYY-MM-DD date")
	ErrShareTargetInvalid = errors.New("shared_with_doctor_id must reference a doctor")
)

type MedicalReportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.MedicalReportRepository
	userRepo   repository.UserRepository
}

func NewMedicalReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.MedicalReportRepository,
	userRepo repository.UserRepository,
) *MedicalReportUsecase {
	return &MedicalReportUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// Create stores report metadata for the calling patient. Only the file
// URL is kept; blob transport is out of scope here.
func (u *MedicalReportUsecase) Create(ctx context.Context, patient *entity.User, request *dto.CreateMedicalReportRequest) (*dto.MedicalReportResponse, error) {
	reportDate := time.Now()
	if request.ReportDate != "" {
		parsed, err := time.Parse("2006-01-02", request.ReportDate)
		if err != nil {
			return nil, ErrInvalidReportDate
		}
		reportDate = parsed
	}

	reportType := request.ReportType
	if reportType == "" {
		reportType = entity.ReportTypeOther
	}

	if request.SharedWithDoctorID != nil {
		doctor, err := u.userRepo.FindActiveByID(u.db, *request.SharedWithDoctorID)
		if err != nil {
			u.log.Warnf("Failed to load doctor: %+v", err)
			return nil, err
		}
		if doctor == nil || !doctor.IsDoctor() {
			return nil, ErrShareTargetInvalid
		}
	}

	report := &entity.MedicalReport{
		PatientID:          patient.ID,
		UploadedBy:         patient.ID,
		Title:              request.Title,
		Description:        request.Description,
		ReportType:         reportType,
		FileURL:            request.FileURL,
		FileName:           request.FileName,
		FileSize:           request.FileSize,
		ReportDate:         reportDate,
		SharedWithDoctorID: request.SharedWithDoctorID,
	}

	if err := u.reportRepo.Create(u.db, report); err != nil {
		u.log.Warnf("Failed to create medical report: %+v", err)
		return nil, err
	}

	return converter.MedicalReportToResponse(report), nil
}

// List scopes by role: patients see their own reports, doctors see
// reports shared with them, optionally narrowed to one patient.
func (u *MedicalReportUsecase) List(ctx context.Context, actor *entity.User, patientID *uuid.UUID) (*dto.MedicalReportListResponse, error) {
	var (
		reports []entity.MedicalReport
		err     error
	)
	switch {
	case actor.IsPatient():
		reports, err = u.reportRepo.FindByPatientID(u.db, actor.ID)
	case actor.IsDoctor():
		reports, err = u.reportRepo.FindSharedWithDoctor(u.db, actor.ID, patientID)
	default:
		return nil, ErrReportForbidden
	}
	if err != nil {
		u.log.Warnf("Failed to list medical reports: %+v", err)
		return nil, err
	}
	return converter.MedicalReportsToListResponse(reports), nil
}

// Delete removes a report. Only the owning patient or an admin may.
func (u *MedicalReportUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	report, err := u.reportRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to load medical report: %+v", err)
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}
	if !actor.IsAdmin() && report.PatientID != actor.ID {
		return ErrReportForbidden
	}

	if err := u.reportRepo.Delete(u.db, id); err != nil {
		u.log.Warnf("Failed to delete medical report: %+v", err)
		return err
	}
	return nil
}
