package repository

import (
	"errors"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalReportRepository struct{}

func NewMedicalReportRepository() domainRepo.MedicalReportRepository {
	return &medicalReportRepository{}
}

func (r *medicalReportRepository) Create(db *gorm.DB, report *entity.MedicalReport) error {
	return db.Create(report).Error
}

func (r *medicalReportRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalReport, error) {
	var report entity.MedicalReport
	err := db.Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *medicalReportRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error) {
	var reports []entity.MedicalReport
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *medicalReportRepository) FindSharedWithDoctor(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.MedicalReport, error) {
	query := db.Preload("Patient").Where("shared_with_doctor_id = ?", doctorID)
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}

	var reports []entity.MedicalReport
	err := query.Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *medicalReportRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.MedicalReport{}, "id = ?", id).Error
}
