package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

func newReportFixture() (*MedicalReportUsecase, *mockMedicalReportRepo, *mockUserRepo) {
	reports := &mockMedicalReportRepo{}
	users := &mockUserRepo{}
	uc := NewMedicalReportUsecase(nil, testLogger(), reports, users)
	return uc, reports, users
}

func TestCreateReportBadDate(t *testing.T) {
	uc, _, _ := newReportFixture()

	_, err := uc.Create(context.Background(), patientUser(), &dto.CreateMedicalReportRequest{
		Title:      "Blood work",
		FileURL:    "https://files.example.com/report.pdf",
		ReportDate: "yesterday",
	})
	assert.ErrorIs(t, err, ErrInvalidReportDate)
}

func TestCreateReportSharedWithNonDoctor(t *testing.T) {
	uc, _, users := newReportFixture()
	other := patientUser()
	users.findActiveByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
		return other, nil
	}

	_, err := uc.Create(context.Background(), patientUser(), &dto.CreateMedicalReportRequest{
		Title:              "Blood work",
		FileURL:            "https://files.example.com/report.pdf",
		SharedWithDoctorID: &other.ID,
	})
	assert.ErrorIs(t, err, ErrShareTargetInvalid)
}

func TestCreateReportDefaultsType(t *testing.T) {
	uc, _, _ := newReportFixture()

	resp, err := uc.Create(context.Background(), patientUser(), &dto.CreateMedicalReportRequest{
		Title:   "Blood work",
		FileURL: "https://files.example.com/report.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReportTypeOther, resp.ReportType)
	assert.False(t, resp.ReportDate.IsZero())
}

func TestDeleteForeignReport(t *testing.T) {
	uc, reports, _ := newReportFixture()
	report := &entity.MedicalReport{
		ID:        uuid.New(),
		PatientID: uuid.New(),
	}
	reports.findByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.MedicalReport, error) {
		return report, nil
	}

	err := uc.Delete(context.Background(), patientUser(), report.ID)
	assert.ErrorIs(t, err, ErrReportForbidden)
}

func TestDeleteReportAsAdmin(t *testing.T) {
	uc, reports, _ := newReportFixture()
	report := &entity.MedicalReport{
		ID:        uuid.New(),
		PatientID: uuid.New(),
	}
	reports.findByIDFn = func(db *gorm.DB, id uuid.UUID) (*entity.MedicalReport, error) {
		return report, nil
	}
	deleted := false
	reports.deleteFn = func(db *gorm.DB, id uuid.UUID) error {
		deleted = true
		return nil
	}

	err := uc.Delete(context.Background(), adminUser(), report.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestListReportsDoctorSeesShared(t *testing.T) {
	uc, reports, _ := newReportFixture()
	doctor := doctorUser()

	var queriedDoctorID uuid.UUID
	reports.findSharedWithDoctorFn = func(db *gorm.DB, doctorID uuid.UUID, patientID *uuid.UUID) ([]entity.MedicalReport, error) {
		queriedDoctorID = doctorID
		return nil, nil
	}

	_, err := uc.List(context.Background(), doctor, nil)
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, queriedDoctorID)
}

func TestListReportsAsAdmin(t *testing.T) {
	uc, _, _ := newReportFixture()

	_, err := uc.List(context.Background(), adminUser(), nil)
	assert.ErrorIs(t, err, ErrReportForbidden)
}
