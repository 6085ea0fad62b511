package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrInvalidDateOfBirth     = errors.New("date_of_birth must be a YYYY-MM-DD date")
	ErrInvalidConsultationFee = errors.New("consultation_fee must be a decimal number")
)

type ProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	appointmentRepo    repository.AppointmentRepository
	audit              *service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	audit *service.AuditService,
) *ProfileUsecase {
	return &ProfileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		appointmentRepo:    appointmentRepo,
		audit:              audit,
	}
}

// UpdateUser edits the shared account fields (name, phone, avatar).
func (u *ProfileUsecase) UpdateUser(ctx context.Context, actor *entity.User, request *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if request.FirstName != "" {
		actor.FirstName = request.FirstName
	}
	if request.LastName != "" {
		actor.LastName = request.LastName
	}
	if request.Phone != "" {
		actor.Phone = request.Phone
	}
	if request.AvatarURL != "" {
		actor.AvatarURL = request.AvatarURL
	}

	if err := u.userRepo.Update(u.db, actor); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	u.audit.Record(&actor.ID, entity.AuditActionProfileUpdate, nil)
	return converter.UserToResponse(actor), nil
}

func (u *ProfileUsecase) GetPatientProfile(ctx context.Context, actor *entity.User) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to load patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.PatientProfileToResponse(profile), nil
}

func (u *ProfileUsecase) UpdatePatientProfile(ctx context.Context, actor *entity.User, request *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to load patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if request.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", request.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateOfBirth
		}
		profile.DateOfBirth = &parsed
	}
	if request.Gender != "" {
		profile.Gender = request.Gender
	}
	if request.BloodType != "" {
		profile.BloodType = request.BloodType
	}
	if request.Allergies != nil {
		profile.Allergies = entity.StringList(request.Allergies)
	}
	if request.ChronicConditions != nil {
		profile.ChronicConditions = entity.StringList(request.ChronicConditions)
	}
	if request.EmergencyContactName != "" {
		profile.EmergencyContactName = request.EmergencyContactName
	}
	if request.EmergencyContactPhone != "" {
		profile.EmergencyContactPhone = request.EmergencyContactPhone
	}
	if request.Address != "" {
		profile.Address = request.Address
	}
	if request.InsuranceProvider != "" {
		profile.InsuranceProvider = request.InsuranceProvider
	}
	if request.InsuranceNumber != "" {
		profile.InsuranceNumber = request.InsuranceNumber
	}

	if err := u.patientProfileRepo.Update(u.db, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	u.audit.Record(&actor.ID, entity.AuditActionProfileUpdate, entity.JSON{"profile": "patient"})
	return converter.PatientProfileToResponse(profile), nil
}

func (u *ProfileUsecase) GetDoctorProfile(ctx context.Context, actor *entity.User) (*dto.DoctorProfileResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateDoctorProfile edits professional details. Verification status is
// admin-only and never touched here.
func (u *ProfileUsecase) UpdateDoctorProfile(ctx context.Context, actor *entity.User, request *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if request.Specialization != "" {
		profile.Specialization = request.Specialization
	}
	if request.LicenseNumber != "" {
		profile.LicenseNumber = request.LicenseNumber
	}
	if request.ExperienceYears != nil {
		profile.ExperienceYears = *request.ExperienceYears
	}
	if request.Bio != "" {
		profile.Bio = request.Bio
	}
	if request.ConsultationFee != nil {
		fee, err := decimal.NewFromString(*request.ConsultationFee)
		if err != nil {
			return nil, ErrInvalidConsultationFee
		}
		profile.ConsultationFee = fee
	}
	if request.AvailableDays != nil {
		profile.AvailableDays = entity.StringList(request.AvailableDays)
	}
	if request.AvailableHoursStart != "" {
		profile.AvailableHoursStart = request.AvailableHoursStart
	}
	if request.AvailableHoursEnd != "" {
		profile.AvailableHoursEnd = request.AvailableHoursEnd
	}

	if err := u.doctorProfileRepo.Update(u.db, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	u.audit.Record(&actor.ID, entity.AuditActionProfileUpdate, entity.JSON{"profile": "doctor"})
	return converter.DoctorProfileToResponse(profile), nil
}

// ListDoctorPatients lists distinct patients the doctor has appointments
// with.
func (u *ProfileUsecase) ListDoctorPatients(ctx context.Context, doctor *entity.User) (*dto.PatientListResponse, error) {
	patients, err := u.appointmentRepo.FindPatientsByDoctorID(u.db, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return &dto.PatientListResponse{
		Patients: converter.UsersToResponses(patients),
		Total:    len(patients),
	}, nil
}
