package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
)

// DoctorUsecase backs the public doctor directory. Only active, verified
// doctors are listed.
type DoctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, doctorProfileRepo repository.DoctorProfileRepository) *DoctorUsecase {
	return &DoctorUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
	}
}

func (u *DoctorUsecase) List(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorProfileRepo.FindDirectory(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.UsersToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *DoctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	doctor, err := u.userRepo.FindActiveByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to load doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() || doctor.DoctorProfile == nil || !doctor.DoctorProfile.IsVerified {
		return nil, ErrDoctorNotFound
	}
	return converter.UserToResponse(doctor), nil
}
