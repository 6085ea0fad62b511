package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
	"mediconnect/pkg/jwt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUnauthenticated    = errors.New("authentication required")
)

const bcryptCost = 12

const uniqueViolationCode = "23505"

type AuthUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	tx                 Transactor
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	tokenService       *jwt.TokenService
	sessions           service.SessionStore
	audit              *service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	tx Transactor,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	tokenService *jwt.TokenService,
	sessions service.SessionStore,
	audit *service.AuditService,
) *AuthUsecase {
	return &AuthUsecase{
		db:                 db,
		log:                log,
		tx:                 tx,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		tokenService:       tokenService,
		sessions:           sessions,
		audit:              audit,
	}
}

// Register creates the user plus their role profile in one transaction
// and opens a session right away.
func (u *AuthUsecase) Register(ctx context.Context, request *dto.RegisterRequest) (*dto.UserResponse, string, error) {
	role := entity.RolePatient
	if request.Role == entity.RoleDoctor || request.Role == entity.RoleAdmin {
		role = request.Role
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, "", err
	}

	user := &entity.User{
		Email:     request.Email,
		Password:  string(hashed),
		Role:      role,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		IsActive:  true,
	}

	err = u.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := u.userRepo.Create(tx, user); err != nil {
			return err
		}
		switch role {
		case entity.RolePatient:
			return u.patientProfileRepo.Create(tx, &entity.PatientProfile{UserID: user.ID})
		case entity.RoleDoctor:
			return u.doctorProfileRepo.Create(tx, &entity.DoctorProfile{UserID: user.ID})
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, "", ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to register user: %+v", err)
		return nil, "", err
	}

	token, _, err := u.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	u.audit.Record(&user.ID, entity.AuditActionUserRegister, entity.JSON{"role": role})

	return converter.UserToResponse(user), token, nil
}

// Login verifies credentials and opens a session. A deactivated account
// fails even with the right password.
func (u *AuthUsecase) Login(ctx context.Context, request *dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := u.userRepo.FindByEmail(u.db, request.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", ErrAccountDeactivated
	}

	token, _, err := u.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	u.audit.Record(&user.ID, entity.AuditActionUserLogin, nil)

	return converter.UserToResponse(user), token, nil
}

// Logout revokes the session record. The token itself stays signed but
// no longer resolves.
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID, sessionID string) error {
	if err := u.sessions.Delete(ctx, userID, sessionID); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	u.audit.Record(&userID, entity.AuditActionUserLogout, nil)
	return nil
}

// Resolve turns a raw session token into the authenticated user. The
// token must verify, the session must still be live, and the user must
// still be active; every failure collapses to ErrUnauthenticated.
func (u *AuthUsecase) Resolve(ctx context.Context, token string) (*entity.User, string, error) {
	claims, err := u.tokenService.Validate(token)
	if err != nil {
		return nil, "", ErrUnauthenticated
	}

	live, err := u.sessions.Exists(ctx, claims.UserID, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to check session: %+v", err)
		return nil, "", err
	}
	if !live {
		return nil, "", ErrUnauthenticated
	}

	user, err := u.userRepo.FindActiveByID(u.db, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to load user: %+v", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUnauthenticated
	}

	return user, claims.SessionID, nil
}

func (u *AuthUsecase) openSession(ctx context.Context, userID uuid.UUID) (string, string, error) {
	token, sessionID, err := u.tokenService.Generate(userID)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", "", err
	}
	if err := u.sessions.Put(ctx, userID, sessionID, u.tokenService.GetSessionExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return "", "", err
	}
	return token, sessionID, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
