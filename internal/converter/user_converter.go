package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Role:          user.Role,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		AvatarURL:     user.AvatarURL,
		IsActive:      user.IsActive,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	if user.PatientProfile != nil {
		resp.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}
	if user.DoctorProfile != nil {
		resp.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}
	return resp
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.PatientProfileResponse{
		ID:                    profile.ID,
		UserID:                profile.UserID,
		DateOfBirth:           profile.DateOfBirth,
		Gender:                profile.Gender,
		BloodType:             profile.BloodType,
		Allergies:             profile.Allergies,
		ChronicConditions:     profile.ChronicConditions,
		EmergencyContactName:  profile.EmergencyContactName,
		EmergencyContactPhone: profile.EmergencyContactPhone,
		Address:               profile.Address,
		InsuranceProvider:     profile.InsuranceProvider,
		InsuranceNumber:       profile.InsuranceNumber,
	}
}

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.DoctorProfileResponse{
		ID:                  profile.ID,
		UserID:              profile.UserID,
		Specialization:      profile.Specialization,
		LicenseNumber:       profile.LicenseNumber,
		ExperienceYears:     profile.ExperienceYears,
		Bio:                 profile.Bio,
		ConsultationFee:     profile.ConsultationFee,
		AvailableDays:       profile.AvailableDays,
		AvailableHoursStart: profile.AvailableHoursStart,
		AvailableHoursEnd:   profile.AvailableHoursEnd,
		Rating:              profile.Rating,
		TotalReviews:        profile.TotalReviews,
		IsVerified:          profile.IsVerified,
	}
}
