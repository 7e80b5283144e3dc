// file: internals/features/users/tutors/dto/tutor_profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"lesku_backend/internals/features/users/tutors/model"
)

type UpsertTutorProfileRequest struct {
	Bio             string   `json:"bio" validate:"omitempty,max=4000"`
	Subjects        []string `json:"subjects" validate:"omitempty,dive,min=1"`
	HourlyRate      float64  `json:"hourly_rate" validate:"gte=0"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0,lte=80"`
}

type TutorProfileResponse struct {
	TutorProfileID  uuid.UUID `json:"tutor_profile_id"`
	UserID          uuid.UUID `json:"user_id"`
	Bio             string    `json:"bio,omitempty"`
	Subjects        []string  `json:"subjects,omitempty"`
	HourlyRate      float64   `json:"hourly_rate"`
	ExperienceYears int       `json:"experience_years"`
	CertificateURL  *string   `json:"certificate_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToTutorProfileResponse(m *model.TutorProfile) TutorProfileResponse {
	return TutorProfileResponse{
		TutorProfileID:  m.TutorProfileID,
		UserID:          m.TutorProfileUserID,
		Bio:             m.TutorProfileBio,
		Subjects:        m.TutorProfileSubjects,
		HourlyRate:      m.TutorProfileHourlyRate,
		ExperienceYears: m.TutorProfileExperienceYears,
		CertificateURL:  m.TutorProfileCertificateURL,
		CreatedAt:       m.TutorProfileCreatedAt,
		UpdatedAt:       m.TutorProfileUpdatedAt,
	}
}

func ToTutorProfileResponses(list []model.TutorProfile) []TutorProfileResponse {
	out := make([]TutorProfileResponse, 0, len(list))
	for i := range list {
		out = append(out, ToTutorProfileResponse(&list[i]))
	}
	return out
}
