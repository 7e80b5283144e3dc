// file: internals/features/users/tutors/model/tutor_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TutorProfile melengkapi akun user berperan tutor. Satu profil per user.
type TutorProfile struct {
	TutorProfileID uuid.UUID `json:"tutor_profile_id" gorm:"column:tutor_profile_id;type:uuid;primaryKey"`

	TutorProfileUserID uuid.UUID `json:"tutor_profile_user_id" gorm:"column:tutor_profile_user_id;type:uuid;not null;uniqueIndex:ux_tutor_profiles_user"`

	TutorProfileBio             string         `json:"tutor_profile_bio" gorm:"column:tutor_profile_bio;type:text"`
	TutorProfileSubjects        pq.StringArray `json:"tutor_profile_subjects,omitempty" gorm:"column:tutor_profile_subjects;type:text[]"`
	TutorProfileHourlyRate      float64        `json:"tutor_profile_hourly_rate" gorm:"column:tutor_profile_hourly_rate;type:numeric(14,2);not null;default:0"`
	TutorProfileExperienceYears int            `json:"tutor_profile_experience_years" gorm:"column:tutor_profile_experience_years;not null;default:0"`

	// Path relatif sertifikat hasil konversi webp.
	TutorProfileCertificateURL *string `json:"tutor_profile_certificate_url,omitempty" gorm:"column:tutor_profile_certificate_url;type:text"`

	TutorProfileCreatedAt time.Time `json:"tutor_profile_created_at" gorm:"column:tutor_profile_created_at;not null;autoCreateTime"`
	TutorProfileUpdatedAt time.Time `json:"tutor_profile_updated_at" gorm:"column:tutor_profile_updated_at;not null;autoUpdateTime"`
}

func (TutorProfile) TableName() string { return "tutor_profiles" }

func (m *TutorProfile) BeforeCreate(tx *gorm.DB) error {
	if m.TutorProfileID == uuid.Nil {
		m.TutorProfileID = uuid.New()
	}
	return nil
}
