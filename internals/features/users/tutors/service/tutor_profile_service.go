// file: internals/features/users/tutors/service/tutor_profile_service.go
package service

import (
	"log"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lesku_backend/internals/features/users/tutors/model"
	helper "lesku_backend/internals/helpers"
	"lesku_backend/internals/helpers/domainerr"
)

type TutorProfileService struct {
	DB *gorm.DB
}

func NewTutorProfileService(db *gorm.DB) *TutorProfileService {
	return &TutorProfileService{DB: db}
}

// Upsert: satu profil per user, pengisian ulang menimpa.
func (s *TutorProfileService) Upsert(in *model.TutorProfile) (*model.TutorProfile, error) {
	if err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tutor_profile_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tutor_profile_bio",
			"tutor_profile_subjects",
			"tutor_profile_hourly_rate",
			"tutor_profile_experience_years",
			"tutor_profile_updated_at",
		}),
	}).Create(in).Error; err != nil {
		return nil, domainerr.Persistence("menyimpan profil tutor", err)
	}
	return s.GetByUserID(in.TutorProfileUserID)
}

func (s *TutorProfileService) GetByUserID(userID uuid.UUID) (*model.TutorProfile, error) {
	var m model.TutorProfile
	if err := s.DB.First(&m, "tutor_profile_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "profil tutor tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil profil tutor", err)
	}
	return &m, nil
}

// List untuk staff menelusuri katalog tutor, filter opsional subject.
func (s *TutorProfileService) List(subject string, limit, offset int) ([]model.TutorProfile, int64, error) {
	q := s.DB.Model(&model.TutorProfile{})
	if subject != "" {
		q = q.Where("? = ANY(tutor_profile_subjects)", subject)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung profil tutor", err)
	}
	var rows []model.TutorProfile
	if err := q.
		Order("tutor_profile_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar profil tutor", err)
	}
	return rows, total, nil
}

// AttachCertificate menyimpan berkas sertifikat (dikonversi webp) lalu
// menempelkan path-nya ke profil.
func (s *TutorProfileService) AttachCertificate(userID uuid.UUID, fh *multipart.FileHeader) (*model.TutorProfile, error) {
	if _, err := s.GetByUserID(userID); err != nil {
		return nil, err
	}

	path, err := helper.SaveImageAsWebP("certificates", fh)
	if err != nil {
		return nil, domainerr.Wrap(domainerr.KindPersistenceFailure, "menyimpan berkas sertifikat", err)
	}

	if err := s.DB.Model(&model.TutorProfile{}).
		Where("tutor_profile_user_id = ?", userID).
		Update("tutor_profile_certificate_url", path).Error; err != nil {
		return nil, domainerr.Persistence("memperbarui sertifikat", err)
	}
	log.Printf("[TUTOR_PROFILE] certificate attached user=%s path=%s", userID, path)
	return s.GetByUserID(userID)
}
