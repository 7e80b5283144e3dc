// file: internals/features/classes/tutor_applications/service/tutor_application_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "lesku_backend/internals/features/classes/class_requests/model"
	"lesku_backend/internals/features/classes/tutor_applications/model"
	"lesku_backend/internals/helpers/domainerr"
)

type TutorApplicationService struct {
	DB *gorm.DB
}

func NewTutorApplicationService(db *gorm.DB) *TutorApplicationService {
	return &TutorApplicationService{DB: db}
}

// Submit mendaftarkan lamaran tutor pada kelas berstatus approved.
// Satu tutor satu lamaran per kelas.
func (s *TutorApplicationService) Submit(app *model.TutorApplication) error {
	app.TutorApplicationStatus = model.TutorApplicationStatusPending

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cls classModel.ClassRequest
		if err := tx.First(&cls, "class_request_id = ?", app.TutorApplicationClassID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domainerr.New(domainerr.KindNotFound, "kelas tidak ditemukan")
			}
			return domainerr.Persistence("mengambil kelas", err)
		}
		if cls.ClassRequestStatus != classModel.ClassRequestStatusApproved {
			return domainerr.New(domainerr.KindInvalidStateTransition,
				"lamaran hanya dapat diajukan pada kelas berstatus approved")
		}

		var dup int64
		if err := tx.Model(&model.TutorApplication{}).
			Where("tutor_application_tutor_id = ? AND tutor_application_class_id = ?",
				app.TutorApplicationTutorID, app.TutorApplicationClassID).
			Count(&dup).Error; err != nil {
			return domainerr.Persistence("memeriksa lamaran ganda", err)
		}
		if dup > 0 {
			return domainerr.New(domainerr.KindInvalidStateTransition,
				"tutor sudah pernah melamar pada kelas ini")
		}

		if err := tx.Create(app).Error; err != nil {
			return domainerr.Persistence("menyimpan lamaran", err)
		}
		log.Printf("[TUTOR_APPLICATION] submitted id=%s tutor=%s class=%s",
			app.TutorApplicationID, app.TutorApplicationTutorID, app.TutorApplicationClassID)
		return nil
	})
}

func (s *TutorApplicationService) GetByID(id uuid.UUID) (*model.TutorApplication, error) {
	var m model.TutorApplication
	if err := s.DB.First(&m, "tutor_application_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "lamaran tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil lamaran", err)
	}
	return &m, nil
}

// ListByClass untuk staff meninjau pelamar satu kelas.
func (s *TutorApplicationService) ListByClass(classID uuid.UUID, limit, offset int) ([]model.TutorApplication, int64, error) {
	return s.list(s.DB.Where("tutor_application_class_id = ?", classID), limit, offset)
}

// ListByTutor untuk tutor melihat lamaran miliknya.
func (s *TutorApplicationService) ListByTutor(tutorID uuid.UUID, limit, offset int) ([]model.TutorApplication, int64, error) {
	return s.list(s.DB.Where("tutor_application_tutor_id = ?", tutorID), limit, offset)
}

func (s *TutorApplicationService) list(q *gorm.DB, limit, offset int) ([]model.TutorApplication, int64, error) {
	var total int64
	if err := q.Model(&model.TutorApplication{}).Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung lamaran", err)
	}
	var rows []model.TutorApplication
	if err := q.
		Order("tutor_application_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar lamaran", err)
	}
	return rows, total, nil
}

// Approve: pending → approved. Kelasnya harus masih approved atau matched.
func (s *TutorApplicationService) Approve(id uuid.UUID) (*model.TutorApplication, error) {
	var out *model.TutorApplication
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		app, err := s.getForUpdate(tx, id)
		if err != nil {
			return err
		}
		var cls classModel.ClassRequest
		if err := tx.First(&cls, "class_request_id = ?", app.TutorApplicationClassID).Error; err != nil {
			return domainerr.Persistence("mengambil kelas lamaran", err)
		}
		if cls.ClassRequestStatus != classModel.ClassRequestStatusApproved &&
			cls.ClassRequestStatus != classModel.ClassRequestStatusMatched {
			return domainerr.New(domainerr.KindInvalidStateTransition,
				"kelas tidak lagi menerima persetujuan lamaran")
		}
		out, err = s.transition(tx, id, model.TutorApplicationStatusApproved, model.TutorApplicationStatusPending)
		return err
	})
	return out, err
}

// Reject: pending → rejected.
func (s *TutorApplicationService) Reject(id uuid.UUID) (*model.TutorApplication, error) {
	var out *model.TutorApplication
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = s.transition(tx, id, model.TutorApplicationStatusRejected, model.TutorApplicationStatusPending)
		return err
	})
	return out, err
}

func (s *TutorApplicationService) getForUpdate(tx *gorm.DB, id uuid.UUID) (*model.TutorApplication, error) {
	var m model.TutorApplication
	if err := tx.First(&m, "tutor_application_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "lamaran tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil lamaran", err)
	}
	return &m, nil
}

func (s *TutorApplicationService) transition(tx *gorm.DB, id uuid.UUID, to, from model.TutorApplicationStatus) (*model.TutorApplication, error) {
	res := tx.Model(&model.TutorApplication{}).
		Where("tutor_application_id = ? AND tutor_application_status = ?", id, from).
		Update("tutor_application_status", to)
	if res.Error != nil {
		return nil, domainerr.Persistence("memperbarui status lamaran", res.Error)
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := tx.Model(&model.TutorApplication{}).
			Where("tutor_application_id = ?", id).Count(&exists).Error; err != nil {
			return nil, domainerr.Persistence("memeriksa lamaran", err)
		}
		if exists == 0 {
			return nil, domainerr.New(domainerr.KindNotFound, "lamaran tidak ditemukan")
		}
		return nil, domainerr.New(domainerr.KindInvalidStateTransition,
			"status lamaran tidak mengizinkan transisi ini")
	}
	log.Printf("[TUTOR_APPLICATION] transition id=%s to=%s", id, to)
	var m model.TutorApplication
	if err := tx.First(&m, "tutor_application_id = ?", id).Error; err != nil {
		return nil, domainerr.Persistence("mengambil lamaran", err)
	}
	return &m, nil
}
