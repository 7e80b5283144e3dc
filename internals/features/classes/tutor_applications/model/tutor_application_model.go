// file: internals/features/classes/tutor_applications/model/tutor_application_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM tutor_application_status -------------------------------------------
// pending → approved|rejected (review staff)
// approved → selected (saat kontrak terbit; lamaran lain di kelas yang sama
// otomatis rejected)
type TutorApplicationStatus string

const (
	TutorApplicationStatusPending  TutorApplicationStatus = "pending"
	TutorApplicationStatusApproved TutorApplicationStatus = "approved"
	TutorApplicationStatusRejected TutorApplicationStatus = "rejected"
	TutorApplicationStatusSelected TutorApplicationStatus = "selected"
)

// --- MODEL tutor_applications ------------------------------------------------
// Satu tutor hanya boleh melamar sekali per kelas (unik komposit).
type TutorApplication struct {
	TutorApplicationID uuid.UUID `json:"tutor_application_id" gorm:"column:tutor_application_id;type:uuid;primaryKey"`

	TutorApplicationTutorID uuid.UUID `json:"tutor_application_tutor_id" gorm:"column:tutor_application_tutor_id;type:uuid;not null;uniqueIndex:ux_tutor_applications_tutor_class,priority:1"`
	TutorApplicationClassID uuid.UUID `json:"tutor_application_class_id" gorm:"column:tutor_application_class_id;type:uuid;not null;uniqueIndex:ux_tutor_applications_tutor_class,priority:2;index:idx_tutor_applications_class_status,priority:1"`

	// Penawaran tutor
	TutorApplicationMessage      string  `json:"tutor_application_message" gorm:"column:tutor_application_message;type:text"`
	TutorApplicationProposedRate float64 `json:"tutor_application_proposed_rate" gorm:"column:tutor_application_proposed_rate;type:numeric(14,2);not null"`

	TutorApplicationStatus TutorApplicationStatus `json:"tutor_application_status" gorm:"column:tutor_application_status;type:varchar(20);not null;default:'pending';index:idx_tutor_applications_class_status,priority:2"`

	TutorApplicationCreatedAt time.Time `json:"tutor_application_created_at" gorm:"column:tutor_application_created_at;not null;autoCreateTime"`
	TutorApplicationUpdatedAt time.Time `json:"tutor_application_updated_at" gorm:"column:tutor_application_updated_at;not null;autoUpdateTime"`
}

func (TutorApplication) TableName() string { return "tutor_applications" }

func (m *TutorApplication) BeforeCreate(tx *gorm.DB) error {
	if m.TutorApplicationID == uuid.Nil {
		m.TutorApplicationID = uuid.New()
	}
	return nil
}
