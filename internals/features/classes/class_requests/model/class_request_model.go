// file: internals/features/classes/class_requests/model/class_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM class_level --------------------------------------------------------
type ClassLevel string

const (
	ClassLevelPrimary    ClassLevel = "primary"
	ClassLevelSecondary  ClassLevel = "secondary"
	ClassLevelHigh       ClassLevel = "high"
	ClassLevelUniversity ClassLevel = "university"
	ClassLevelOther      ClassLevel = "other"
)

// --- ENUM class_request_status -----------------------------------------------
// pending → approved|rejected (aksi staff)
// approved → matched (saat kontrak dibuat, sekalian set selected_tutor_id)
// matched → completed (administratif)
type ClassRequestStatus string

const (
	ClassRequestStatusPending   ClassRequestStatus = "pending"
	ClassRequestStatusApproved  ClassRequestStatus = "approved"
	ClassRequestStatusRejected  ClassRequestStatus = "rejected"
	ClassRequestStatusMatched   ClassRequestStatus = "matched"
	ClassRequestStatusCompleted ClassRequestStatus = "completed"
)

// --- MODEL class_requests ----------------------------------------------------
type ClassRequest struct {
	// PK
	ClassRequestID uuid.UUID `json:"class_request_id" gorm:"column:class_request_id;type:uuid;primaryKey"`

	// Owner (customer)
	ClassRequestCustomerID uuid.UUID `json:"class_request_customer_id" gorm:"column:class_request_customer_id;type:uuid;not null;index:idx_class_requests_customer_status,priority:1"`

	// Kebutuhan les
	ClassRequestSubject string     `json:"class_request_subject" gorm:"column:class_request_subject;type:varchar(120);not null"`
	ClassRequestLevel   ClassLevel `json:"class_request_level" gorm:"column:class_request_level;type:varchar(20);not null"`

	// Lokasi (city/district/address) sebagai JSON
	ClassRequestLocation datatypes.JSON `json:"class_request_location,omitempty" gorm:"column:class_request_location;type:jsonb"`

	// Jadwal bebas teks
	ClassRequestSchedule string `json:"class_request_schedule" gorm:"column:class_request_schedule;type:text"`

	// Persyaratan
	ClassRequestTutorRequirements   pq.StringArray `json:"class_request_tutor_requirements,omitempty" gorm:"column:class_request_tutor_requirements;type:text[]"`
	ClassRequestSpecialRequirements *string        `json:"class_request_special_requirements,omitempty" gorm:"column:class_request_special_requirements;type:text"`

	// Status + tutor terpilih
	// Invariant: selected_tutor_id terisi ⇔ status ∈ {matched, completed}
	ClassRequestStatus          ClassRequestStatus `json:"class_request_status" gorm:"column:class_request_status;type:varchar(20);not null;default:'pending';index:idx_class_requests_customer_status,priority:2"`
	ClassRequestSelectedTutorID *uuid.UUID         `json:"class_request_selected_tutor_id,omitempty" gorm:"column:class_request_selected_tutor_id;type:uuid"`

	// Timestamps
	ClassRequestCreatedAt time.Time `json:"class_request_created_at" gorm:"column:class_request_created_at;not null;autoCreateTime"`
	ClassRequestUpdatedAt time.Time `json:"class_request_updated_at" gorm:"column:class_request_updated_at;not null;autoUpdateTime"`
}

func (ClassRequest) TableName() string { return "class_requests" }

func (m *ClassRequest) BeforeCreate(tx *gorm.DB) error {
	if m.ClassRequestID == uuid.Nil {
		m.ClassRequestID = uuid.New()
	}
	return nil
}
