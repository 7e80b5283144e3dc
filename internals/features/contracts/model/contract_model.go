// file: internals/features/contracts/model/contract_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM contract_status ----------------------------------------------------
// active → completed | cancelled (keduanya terminal)
type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// --- MODEL contracts ---------------------------------------------------------
// Satu kontrak per kelas: kelas hanya sekali berpindah approved → matched,
// dan kontrak lahir pada transisi itu.
type Contract struct {
	ContractID uuid.UUID `json:"contract_id" gorm:"column:contract_id;type:uuid;primaryKey"`

	ContractClassID    uuid.UUID `json:"contract_class_id" gorm:"column:contract_class_id;type:uuid;not null;uniqueIndex:ux_contracts_class"`
	ContractCustomerID uuid.UUID `json:"contract_customer_id" gorm:"column:contract_customer_id;type:uuid;not null;index:idx_contracts_customer"`
	ContractTutorID    uuid.UUID `json:"contract_tutor_id" gorm:"column:contract_tutor_id;type:uuid;not null;index:idx_contracts_tutor"`

	// Nilai kesepakatan les (per bulan) dan fee broker yang dicatat saat terbit.
	ContractAmount float64 `json:"contract_amount" gorm:"column:contract_amount;type:numeric(14,2);not null"`
	ContractFee    float64 `json:"contract_fee" gorm:"column:contract_fee;type:numeric(14,2);not null;default:0"`

	ContractStartDate time.Time  `json:"contract_start_date" gorm:"column:contract_start_date;not null"`
	ContractEndDate   *time.Time `json:"contract_end_date,omitempty" gorm:"column:contract_end_date"`

	ContractStatus ContractStatus `json:"contract_status" gorm:"column:contract_status;type:varchar(20);not null;default:'active';index:idx_contracts_status"`
	ContractNotes  *string        `json:"contract_notes,omitempty" gorm:"column:contract_notes;type:text"`

	ContractCreatedAt time.Time `json:"contract_created_at" gorm:"column:contract_created_at;not null;autoCreateTime"`
	ContractUpdatedAt time.Time `json:"contract_updated_at" gorm:"column:contract_updated_at;not null;autoUpdateTime"`
}

func (Contract) TableName() string { return "contracts" }

func (m *Contract) BeforeCreate(tx *gorm.DB) error {
	if m.ContractID == uuid.Nil {
		m.ContractID = uuid.New()
	}
	return nil
}
