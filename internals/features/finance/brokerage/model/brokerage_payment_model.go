// file: internals/features/finance/brokerage/model/brokerage_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM brokerage_payment_status -------------------------------------------
type BrokeragePaymentStatus string

const (
	BrokeragePaymentStatusPending BrokeragePaymentStatus = "pending"
	BrokeragePaymentStatusPaid    BrokeragePaymentStatus = "paid"
	BrokeragePaymentStatusOverdue BrokeragePaymentStatus = "overdue"
	BrokeragePaymentStatusWaived  BrokeragePaymentStatus = "waived"
)

// --- MODEL brokerage_payments ------------------------------------------------
// Tagihan fee broker kepada tutor. Maksimal satu per pasangan (kelas, tutor) —
// dijaga unik komposit. Persen fee dan hasil hitungnya disalin dari kebijakan
// aktif saat tagihan dibuat agar perubahan kebijakan tidak mengubah tagihan
// lama; actual_fee boleh dikoreksi staff tanpa menyentuh calculated_fee.
type BrokeragePayment struct {
	BrokeragePaymentID uuid.UUID `json:"brokerage_payment_id" gorm:"column:brokerage_payment_id;type:uuid;primaryKey"`

	BrokeragePaymentClassID    uuid.UUID  `json:"brokerage_payment_class_id" gorm:"column:brokerage_payment_class_id;type:uuid;not null;uniqueIndex:ux_brokerage_payments_class_tutor,priority:1"`
	BrokeragePaymentTutorID    uuid.UUID  `json:"brokerage_payment_tutor_id" gorm:"column:brokerage_payment_tutor_id;type:uuid;not null;uniqueIndex:ux_brokerage_payments_class_tutor,priority:2;index:idx_brokerage_payments_tutor"`
	BrokeragePaymentContractID *uuid.UUID `json:"brokerage_payment_contract_id,omitempty" gorm:"column:brokerage_payment_contract_id;type:uuid"`

	// Dasar perhitungan
	BrokeragePaymentContractAmount float64 `json:"brokerage_payment_contract_amount" gorm:"column:brokerage_payment_contract_amount;type:numeric(14,2);not null"`
	BrokeragePaymentFeePercentage  float64 `json:"brokerage_payment_fee_percentage" gorm:"column:brokerage_payment_fee_percentage;type:numeric(5,2);not null"`
	BrokeragePaymentCalculatedFee  float64 `json:"brokerage_payment_calculated_fee" gorm:"column:brokerage_payment_calculated_fee;type:numeric(14,2);not null"`
	BrokeragePaymentActualFee      float64 `json:"brokerage_payment_actual_fee" gorm:"column:brokerage_payment_actual_fee;type:numeric(14,2);not null"`

	BrokeragePaymentStatus   BrokeragePaymentStatus `json:"brokerage_payment_status" gorm:"column:brokerage_payment_status;type:varchar(20);not null;default:'pending';index:idx_brokerage_payments_status"`
	BrokeragePaymentDueDate  *time.Time             `json:"brokerage_payment_due_date,omitempty" gorm:"column:brokerage_payment_due_date"`
	BrokeragePaymentPaidDate *time.Time             `json:"brokerage_payment_paid_date,omitempty" gorm:"column:brokerage_payment_paid_date"`
	BrokeragePaymentNotes    *string                `json:"brokerage_payment_notes,omitempty" gorm:"column:brokerage_payment_notes;type:text"`

	BrokeragePaymentCreatedAt time.Time `json:"brokerage_payment_created_at" gorm:"column:brokerage_payment_created_at;not null;autoCreateTime"`
	BrokeragePaymentUpdatedAt time.Time `json:"brokerage_payment_updated_at" gorm:"column:brokerage_payment_updated_at;not null;autoUpdateTime"`
}

func (BrokeragePayment) TableName() string { return "brokerage_payments" }

func (m *BrokeragePayment) BeforeCreate(tx *gorm.DB) error {
	if m.BrokeragePaymentID == uuid.Nil {
		m.BrokeragePaymentID = uuid.New()
	}
	return nil
}
