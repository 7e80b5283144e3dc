// file: internals/features/finance/brokerage/model/payment_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentSetting adalah kebijakan fee broker. Append-only: perubahan kebijakan
// menonaktifkan baris lama dan menyisipkan baris baru, sehingga riwayat tarif
// tetap dapat diaudit. Maksimal satu baris aktif pada satu waktu.
type PaymentSetting struct {
	PaymentSettingID uuid.UUID `json:"payment_setting_id" gorm:"column:payment_setting_id;type:uuid;primaryKey"`

	// Persen fee dari nilai kontrak, mis. 10 berarti 10%.
	PaymentSettingFeePercentage float64 `json:"payment_setting_fee_percentage" gorm:"column:payment_setting_fee_percentage;type:numeric(5,2);not null"`

	// Batas nominal fee. Minimum selalu diterapkan lebih dulu; maksimum
	// opsional (NULL = tanpa plafon) dan diterapkan setelahnya.
	PaymentSettingMinimumFee float64  `json:"payment_setting_minimum_fee" gorm:"column:payment_setting_minimum_fee;type:numeric(14,2);not null;default:0"`
	PaymentSettingMaximumFee *float64 `json:"payment_setting_maximum_fee,omitempty" gorm:"column:payment_setting_maximum_fee;type:numeric(14,2)"`

	PaymentSettingIsActive bool `json:"payment_setting_is_active" gorm:"column:payment_setting_is_active;not null;default:true;index:idx_payment_settings_active"`

	PaymentSettingCreatedAt time.Time `json:"payment_setting_created_at" gorm:"column:payment_setting_created_at;not null;autoCreateTime"`
	PaymentSettingUpdatedAt time.Time `json:"payment_setting_updated_at" gorm:"column:payment_setting_updated_at;not null;autoUpdateTime"`
}

func (PaymentSetting) TableName() string { return "payment_settings" }

func (m *PaymentSetting) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentSettingID == uuid.Nil {
		m.PaymentSettingID = uuid.New()
	}
	return nil
}
