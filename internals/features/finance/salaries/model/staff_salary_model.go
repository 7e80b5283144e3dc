// file: internals/features/finance/salaries/model/staff_salary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM staff_salary_status ------------------------------------------------
type StaffSalaryStatus string

const (
	StaffSalaryStatusPending StaffSalaryStatus = "pending"
	StaffSalaryStatusPaid    StaffSalaryStatus = "paid"
)

// --- MODEL staff_salaries ----------------------------------------------------
// Satu baris gaji per (staff, bulan, tahun); pengisian ulang periode yang sama
// menimpa baris lama (upsert).
type StaffSalary struct {
	StaffSalaryID uuid.UUID `json:"staff_salary_id" gorm:"column:staff_salary_id;type:uuid;primaryKey"`

	StaffSalaryStaffID uuid.UUID `json:"staff_salary_staff_id" gorm:"column:staff_salary_staff_id;type:uuid;not null;uniqueIndex:ux_staff_salaries_period,priority:1"`
	StaffSalaryMonth   int       `json:"staff_salary_month" gorm:"column:staff_salary_month;not null;uniqueIndex:ux_staff_salaries_period,priority:2"`
	StaffSalaryYear    int       `json:"staff_salary_year" gorm:"column:staff_salary_year;not null;uniqueIndex:ux_staff_salaries_period,priority:3"`

	// total = base + bonus - deduction, dihitung ulang di service setiap upsert.
	StaffSalaryBaseAmount float64 `json:"staff_salary_base_amount" gorm:"column:staff_salary_base_amount;type:numeric(14,2);not null"`
	StaffSalaryBonus      float64 `json:"staff_salary_bonus" gorm:"column:staff_salary_bonus;type:numeric(14,2);not null;default:0"`
	StaffSalaryDeduction  float64 `json:"staff_salary_deduction" gorm:"column:staff_salary_deduction;type:numeric(14,2);not null;default:0"`
	StaffSalaryTotal      float64 `json:"staff_salary_total" gorm:"column:staff_salary_total;type:numeric(14,2);not null"`

	StaffSalaryStatus   StaffSalaryStatus `json:"staff_salary_status" gorm:"column:staff_salary_status;type:varchar(20);not null;default:'pending';index:idx_staff_salaries_status"`
	StaffSalaryPaidDate *time.Time        `json:"staff_salary_paid_date,omitempty" gorm:"column:staff_salary_paid_date"`
	StaffSalaryNotes    *string           `json:"staff_salary_notes,omitempty" gorm:"column:staff_salary_notes;type:text"`

	StaffSalaryCreatedAt time.Time `json:"staff_salary_created_at" gorm:"column:staff_salary_created_at;not null;autoCreateTime"`
	StaffSalaryUpdatedAt time.Time `json:"staff_salary_updated_at" gorm:"column:staff_salary_updated_at;not null;autoUpdateTime"`
}

func (StaffSalary) TableName() string { return "staff_salaries" }

func (m *StaffSalary) BeforeCreate(tx *gorm.DB) error {
	if m.StaffSalaryID == uuid.Nil {
		m.StaffSalaryID = uuid.New()
	}
	return nil
}
