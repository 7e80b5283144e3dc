// file: internals/features/finance/salaries/dto/staff_salary_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"lesku_backend/internals/features/finance/salaries/model"
)

type UpsertStaffSalaryRequest struct {
	StaffID    uuid.UUID `json:"staff_id" validate:"required"`
	Month      int       `json:"month" validate:"required,min=1,max=12"`
	Year       int       `json:"year" validate:"required,min=2000,max=2100"`
	BaseAmount float64   `json:"base_amount" validate:"required,gt=0"`
	Bonus      float64   `json:"bonus" validate:"gte=0"`
	Deduction  float64   `json:"deduction" validate:"gte=0"`
	Notes      *string   `json:"notes" validate:"omitempty,max=2000"`
}

type StaffSalaryResponse struct {
	StaffSalaryID uuid.UUID  `json:"staff_salary_id"`
	StaffID       uuid.UUID  `json:"staff_id"`
	Month         int        `json:"month"`
	Year          int        `json:"year"`
	BaseAmount    float64    `json:"base_amount"`
	Bonus         float64    `json:"bonus"`
	Deduction     float64    `json:"deduction"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToStaffSalaryResponse(m *model.StaffSalary) StaffSalaryResponse {
	return StaffSalaryResponse{
		StaffSalaryID: m.StaffSalaryID,
		StaffID:       m.StaffSalaryStaffID,
		Month:         m.StaffSalaryMonth,
		Year:          m.StaffSalaryYear,
		BaseAmount:    m.StaffSalaryBaseAmount,
		Bonus:         m.StaffSalaryBonus,
		Deduction:     m.StaffSalaryDeduction,
		Total:         m.StaffSalaryTotal,
		Status:        string(m.StaffSalaryStatus),
		PaidDate:      m.StaffSalaryPaidDate,
		Notes:         m.StaffSalaryNotes,
		CreatedAt:     m.StaffSalaryCreatedAt,
		UpdatedAt:     m.StaffSalaryUpdatedAt,
	}
}

func ToStaffSalaryResponses(list []model.StaffSalary) []StaffSalaryResponse {
	out := make([]StaffSalaryResponse, 0, len(list))
	for i := range list {
		out = append(out, ToStaffSalaryResponse(&list[i]))
	}
	return out
}
