// file: internals/features/contracts/dto/contract_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"lesku_backend/internals/features/contracts/model"
)

type CreateContractRequest struct {
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	TutorID   uuid.UUID  `json:"tutor_id" validate:"required"`
	Amount    float64    `json:"amount" validate:"required,gt=0"`
	Fee       float64    `json:"fee" validate:"omitempty,gte=0"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date" validate:"omitempty"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

type ContractResponse struct {
	ContractID uuid.UUID  `json:"contract_id"`
	ClassID    uuid.UUID  `json:"class_id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	TutorID    uuid.UUID  `json:"tutor_id"`
	Amount     float64    `json:"amount"`
	Fee        float64    `json:"fee"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func ToContractResponse(m *model.Contract) ContractResponse {
	return ContractResponse{
		ContractID: m.ContractID,
		ClassID:    m.ContractClassID,
		CustomerID: m.ContractCustomerID,
		TutorID:    m.ContractTutorID,
		Amount:     m.ContractAmount,
		Fee:        m.ContractFee,
		StartDate:  m.ContractStartDate,
		EndDate:    m.ContractEndDate,
		Status:     string(m.ContractStatus),
		Notes:      m.ContractNotes,
		CreatedAt:  m.ContractCreatedAt,
		UpdatedAt:  m.ContractUpdatedAt,
	}
}

func ToContractResponses(list []model.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(list))
	for i := range list {
		out = append(out, ToContractResponse(&list[i]))
	}
	return out
}
