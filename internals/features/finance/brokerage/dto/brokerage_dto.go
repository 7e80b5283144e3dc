// file: internals/features/finance/brokerage/dto/brokerage_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"lesku_backend/internals/features/finance/brokerage/model"
)

// ========================= PAYMENT SETTINGS =========================

type UpdatePaymentSettingsRequest struct {
	FeePercentage float64  `json:"fee_percentage" validate:"required,gt=0,lte=100"`
	MinimumFee    float64  `json:"minimum_fee" validate:"gte=0"`
	MaximumFee    *float64 `json:"maximum_fee" validate:"omitempty,gte=0"`
}

type PaymentSettingResponse struct {
	PaymentSettingID uuid.UUID `json:"payment_setting_id"`
	FeePercentage    float64   `json:"fee_percentage"`
	MinimumFee       float64   `json:"minimum_fee"`
	MaximumFee       *float64  `json:"maximum_fee,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToPaymentSettingResponse(m *model.PaymentSetting) PaymentSettingResponse {
	return PaymentSettingResponse{
		PaymentSettingID: m.PaymentSettingID,
		FeePercentage:    m.PaymentSettingFeePercentage,
		MinimumFee:       m.PaymentSettingMinimumFee,
		MaximumFee:       m.PaymentSettingMaximumFee,
		IsActive:         m.PaymentSettingIsActive,
		CreatedAt:        m.PaymentSettingCreatedAt,
	}
}

func ToPaymentSettingResponses(list []model.PaymentSetting) []PaymentSettingResponse {
	out := make([]PaymentSettingResponse, 0, len(list))
	for i := range list {
		out = append(out, ToPaymentSettingResponse(&list[i]))
	}
	return out
}

// ========================= BROKERAGE PAYMENTS =========================

type CreateBrokeragePaymentRequest struct {
	ClassID        uuid.UUID  `json:"class_id" validate:"required"`
	TutorID        uuid.UUID  `json:"tutor_id" validate:"required"`
	ContractID     *uuid.UUID `json:"contract_id" validate:"omitempty"`
	ContractAmount float64    `json:"contract_amount" validate:"required,gt=0"`
	ActualFee      *float64   `json:"actual_fee" validate:"omitempty,gte=0"`
	DueDate        *time.Time `json:"due_date" validate:"omitempty"`
	Notes          *string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateBrokeragePaymentRequest struct {
	Status    *string    `json:"status" validate:"omitempty,oneof=pending paid overdue waived"`
	ActualFee *float64   `json:"actual_fee" validate:"omitempty,gte=0"`
	DueDate   *time.Time `json:"due_date" validate:"omitempty"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

type CalculateFeeRequest struct {
	ContractAmount float64 `json:"contract_amount" validate:"required,gt=0"`
}

type CalculateFeeResponse struct {
	ContractAmount float64 `json:"contract_amount"`
	FeePercentage  float64 `json:"fee_percentage"`
	FeeAmount      float64 `json:"fee_amount"`
}

type BrokeragePaymentResponse struct {
	BrokeragePaymentID uuid.UUID  `json:"brokerage_payment_id"`
	ClassID            uuid.UUID  `json:"class_id"`
	TutorID            uuid.UUID  `json:"tutor_id"`
	ContractID         *uuid.UUID `json:"contract_id,omitempty"`
	ContractAmount     float64    `json:"contract_amount"`
	FeePercentage      float64    `json:"fee_percentage"`
	CalculatedFee      float64    `json:"calculated_fee"`
	ActualFee          float64    `json:"actual_fee"`
	Status             string     `json:"status"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	PaidDate           *time.Time `json:"paid_date,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToBrokeragePaymentResponse(m *model.BrokeragePayment) BrokeragePaymentResponse {
	return BrokeragePaymentResponse{
		BrokeragePaymentID: m.BrokeragePaymentID,
		ClassID:            m.BrokeragePaymentClassID,
		TutorID:            m.BrokeragePaymentTutorID,
		ContractID:         m.BrokeragePaymentContractID,
		ContractAmount:     m.BrokeragePaymentContractAmount,
		FeePercentage:      m.BrokeragePaymentFeePercentage,
		CalculatedFee:      m.BrokeragePaymentCalculatedFee,
		ActualFee:          m.BrokeragePaymentActualFee,
		Status:             string(m.BrokeragePaymentStatus),
		DueDate:            m.BrokeragePaymentDueDate,
		PaidDate:           m.BrokeragePaymentPaidDate,
		Notes:              m.BrokeragePaymentNotes,
		CreatedAt:          m.BrokeragePaymentCreatedAt,
		UpdatedAt:          m.BrokeragePaymentUpdatedAt,
	}
}

func ToBrokeragePaymentResponses(list []model.BrokeragePayment) []BrokeragePaymentResponse {
	out := make([]BrokeragePaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToBrokeragePaymentResponse(&list[i]))
	}
	return out
}
