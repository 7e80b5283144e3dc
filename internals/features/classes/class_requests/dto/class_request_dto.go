// file: internals/features/classes/class_requests/dto/class_request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"lesku_backend/internals/features/classes/class_requests/model"
)

// ========================= REQUESTS =========================

type CreateClassRequestRequest struct {
	Subject             string         `json:"subject" validate:"required,min=2,max=120"`
	Level               string         `json:"level" validate:"required,oneof=primary secondary high university other"`
	Location            datatypes.JSON `json:"location" validate:"omitempty"`
	Schedule            string         `json:"schedule" validate:"required,min=2"`
	TutorRequirements   []string       `json:"tutor_requirements" validate:"omitempty,dive,min=1"`
	SpecialRequirements *string        `json:"special_requirements" validate:"omitempty"`
}

type UpdateClassRequestRequest struct {
	Subject             *string        `json:"subject" validate:"omitempty,min=2,max=120"`
	Level               *string        `json:"level" validate:"omitempty,oneof=primary secondary high university other"`
	Location            datatypes.JSON `json:"location" validate:"omitempty"`
	Schedule            *string        `json:"schedule" validate:"omitempty,min=2"`
	TutorRequirements   []string       `json:"tutor_requirements" validate:"omitempty,dive,min=1"`
	SpecialRequirements *string        `json:"special_requirements" validate:"omitempty"`
}

// ========================= RESPONSES =========================

type ClassRequestResponse struct {
	ClassRequestID      uuid.UUID      `json:"class_request_id"`
	CustomerID          uuid.UUID      `json:"customer_id"`
	Subject             string         `json:"subject"`
	Level               string         `json:"level"`
	Location            datatypes.JSON `json:"location,omitempty"`
	Schedule            string         `json:"schedule"`
	TutorRequirements   []string       `json:"tutor_requirements,omitempty"`
	SpecialRequirements *string        `json:"special_requirements,omitempty"`
	Status              string         `json:"status"`
	SelectedTutorID     *uuid.UUID     `json:"selected_tutor_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func ToClassRequestResponse(m *model.ClassRequest) ClassRequestResponse {
	return ClassRequestResponse{
		ClassRequestID:      m.ClassRequestID,
		CustomerID:          m.ClassRequestCustomerID,
		Subject:             m.ClassRequestSubject,
		Level:               string(m.ClassRequestLevel),
		Location:            m.ClassRequestLocation,
		Schedule:            m.ClassRequestSchedule,
		TutorRequirements:   m.ClassRequestTutorRequirements,
		SpecialRequirements: m.ClassRequestSpecialRequirements,
		Status:              string(m.ClassRequestStatus),
		SelectedTutorID:     m.ClassRequestSelectedTutorID,
		CreatedAt:           m.ClassRequestCreatedAt,
		UpdatedAt:           m.ClassRequestUpdatedAt,
	}
}

func ToClassRequestResponses(list []model.ClassRequest) []ClassRequestResponse {
	out := make([]ClassRequestResponse, 0, len(list))
	for i := range list {
		out = append(out, ToClassRequestResponse(&list[i]))
	}
	return out
}
