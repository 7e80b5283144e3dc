// file: internals/features/classes/tutor_applications/dto/tutor_application_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"lesku_backend/internals/features/classes/tutor_applications/model"
)

type SubmitApplicationRequest struct {
	ClassID      uuid.UUID `json:"class_id" validate:"required"`
	Message      string    `json:"message" validate:"omitempty,max=2000"`
	ProposedRate float64   `json:"proposed_rate" validate:"required,gt=0"`
}

// SelectApplicationRequest: rincian kontrak saat sebuah lamaran dipilih.
// Amount boleh mengikuti proposed_rate; fee dihitung di luar lalu disalin apa adanya.
type SelectApplicationRequest struct {
	Amount    float64    `json:"amount" validate:"required,gt=0"`
	Fee       float64    `json:"fee" validate:"omitempty,gte=0"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date" validate:"omitempty"`
	Notes     *string    `json:"notes" validate:"omitempty,max=2000"`
}

type TutorApplicationResponse struct {
	TutorApplicationID uuid.UUID `json:"tutor_application_id"`
	TutorID            uuid.UUID `json:"tutor_id"`
	ClassID            uuid.UUID `json:"class_id"`
	Message            string    `json:"message,omitempty"`
	ProposedRate       float64   `json:"proposed_rate"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToTutorApplicationResponse(m *model.TutorApplication) TutorApplicationResponse {
	return TutorApplicationResponse{
		TutorApplicationID: m.TutorApplicationID,
		TutorID:            m.TutorApplicationTutorID,
		ClassID:            m.TutorApplicationClassID,
		Message:            m.TutorApplicationMessage,
		ProposedRate:       m.TutorApplicationProposedRate,
		Status:             string(m.TutorApplicationStatus),
		CreatedAt:          m.TutorApplicationCreatedAt,
		UpdatedAt:          m.TutorApplicationUpdatedAt,
	}
}

func ToTutorApplicationResponses(list []model.TutorApplication) []TutorApplicationResponse {
	out := make([]TutorApplicationResponse, 0, len(list))
	for i := range list {
		out = append(out, ToTutorApplicationResponse(&list[i]))
	}
	return out
}
