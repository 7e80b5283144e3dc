// file: internals/features/classes/class_requests/controller/class_request_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	"lesku_backend/internals/helpers/domainerr"
	"lesku_backend/internals/features/classes/class_requests/dto"
	"lesku_backend/internals/features/classes/class_requests/model"
	"lesku_backend/internals/features/classes/class_requests/service"
	helper "lesku_backend/internals/helpers"
)

type ClassRequestController struct {
	Service *service.ClassRequestService
}

func NewClassRequestController(db *gorm.DB) *ClassRequestController {
	return &ClassRequestController{Service: service.NewClassRequestService(db)}
}

// POST /api/u/class-requests (customer)
func (ctl *ClassRequestController) Create(c *fiber.Ctx) error {
	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req dto.CreateClassRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.ClassRequest{
		ClassRequestCustomerID:          customerID,
		ClassRequestSubject:             req.Subject,
		ClassRequestLevel:               model.ClassLevel(req.Level),
		ClassRequestLocation:            req.Location,
		ClassRequestSchedule:            req.Schedule,
		ClassRequestTutorRequirements:   req.TutorRequirements,
		ClassRequestSpecialRequirements: req.SpecialRequirements,
	}
	if err := ctl.Service.Create(&m); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Permintaan kelas berhasil dibuat", dto.ToClassRequestResponse(&m))
}

// GET /api/u/class-requests — customer melihat miliknya, staff/admin melihat semua.
func (ctl *ClassRequestController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	role := helper.GetUserRole(c)
	if role == constants.RoleStaff || role == constants.RoleAdmin {
		rows, total, err := ctl.Service.ListByStatus(c.Query("status"), p.Limit(), p.Offset())
		if err != nil {
			return helper.JsonDomainError(c, err)
		}
		return helper.JsonList(c, "OK", dto.ToClassRequestResponses(rows), helper.BuildMeta(total, p))
	}

	customerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	rows, total, err := ctl.Service.ListByCustomer(customerID, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToClassRequestResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/u/class-requests/:id
func (ctl *ClassRequestController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if err := ctl.ensureOwnerOrStaff(c, m); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToClassRequestResponse(m))
}

// PUT /api/u/class-requests/:id — hanya pemilik, selama pending.
func (ctl *ClassRequestController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	existing, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if err := ctl.ensureOwnerOrStaff(c, existing); err != nil {
		return helper.JsonDomainError(c, err)
	}

	var req dto.UpdateClassRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	patch := map[string]interface{}{}
	if req.Subject != nil {
		patch["class_request_subject"] = *req.Subject
	}
	if req.Level != nil {
		patch["class_request_level"] = *req.Level
	}
	if req.Location != nil {
		patch["class_request_location"] = req.Location
	}
	if req.Schedule != nil {
		patch["class_request_schedule"] = *req.Schedule
	}
	if req.TutorRequirements != nil {
		patch["class_request_tutor_requirements"] = pqArray(req.TutorRequirements)
	}
	if req.SpecialRequirements != nil {
		patch["class_request_special_requirements"] = req.SpecialRequirements
	}

	updated, err := ctl.Service.UpdateDetails(id, patch)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Permintaan kelas berhasil diperbarui", dto.ToClassRequestResponse(updated))
}

// PATCH /api/s/class-requests/:id/approve
func (ctl *ClassRequestController) Approve(c *fiber.Ctx) error {
	return ctl.staffTransition(c, ctl.Service.Approve, "Permintaan kelas disetujui")
}

// PATCH /api/s/class-requests/:id/reject
func (ctl *ClassRequestController) Reject(c *fiber.Ctx) error {
	return ctl.staffTransition(c, ctl.Service.Reject, "Permintaan kelas ditolak")
}

// PATCH /api/s/class-requests/:id/complete
func (ctl *ClassRequestController) Complete(c *fiber.Ctx) error {
	return ctl.staffTransition(c, ctl.Service.Complete, "Permintaan kelas selesai")
}

// DELETE /api/s/class-requests/:id — ikut menghapus lamaran, kontrak, dan fee turunan.
func (ctl *ClassRequestController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.Service.Delete(id); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonDeleted(c, "Permintaan kelas berhasil dihapus", fiber.Map{"class_request_id": id})
}

func (ctl *ClassRequestController) staffTransition(
	c *fiber.Ctx,
	fn func(uuid.UUID) (*model.ClassRequest, error),
	okMsg string,
) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := fn(id)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, okMsg, dto.ToClassRequestResponse(m))
}

func (ctl *ClassRequestController) ensureOwnerOrStaff(c *fiber.Ctx, m *model.ClassRequest) error {
	role := helper.GetUserRole(c)
	if role == constants.RoleStaff || role == constants.RoleAdmin {
		return nil
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil || userID != m.ClassRequestCustomerID {
		return domainerr.New(domainerr.KindPermissionDenied, "Anda tidak memiliki akses ke permintaan ini")
	}
	return nil
}

func pqArray(s []string) pq.StringArray { return append(pq.StringArray(nil), s...) }
