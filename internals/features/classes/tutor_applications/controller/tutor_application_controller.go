// file: internals/features/classes/tutor_applications/controller/tutor_application_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/features/classes/tutor_applications/dto"
	"lesku_backend/internals/features/classes/tutor_applications/model"
	"lesku_backend/internals/features/classes/tutor_applications/service"
	contractdto "lesku_backend/internals/features/contracts/dto"
	contractModel "lesku_backend/internals/features/contracts/model"
	contractservice "lesku_backend/internals/features/contracts/service"
	helper "lesku_backend/internals/helpers"
)

type TutorApplicationController struct {
	Service   *service.TutorApplicationService
	Contracts *contractservice.ContractService
}

func NewTutorApplicationController(db *gorm.DB) *TutorApplicationController {
	return &TutorApplicationController{
		Service:   service.NewTutorApplicationService(db),
		Contracts: contractservice.NewContractService(db),
	}
}

// POST /api/u/tutor-applications (tutor)
func (ctl *TutorApplicationController) Submit(c *fiber.Ctx) error {
	tutorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req dto.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.TutorApplication{
		TutorApplicationTutorID:      tutorID,
		TutorApplicationClassID:      req.ClassID,
		TutorApplicationMessage:      req.Message,
		TutorApplicationProposedRate: req.ProposedRate,
	}
	if err := ctl.Service.Submit(&m); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Lamaran berhasil diajukan", dto.ToTutorApplicationResponse(&m))
}

// GET /api/u/tutor-applications — lamaran milik tutor yang login.
func (ctl *TutorApplicationController) ListMine(c *fiber.Ctx) error {
	tutorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	rows, total, err := ctl.Service.ListByTutor(tutorID, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToTutorApplicationResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/s/classes/:classId/applications — staff meninjau pelamar.
func (ctl *TutorApplicationController) ListByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	rows, total, err := ctl.Service.ListByClass(classID, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToTutorApplicationResponses(rows), helper.BuildMeta(total, p))
}

// PATCH /api/s/tutor-applications/:id/approve
func (ctl *TutorApplicationController) Approve(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Approve, "Lamaran disetujui")
}

// PATCH /api/s/tutor-applications/:id/reject
func (ctl *TutorApplicationController) Reject(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Reject, "Lamaran ditolak")
}

// PATCH /api/s/tutor-applications/:id/select — memilih pemenang sekaligus
// menerbitkan kontraknya dalam satu transaksi.
func (ctl *TutorApplicationController) Select(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.SelectApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	app, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	contract := contractModel.Contract{
		ContractClassID:   app.TutorApplicationClassID,
		ContractTutorID:   app.TutorApplicationTutorID,
		ContractAmount:    req.Amount,
		ContractFee:       req.Fee,
		ContractStartDate: req.StartDate,
		ContractEndDate:   req.EndDate,
		ContractNotes:     req.Notes,
	}
	if err := ctl.Contracts.CreateContract(&contract); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Tutor dipilih dan kontrak diterbitkan",
		contractdto.ToContractResponse(&contract))
}

func (ctl *TutorApplicationController) transition(
	c *fiber.Ctx,
	fn func(uuid.UUID) (*model.TutorApplication, error),
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
	return helper.JsonUpdated(c, okMsg, dto.ToTutorApplicationResponse(m))
}
