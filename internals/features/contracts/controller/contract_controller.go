// file: internals/features/contracts/controller/contract_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	"lesku_backend/internals/features/contracts/dto"
	"lesku_backend/internals/features/contracts/model"
	"lesku_backend/internals/features/contracts/service"
	helper "lesku_backend/internals/helpers"
	"lesku_backend/internals/helpers/domainerr"
)

type ContractController struct {
	Service *service.ContractService
}

func NewContractController(db *gorm.DB) *ContractController {
	return &ContractController{Service: service.NewContractService(db)}
}

// POST /api/s/contracts — staff menerbitkan kontrak untuk pasangan kelas-tutor.
func (ctl *ContractController) Create(c *fiber.Ctx) error {
	var req dto.CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.Contract{
		ContractClassID:   req.ClassID,
		ContractTutorID:   req.TutorID,
		ContractAmount:    req.Amount,
		ContractFee:       req.Fee,
		ContractStartDate: req.StartDate,
		ContractEndDate:   req.EndDate,
		ContractNotes:     req.Notes,
	}
	if err := ctl.Service.CreateContract(&m); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Kontrak berhasil diterbitkan", dto.ToContractResponse(&m))
}

// GET /api/u/contracts — staff/admin melihat semua, user lain miliknya sendiri.
func (ctl *ContractController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	role := helper.GetUserRole(c)
	if role == constants.RoleStaff || role == constants.RoleAdmin {
		rows, total, err := ctl.Service.List(c.Query("status"), p.Limit(), p.Offset())
		if err != nil {
			return helper.JsonDomainError(c, err)
		}
		return helper.JsonList(c, "OK", dto.ToContractResponses(rows), helper.BuildMeta(total, p))
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	rows, total, err := ctl.Service.ListByUser(userID, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToContractResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/u/contracts/:id
func (ctl *ContractController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	role := helper.GetUserRole(c)
	if role != constants.RoleStaff && role != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || (userID != m.ContractCustomerID && userID != m.ContractTutorID) {
			return helper.JsonDomainError(c, domainerr.New(domainerr.KindPermissionDenied,
				"Anda tidak memiliki akses ke kontrak ini"))
		}
	}
	return helper.JsonOK(c, "OK", dto.ToContractResponse(m))
}

// PATCH /api/s/contracts/:id/status
func (ctl *ContractController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateContractStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m, err := ctl.Service.UpdateStatus(id, model.ContractStatus(req.Status))
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Status kontrak diperbarui", dto.ToContractResponse(m))
}
