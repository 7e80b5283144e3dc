// file: internals/features/finance/salaries/controller/staff_salary_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/features/finance/salaries/dto"
	"lesku_backend/internals/features/finance/salaries/model"
	"lesku_backend/internals/features/finance/salaries/service"
	helper "lesku_backend/internals/helpers"
)

type StaffSalaryController struct {
	Service *service.StaffSalaryService
}

func NewStaffSalaryController(db *gorm.DB) *StaffSalaryController {
	return &StaffSalaryController{Service: service.NewStaffSalaryService(db)}
}

// PUT /api/a/staff-salaries — idempoten per (staff, bulan, tahun).
func (ctl *StaffSalaryController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertStaffSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.StaffSalary{
		StaffSalaryStaffID:    req.StaffID,
		StaffSalaryMonth:      req.Month,
		StaffSalaryYear:       req.Year,
		StaffSalaryBaseAmount: req.BaseAmount,
		StaffSalaryBonus:      req.Bonus,
		StaffSalaryDeduction:  req.Deduction,
		StaffSalaryNotes:      req.Notes,
	}
	out, err := ctl.Service.Upsert(&m)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "Gaji staff berhasil disimpan", dto.ToStaffSalaryResponse(out))
}

// GET /api/a/staff-salaries?staff_id=&month=&year=
func (ctl *StaffSalaryController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	var staffID *uuid.UUID
	if raw := c.Query("staff_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "staff_id tidak valid")
		}
		staffID = &id
	}

	rows, total, err := ctl.Service.List(staffID, c.QueryInt("month"), c.QueryInt("year"), p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToStaffSalaryResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/a/staff-salaries/:id
func (ctl *StaffSalaryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := ctl.Service.GetByID(id)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToStaffSalaryResponse(m))
}

// PATCH /api/a/staff-salaries/:id/pay
func (ctl *StaffSalaryController) MarkPaid(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.MarkPaid, "Gaji ditandai terbayar")
}

// PATCH /api/a/staff-salaries/:id/unpay
func (ctl *StaffSalaryController) MarkPending(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.MarkPending, "Tanda bayar dibatalkan")
}

func (ctl *StaffSalaryController) transition(
	c *fiber.Ctx,
	fn func(uuid.UUID) (*model.StaffSalary, error),
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
	return helper.JsonUpdated(c, okMsg, dto.ToStaffSalaryResponse(m))
}
