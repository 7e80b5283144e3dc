// file: internals/features/finance/brokerage/controller/brokerage_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	"lesku_backend/internals/features/finance/brokerage/dto"
	"lesku_backend/internals/features/finance/brokerage/service"
	helper "lesku_backend/internals/helpers"
)

type BrokerageController struct {
	Service *service.BrokerageService
}

func NewBrokerageController(db *gorm.DB) *BrokerageController {
	return &BrokerageController{Service: service.NewBrokerageService(db)}
}

// ========================= SETTINGS =========================

// GET /api/a/brokerage/settings
func (ctl *BrokerageController) GetActiveSetting(c *fiber.Ctx) error {
	st, err := ctl.Service.ActiveSetting()
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToPaymentSettingResponse(st))
}

// PUT /api/a/brokerage/settings
func (ctl *BrokerageController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdatePaymentSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	st, err := ctl.Service.UpdateSettings(req.FeePercentage, req.MinimumFee, req.MaximumFee)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Kebijakan fee diperbarui", dto.ToPaymentSettingResponse(st))
}

// GET /api/a/brokerage/settings/history
func (ctl *BrokerageController) SettingsHistory(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	rows, total, err := ctl.Service.SettingsHistory(p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToPaymentSettingResponses(rows), helper.BuildMeta(total, p))
}

// ========================= KALKULASI =========================

// POST /api/a/brokerage/calculate — pratinjau fee tanpa membuat tagihan.
func (ctl *BrokerageController) CalculateFee(c *fiber.Ctx) error {
	var req dto.CalculateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	fee, pct, err := ctl.Service.CalculateFee(req.ContractAmount)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.CalculateFeeResponse{
		ContractAmount: req.ContractAmount,
		FeePercentage:  pct,
		FeeAmount:      fee,
	})
}

// ========================= PAYMENTS =========================

// POST /api/a/brokerage/payments
func (ctl *BrokerageController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreateBrokeragePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m, err := ctl.Service.CreatePayment(service.CreatePaymentInput{
		ClassID:        req.ClassID,
		TutorID:        req.TutorID,
		ContractID:     req.ContractID,
		ContractAmount: req.ContractAmount,
		ActualFee:      req.ActualFee,
		DueDate:        req.DueDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Tagihan fee berhasil dibuat", dto.ToBrokeragePaymentResponse(m))
}

// GET /api/u/brokerage/payments — staff/admin semua, tutor hanya miliknya.
func (ctl *BrokerageController) ListPayments(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	role := helper.GetUserRole(c)
	var tutorFilter *uuid.UUID
	if role != constants.RoleStaff && role != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
		}
		tutorFilter = &userID
	}

	rows, total, err := ctl.Service.ListPayments(c.Query("status"), tutorFilter, p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToBrokeragePaymentResponses(rows), helper.BuildMeta(total, p))
}

// PATCH /api/a/brokerage/payments/:id
func (ctl *BrokerageController) UpdatePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateBrokeragePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m, err := ctl.Service.UpdatePayment(id, service.UpdatePaymentInput{
		Status:    req.Status,
		ActualFee: req.ActualFee,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
	})
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Tagihan fee diperbarui", dto.ToBrokeragePaymentResponse(m))
}
