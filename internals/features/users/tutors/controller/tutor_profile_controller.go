// file: internals/features/users/tutors/controller/tutor_profile_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"lesku_backend/internals/features/users/tutors/dto"
	"lesku_backend/internals/features/users/tutors/model"
	"lesku_backend/internals/features/users/tutors/service"
	helper "lesku_backend/internals/helpers"
)

type TutorProfileController struct {
	Service *service.TutorProfileService
}

func NewTutorProfileController(db *gorm.DB) *TutorProfileController {
	return &TutorProfileController{Service: service.NewTutorProfileService(db)}
}

// PUT /api/u/tutor-profile — tutor mengisi/memperbarui profilnya.
func (ctl *TutorProfileController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var req dto.UpsertTutorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := model.TutorProfile{
		TutorProfileUserID:          userID,
		TutorProfileBio:             req.Bio,
		TutorProfileSubjects:        pq.StringArray(req.Subjects),
		TutorProfileHourlyRate:      req.HourlyRate,
		TutorProfileExperienceYears: req.ExperienceYears,
	}
	out, err := ctl.Service.Upsert(&m)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "Profil tutor berhasil disimpan", dto.ToTutorProfileResponse(out))
}

// GET /api/u/tutor-profile — profil milik tutor yang login.
func (ctl *TutorProfileController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	m, err := ctl.Service.GetByUserID(userID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToTutorProfileResponse(m))
}

// POST /api/u/tutor-profile/certificate — upload berkas (multipart "certificate").
func (ctl *TutorProfileController) UploadCertificate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	fh, err := c.FormFile("certificate")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Berkas certificate wajib diunggah")
	}
	m, err := ctl.Service.AttachCertificate(userID, fh)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Sertifikat berhasil diunggah", dto.ToTutorProfileResponse(m))
}

// GET /api/s/tutor-profiles — staff menelusuri katalog tutor.
func (ctl *TutorProfileController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	rows, total, err := ctl.Service.List(c.Query("subject"), p.Limit(), p.Offset())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "OK", dto.ToTutorProfileResponses(rows), helper.BuildMeta(total, p))
}

// GET /api/s/tutor-profiles/:userId
func (ctl *TutorProfileController) GetByUserID(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	m, err := ctl.Service.GetByUserID(userID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.ToTutorProfileResponse(m))
}
