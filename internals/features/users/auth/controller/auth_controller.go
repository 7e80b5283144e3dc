// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	"lesku_backend/internals/constants"
	"lesku_backend/internals/features/users/auth/dto"
	authmodel "lesku_backend/internals/features/users/auth/model"
	"lesku_backend/internals/features/users/auth/service"
	helper "lesku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

/* =======================================================
   REGISTER
======================================================= */

// POST /api/auth/register (publik) dan POST /api/a/users (admin pilih role).
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// Role hanya boleh dipilih oleh admin yang sudah login; publik selalu customer.
	role := constants.RoleCustomer
	if in.UserRole != nil && helper.GetUserRole(c) == constants.RoleAdmin {
		if !constants.IsValidRole(*in.UserRole) {
			return helper.JsonError(c, fiber.StatusBadRequest, "role tidak dikenal")
		}
		role = *in.UserRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal memproses password")
	}

	user := authmodel.User{
		UserName:     strings.TrimSpace(in.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(in.UserEmail)),
		UserPassword: string(hash),
		UserRole:     role,
		UserIsActive: true,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "register berhasil", dto.ToUserResponse(user))
}

/* =======================================================
   LOGIN (email + password)
======================================================= */

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user authmodel.User
	if err := ctl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(in.UserEmail))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "email atau password salah")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat token")
	}
	setAccessCookie(c, token)

	return helper.JsonOK(c, "login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

/* =======================================================
   LOGIN GOOGLE
======================================================= */

// POST /api/auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var in dto.GoogleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	var user authmodel.User
	if err := ctl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		// User belum ada → buat customer baru (tanpa password lokal)
		user = authmodel.User{
			UserName:     claimSet.Name,
			UserEmail:    email,
			UserRole:     constants.RoleCustomer,
			UserIsActive: true,
		}
		if err := ctl.DB.Create(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "akun dinonaktifkan")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat token")
	}
	setAccessCookie(c, token)

	return helper.JsonOK(c, "login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

/* =======================================================
   LOGOUT (blacklist token sampai exp)
======================================================= */

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "tidak ada token")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})

	bl := authmodel.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: service.AccessTokenExpiry(claims),
	}
	if err := ctl.DB.Create(&bl).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.JsonOK(c, "logout berhasil", nil)
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
	})
}
