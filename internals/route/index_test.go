// file: internals/route/index_test.go
package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesku_backend/internals/configs"
	"lesku_backend/internals/constants"
	classModel "lesku_backend/internals/features/classes/class_requests/model"
	appModel "lesku_backend/internals/features/classes/tutor_applications/model"
	authModel "lesku_backend/internals/features/users/auth/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "unit-test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authModel.User{},
		&authModel.TokenBlacklist{},
		&classModel.ClassRequest{},
		&appModel.TutorApplication{},
	))

	app := fiber.New()
	SetupRoutes(app, db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *authModel.User {
	t.Helper()
	u := authModel.User{
		UserName:     role + " uji",
		UserEmail:    fmt.Sprintf("%s-%d@uji.test", role, time.Now().UnixNano()),
		UserPassword: "x",
		UserRole:     role,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func signToken(t *testing.T, u *authModel.User) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        u.UserID.String(),
		"role":      u.UserRole,
		"user_name": u.UserName,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const classRequestBody = `{"subject":"Matematika","level":"high","schedule":"Sabtu pagi"}`

func TestCreateClassRequest_TutorForbidden(t *testing.T) {
	app, db := newTestApp(t)
	tutor := seedUser(t, db, constants.RoleTutor)

	resp := doJSON(t, app, fiber.MethodPost, "/api/u/class-requests",
		signToken(t, tutor), classRequestBody)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&classModel.ClassRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateClassRequest_StaffForbidden(t *testing.T) {
	app, db := newTestApp(t)
	staff := seedUser(t, db, constants.RoleStaff)

	resp := doJSON(t, app, fiber.MethodPost, "/api/u/class-requests",
		signToken(t, staff), classRequestBody)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateClassRequest_CustomerAllowed(t *testing.T) {
	app, db := newTestApp(t)
	customer := seedUser(t, db, constants.RoleCustomer)

	resp := doJSON(t, app, fiber.MethodPost, "/api/u/class-requests",
		signToken(t, customer), classRequestBody)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var m classModel.ClassRequest
	require.NoError(t, db.First(&m).Error)
	assert.Equal(t, customer.UserID, m.ClassRequestCustomerID)
}

func TestSubmitApplication_CustomerForbidden(t *testing.T) {
	app, db := newTestApp(t)
	customer := seedUser(t, db, constants.RoleCustomer)

	resp := doJSON(t, app, fiber.MethodPost, "/api/u/tutor-applications",
		signToken(t, customer), `{"class_id":"00000000-0000-0000-0000-000000000001","proposed_rate":100000}`)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&appModel.TutorApplication{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitApplication_TutorAllowed(t *testing.T) {
	app, db := newTestApp(t)
	customer := seedUser(t, db, constants.RoleCustomer)
	tutor := seedUser(t, db, constants.RoleTutor)

	cls := classModel.ClassRequest{
		ClassRequestCustomerID: customer.UserID,
		ClassRequestSubject:    "Fisika",
		ClassRequestLevel:      classModel.ClassLevelHigh,
		ClassRequestSchedule:   "Minggu sore",
		ClassRequestStatus:     classModel.ClassRequestStatusApproved,
	}
	require.NoError(t, db.Create(&cls).Error)

	body := fmt.Sprintf(`{"class_id":%q,"proposed_rate":120000}`, cls.ClassRequestID)
	resp := doJSON(t, app, fiber.MethodPost, "/api/u/tutor-applications",
		signToken(t, tutor), body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestAdminCreatesStaffAccount(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedUser(t, db, constants.RoleAdmin)

	body := `{"user_name":"Staff Baru","user_email":"staff.baru@uji.test","user_password":"rahasia-kuat","user_role":"staff"}`
	resp := doJSON(t, app, fiber.MethodPost, "/api/a/users", signToken(t, admin), body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var u authModel.User
	require.NoError(t, db.First(&u, "user_email = ?", "staff.baru@uji.test").Error)
	assert.Equal(t, constants.RoleStaff, u.UserRole)
}

func TestStaffCannotCreateAccounts(t *testing.T) {
	app, db := newTestApp(t)
	staff := seedUser(t, db, constants.RoleStaff)

	body := `{"user_name":"Admin Gelap","user_email":"gelap@uji.test","user_password":"rahasia-kuat","user_role":"admin"}`
	resp := doJSON(t, app, fiber.MethodPost, "/api/a/users", signToken(t, staff), body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPublicRegister_RoleForcedToCustomer(t *testing.T) {
	app, db := newTestApp(t)

	body := `{"user_name":"Orang Umum","user_email":"umum@uji.test","user_password":"rahasia-kuat","user_role":"admin"}`
	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var u authModel.User
	require.NoError(t, db.First(&u, "user_email = ?", "umum@uji.test").Error)
	assert.Equal(t, constants.RoleCustomer, u.UserRole)
}
