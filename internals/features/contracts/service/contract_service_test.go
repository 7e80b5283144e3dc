// file: internals/features/contracts/service/contract_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	classModel "lesku_backend/internals/features/classes/class_requests/model"
	appModel "lesku_backend/internals/features/classes/tutor_applications/model"
	"lesku_backend/internals/features/contracts/model"
	"lesku_backend/internals/helpers/domainerr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&classModel.ClassRequest{},
		&appModel.TutorApplication{},
		&model.Contract{},
	))
	return db
}

type fixture struct {
	class *classModel.ClassRequest
	app   *appModel.TutorApplication
}

// seedMatchable menyiapkan kelas approved + lamaran tutor approved.
func seedMatchable(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	cls := &classModel.ClassRequest{
		ClassRequestCustomerID: uuid.New(),
		ClassRequestSubject:    "Fisika",
		ClassRequestLevel:      classModel.ClassLevelHigh,
		ClassRequestSchedule:   "Rabu 15:00",
		ClassRequestStatus:     classModel.ClassRequestStatusApproved,
	}
	require.NoError(t, db.Create(cls).Error)

	app := &appModel.TutorApplication{
		TutorApplicationTutorID:      uuid.New(),
		TutorApplicationClassID:      cls.ClassRequestID,
		TutorApplicationProposedRate: 200000,
		TutorApplicationStatus:       appModel.TutorApplicationStatusApproved,
	}
	require.NoError(t, db.Create(app).Error)
	return fixture{class: cls, app: app}
}

func newContract(fx fixture) *model.Contract {
	return &model.Contract{
		ContractClassID:   fx.class.ClassRequestID,
		ContractTutorID:   fx.app.TutorApplicationTutorID,
		ContractAmount:    1600000,
		ContractFee:       160000,
		ContractStartDate: time.Now(),
	}
}

func TestCreateContract_HappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	// pelamar lain yang harus gugur saat kontrak terbit
	other := &appModel.TutorApplication{
		TutorApplicationTutorID:      uuid.New(),
		TutorApplicationClassID:      fx.class.ClassRequestID,
		TutorApplicationProposedRate: 180000,
		TutorApplicationStatus:       appModel.TutorApplicationStatusPending,
	}
	require.NoError(t, db.Create(other).Error)

	in := newContract(fx)
	require.NoError(t, svc.CreateContract(in))

	// Customer diambil dari kelas, status active.
	assert.Equal(t, fx.class.ClassRequestCustomerID, in.ContractCustomerID)
	assert.Equal(t, model.ContractStatusActive, in.ContractStatus)
	assert.Equal(t, 160000.0, in.ContractFee)

	// Kelas matched + tutor terpilih.
	var cls classModel.ClassRequest
	require.NoError(t, db.First(&cls, "class_request_id = ?", fx.class.ClassRequestID).Error)
	assert.Equal(t, classModel.ClassRequestStatusMatched, cls.ClassRequestStatus)
	require.NotNil(t, cls.ClassRequestSelectedTutorID)
	assert.Equal(t, fx.app.TutorApplicationTutorID, *cls.ClassRequestSelectedTutorID)

	// Lamaran terpilih selected, sisanya rejected.
	var winner, loser appModel.TutorApplication
	require.NoError(t, db.First(&winner, "tutor_application_id = ?", fx.app.TutorApplicationID).Error)
	require.NoError(t, db.First(&loser, "tutor_application_id = ?", other.TutorApplicationID).Error)
	assert.Equal(t, appModel.TutorApplicationStatusSelected, winner.TutorApplicationStatus)
	assert.Equal(t, appModel.TutorApplicationStatusRejected, loser.TutorApplicationStatus)
}

func TestCreateContract_ClassNotApproved_RollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	require.NoError(t, db.Model(&classModel.ClassRequest{}).
		Where("class_request_id = ?", fx.class.ClassRequestID).
		Update("class_request_status", classModel.ClassRequestStatusPending).Error)

	err := svc.CreateContract(newContract(fx))
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))

	// Tidak ada baris kontrak yang bocor.
	var contracts int64
	db.Model(&model.Contract{}).Count(&contracts)
	assert.Zero(t, contracts)
}

func TestCreateContract_NoApprovedApplication_RollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	require.NoError(t, db.Model(&appModel.TutorApplication{}).
		Where("tutor_application_id = ?", fx.app.TutorApplicationID).
		Update("tutor_application_status", appModel.TutorApplicationStatusPending).Error)

	err := svc.CreateContract(newContract(fx))
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))

	// Flip kelas ikut dibatalkan, kelas tetap approved.
	var cls classModel.ClassRequest
	require.NoError(t, db.First(&cls, "class_request_id = ?", fx.class.ClassRequestID).Error)
	assert.Equal(t, classModel.ClassRequestStatusApproved, cls.ClassRequestStatus)
	assert.Nil(t, cls.ClassRequestSelectedTutorID)

	var contracts int64
	db.Model(&model.Contract{}).Count(&contracts)
	assert.Zero(t, contracts)
}

func TestCreateContract_ClassNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	in := newContract(fx)
	in.ContractClassID = uuid.New()
	err := svc.CreateContract(in)
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}

func TestCreateContract_SecondIssuanceLoses(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	require.NoError(t, svc.CreateContract(newContract(fx)))

	// Kelas sudah matched → penerbitan kedua kalah di flip status.
	err := svc.CreateContract(newContract(fx))
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))

	var contracts int64
	db.Model(&model.Contract{}).Count(&contracts)
	assert.EqualValues(t, 1, contracts)
}

func TestUpdateStatus_TerminalStates(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	in := newContract(fx)
	require.NoError(t, svc.CreateContract(in))

	got, err := svc.UpdateStatus(in.ContractID, model.ContractStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusCompleted, got.ContractStatus)

	// Terminal: tidak bisa dibatalkan setelah selesai.
	_, err = svc.UpdateStatus(in.ContractID, model.ContractStatusCancelled)
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))
}

func TestUpdateStatus_RejectsUnknownTarget(t *testing.T) {
	svc := NewContractService(newTestDB(t))
	_, err := svc.UpdateStatus(uuid.New(), model.ContractStatusActive)
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewContractService(db)
	fx := seedMatchable(t, db)

	in := newContract(fx)
	require.NoError(t, svc.CreateContract(in))

	// Sebagai tutor.
	rows, total, err := svc.ListByUser(fx.app.TutorApplicationTutorID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)

	// Sebagai customer.
	_, total, err = svc.ListByUser(fx.class.ClassRequestCustomerID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// Orang luar.
	_, total, err = svc.ListByUser(uuid.New(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}
