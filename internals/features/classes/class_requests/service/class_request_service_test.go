// file: internals/features/classes/class_requests/service/class_request_service_test.go
package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appModel "lesku_backend/internals/features/classes/tutor_applications/model"
	contractModel "lesku_backend/internals/features/contracts/model"
	feeModel "lesku_backend/internals/features/finance/brokerage/model"
	"lesku_backend/internals/helpers/domainerr"

	"lesku_backend/internals/features/classes/class_requests/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.ClassRequest{},
		&appModel.TutorApplication{},
		&contractModel.Contract{},
		&feeModel.BrokeragePayment{},
	))
	return db
}

func newRequest(customerID uuid.UUID) *model.ClassRequest {
	return &model.ClassRequest{
		ClassRequestCustomerID: customerID,
		ClassRequestSubject:    "Matematika",
		ClassRequestLevel:      model.ClassLevelSecondary,
		ClassRequestSchedule:   "Senin & Kamis 16:00",
	}
}

func TestCreate_SetsPendingStatus(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	req := newRequest(uuid.New())
	req.ClassRequestStatus = model.ClassRequestStatusApproved // harus diabaikan

	require.NoError(t, svc.Create(req))

	got, err := svc.GetByID(req.ClassRequestID)
	require.NoError(t, err)
	assert.Equal(t, model.ClassRequestStatusPending, got.ClassRequestStatus)
	assert.Nil(t, got.ClassRequestSelectedTutorID)
}

func TestCreate_PendingCap(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	customerID := uuid.New()

	for i := 0; i < MaxPendingPerCustomer; i++ {
		require.NoError(t, svc.Create(newRequest(customerID)))
	}

	err := svc.Create(newRequest(customerID))
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindTooManyPendingRequests))

	// Customer lain tidak terpengaruh.
	assert.NoError(t, svc.Create(newRequest(uuid.New())))
}

func TestCreate_CapCountsOnlyPending(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	customerID := uuid.New()

	for i := 0; i < MaxPendingPerCustomer; i++ {
		require.NoError(t, svc.Create(newRequest(customerID)))
	}

	// Tolak satu → slot terbuka lagi.
	var one model.ClassRequest
	require.NoError(t, svc.DB.First(&one, "class_request_customer_id = ?", customerID).Error)
	_, err := svc.Reject(one.ClassRequestID)
	require.NoError(t, err)

	assert.NoError(t, svc.Create(newRequest(customerID)))
}

func TestApprove_FromPending(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	req := newRequest(uuid.New())
	require.NoError(t, svc.Create(req))

	got, err := svc.Approve(req.ClassRequestID)
	require.NoError(t, err)
	assert.Equal(t, model.ClassRequestStatusApproved, got.ClassRequestStatus)

	// Approve kedua kali ditolak.
	_, err = svc.Approve(req.ClassRequestID)
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))
}

func TestApprove_NotFound(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	_, err := svc.Approve(uuid.New())
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}

func TestComplete_RequiresMatched(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	req := newRequest(uuid.New())
	require.NoError(t, svc.Create(req))

	_, err := svc.Complete(req.ClassRequestID)
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))

	// matched (diset manual, jalur normalnya lewat penerbitan kontrak)
	require.NoError(t, svc.DB.Model(&model.ClassRequest{}).
		Where("class_request_id = ?", req.ClassRequestID).
		Update("class_request_status", model.ClassRequestStatusMatched).Error)

	got, err := svc.Complete(req.ClassRequestID)
	require.NoError(t, err)
	assert.Equal(t, model.ClassRequestStatusCompleted, got.ClassRequestStatus)
}

func TestUpdateDetails_OnlyWhilePending(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	req := newRequest(uuid.New())
	require.NoError(t, svc.Create(req))

	got, err := svc.UpdateDetails(req.ClassRequestID, map[string]interface{}{
		"class_request_subject": "Fisika",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fisika", got.ClassRequestSubject)

	_, err = svc.Approve(req.ClassRequestID)
	require.NoError(t, err)

	_, err = svc.UpdateDetails(req.ClassRequestID, map[string]interface{}{
		"class_request_subject": "Kimia",
	})
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))
}

func TestDelete_CascadesChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewClassRequestService(db)

	req := newRequest(uuid.New())
	require.NoError(t, svc.Create(req))
	tutorID := uuid.New()

	require.NoError(t, db.Create(&appModel.TutorApplication{
		TutorApplicationTutorID:      tutorID,
		TutorApplicationClassID:      req.ClassRequestID,
		TutorApplicationProposedRate: 150000,
	}).Error)
	require.NoError(t, db.Create(&contractModel.Contract{
		ContractClassID:    req.ClassRequestID,
		ContractCustomerID: req.ClassRequestCustomerID,
		ContractTutorID:    tutorID,
		ContractAmount:     1200000,
		ContractStartDate:  req.ClassRequestCreatedAt,
	}).Error)
	require.NoError(t, db.Create(&feeModel.BrokeragePayment{
		BrokeragePaymentClassID:        req.ClassRequestID,
		BrokeragePaymentTutorID:        tutorID,
		BrokeragePaymentContractAmount: 1200000,
		BrokeragePaymentFeePercentage:  10,
		BrokeragePaymentCalculatedFee:  120000,
		BrokeragePaymentActualFee:      120000,
	}).Error)

	require.NoError(t, svc.Delete(req.ClassRequestID))

	var apps, contracts, fees, classes int64
	db.Model(&appModel.TutorApplication{}).Count(&apps)
	db.Model(&contractModel.Contract{}).Count(&contracts)
	db.Model(&feeModel.BrokeragePayment{}).Count(&fees)
	db.Model(&model.ClassRequest{}).Count(&classes)
	assert.Zero(t, apps)
	assert.Zero(t, contracts)
	assert.Zero(t, fees)
	assert.Zero(t, classes)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	err := svc.Delete(uuid.New())
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}

func TestListByCustomer(t *testing.T) {
	svc := NewClassRequestService(newTestDB(t))
	customerID := uuid.New()
	require.NoError(t, svc.Create(newRequest(customerID)))
	require.NoError(t, svc.Create(newRequest(customerID)))
	require.NoError(t, svc.Create(newRequest(uuid.New())))

	rows, total, err := svc.ListByCustomer(customerID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)
}
