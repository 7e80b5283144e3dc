// file: internals/features/finance/brokerage/service/brokerage_service_test.go
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

	"lesku_backend/internals/features/finance/brokerage/model"
	"lesku_backend/internals/helpers/domainerr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.PaymentSetting{},
		&model.BrokeragePayment{},
	))
	return db
}

func f(v float64) *float64 { return &v }

// kebijakan standar: 10%, min 50rb, max 500rb
func seedPolicy(t *testing.T, svc *BrokerageService) *model.PaymentSetting {
	t.Helper()
	st, err := svc.UpdateSettings(10, 50000, f(500000))
	require.NoError(t, err)
	return st
}

func newPaymentInput(classID, tutorID uuid.UUID, amount float64) CreatePaymentInput {
	return CreatePaymentInput{ClassID: classID, TutorID: tutorID, ContractAmount: amount}
}

func TestActiveSetting_NonePolicy(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	_, err := svc.ActiveSetting()
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNoActivePolicy))
}

func TestUpdateSettings_KeepsHistorySingleActive(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)
	_, err := svc.UpdateSettings(12.5, 75000, f(600000))
	require.NoError(t, err)

	active, err := svc.ActiveSetting()
	require.NoError(t, err)
	assert.Equal(t, 12.5, active.PaymentSettingFeePercentage)

	rows, total, err := svc.SettingsHistory(10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	activeCount := 0
	for _, r := range rows {
		if r.PaymentSettingIsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestCalculateFee_PercentWithinBounds(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	fee, pct, err := svc.CalculateFee(1000000)
	require.NoError(t, err)
	assert.Equal(t, 10.0, pct)
	assert.Equal(t, 100000.0, fee)
}

func TestCalculateFee_FloorApplied(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	// 10% dari 300rb = 30rb < minimum 50rb
	fee, _, err := svc.CalculateFee(300000)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, fee)
}

func TestCalculateFee_CeilingApplied(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	// 10% dari 10jt = 1jt > maksimum 500rb
	fee, _, err := svc.CalculateFee(10000000)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, fee)
}

func TestCalculateFee_NoCeiling(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	_, err := svc.UpdateSettings(10, 0, nil)
	require.NoError(t, err)

	fee, _, err := svc.CalculateFee(10000000)
	require.NoError(t, err)
	assert.Equal(t, 1000000.0, fee)
}

func TestCalculateFee_MinAboveMax_CeilingWins(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	// minimum 600rb > maksimum 500rb: floor dulu, plafon terakhir
	_, err := svc.UpdateSettings(10, 600000, f(500000))
	require.NoError(t, err)

	fee, _, err := svc.CalculateFee(1000000)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, fee)
}

func TestCreatePayment_SnapshotsPolicy(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	p, err := svc.CreatePayment(newPaymentInput(uuid.New(), uuid.New(), 2000000))
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.BrokeragePaymentFeePercentage)
	assert.Equal(t, 200000.0, p.BrokeragePaymentCalculatedFee)
	assert.Equal(t, 200000.0, p.BrokeragePaymentActualFee)
	assert.Equal(t, model.BrokeragePaymentStatusPending, p.BrokeragePaymentStatus)

	// Kebijakan berubah → tagihan lama tidak ikut berubah.
	_, err = svc.UpdateSettings(20, 0, nil)
	require.NoError(t, err)

	got, err := svc.GetPaymentByID(p.BrokeragePaymentID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.BrokeragePaymentFeePercentage)
	assert.Equal(t, 200000.0, got.BrokeragePaymentCalculatedFee)
	assert.False(t, got.BrokeragePaymentCreatedAt.IsZero())
}

func TestCreatePayment_ActualFeeOverrideAtCreation(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	in := newPaymentInput(uuid.New(), uuid.New(), 2000000)
	in.ActualFee = f(150000)
	p, err := svc.CreatePayment(in)
	require.NoError(t, err)
	assert.Equal(t, 200000.0, p.BrokeragePaymentCalculatedFee)
	assert.Equal(t, 150000.0, p.BrokeragePaymentActualFee)
}

func TestCreatePayment_DuplicatePairRejected(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	classID, tutorID := uuid.New(), uuid.New()
	_, err := svc.CreatePayment(newPaymentInput(classID, tutorID, 2000000))
	require.NoError(t, err)

	_, err = svc.CreatePayment(newPaymentInput(classID, tutorID, 2500000))
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindDuplicateBrokerageFee))

	// Pasangan lain tetap boleh.
	_, err = svc.CreatePayment(newPaymentInput(classID, uuid.New(), 2000000))
	assert.NoError(t, err)
}

func TestCreatePayment_RequiresActivePolicy(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	_, err := svc.CreatePayment(newPaymentInput(uuid.New(), uuid.New(), 2000000))
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNoActivePolicy))
}

func TestUpdatePayment_PaidSetsDate(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	p, err := svc.CreatePayment(newPaymentInput(uuid.New(), uuid.New(), 2000000))
	require.NoError(t, err)

	paid := "paid"
	got, err := svc.UpdatePayment(p.BrokeragePaymentID, UpdatePaymentInput{Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, model.BrokeragePaymentStatusPaid, got.BrokeragePaymentStatus)
	require.NotNil(t, got.BrokeragePaymentPaidDate)

	// Kembali ke pending → paid_date dikosongkan.
	pending := "pending"
	got, err = svc.UpdatePayment(p.BrokeragePaymentID, UpdatePaymentInput{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, model.BrokeragePaymentStatusPending, got.BrokeragePaymentStatus)
	assert.Nil(t, got.BrokeragePaymentPaidDate)
}

func TestUpdatePayment_OverdueKeepsDates(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.CreatePayment(CreatePaymentInput{
		ClassID: uuid.New(), TutorID: uuid.New(), ContractAmount: 2000000, DueDate: &due,
	})
	require.NoError(t, err)

	overdue := "overdue"
	got, err := svc.UpdatePayment(p.BrokeragePaymentID, UpdatePaymentInput{Status: &overdue})
	require.NoError(t, err)
	assert.Equal(t, model.BrokeragePaymentStatusOverdue, got.BrokeragePaymentStatus)
	assert.Nil(t, got.BrokeragePaymentPaidDate)
	require.NotNil(t, got.BrokeragePaymentDueDate)
	assert.True(t, due.Equal(*got.BrokeragePaymentDueDate))
}

func TestUpdatePayment_ActualFeeOverride(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	p, err := svc.CreatePayment(newPaymentInput(uuid.New(), uuid.New(), 2000000))
	require.NoError(t, err)

	got, err := svc.UpdatePayment(p.BrokeragePaymentID, UpdatePaymentInput{ActualFee: f(175000)})
	require.NoError(t, err)
	assert.Equal(t, 175000.0, got.BrokeragePaymentActualFee)
	// calculated_fee tidak tersentuh
	assert.Equal(t, 200000.0, got.BrokeragePaymentCalculatedFee)
}

func TestUpdatePayment_NotFound(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	paid := "paid"
	_, err := svc.UpdatePayment(uuid.New(), UpdatePaymentInput{Status: &paid})
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}

func TestListPayments_FilterByTutorAndStatus(t *testing.T) {
	svc := NewBrokerageService(newTestDB(t))
	seedPolicy(t, svc)

	tutorID := uuid.New()
	p1, err := svc.CreatePayment(newPaymentInput(uuid.New(), tutorID, 2000000))
	require.NoError(t, err)
	_, err = svc.CreatePayment(newPaymentInput(uuid.New(), uuid.New(), 2000000))
	require.NoError(t, err)

	paid := "paid"
	_, err = svc.UpdatePayment(p1.BrokeragePaymentID, UpdatePaymentInput{Status: &paid})
	require.NoError(t, err)

	_, total, err := svc.ListPayments("", &tutorID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.ListPayments("paid", nil, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.ListPayments("pending", nil, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
