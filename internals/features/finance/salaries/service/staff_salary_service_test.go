// file: internals/features/finance/salaries/service/staff_salary_service_test.go
package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesku_backend/internals/features/finance/salaries/model"
	"lesku_backend/internals/helpers/domainerr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.StaffSalary{}))
	return db
}

func newSalary(staffID uuid.UUID) *model.StaffSalary {
	return &model.StaffSalary{
		StaffSalaryStaffID:    staffID,
		StaffSalaryMonth:      8,
		StaffSalaryYear:       2026,
		StaffSalaryBaseAmount: 5000000,
		StaffSalaryBonus:      500000,
		StaffSalaryDeduction:  200000,
	}
}

func TestUpsert_ComputesTotal(t *testing.T) {
	svc := NewStaffSalaryService(newTestDB(t))
	out, err := svc.Upsert(newSalary(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, 5300000.0, out.StaffSalaryTotal)
	assert.Equal(t, model.StaffSalaryStatusPending, out.StaffSalaryStatus)
}

func TestUpsert_SamePeriodOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffSalaryService(db)
	staffID := uuid.New()

	first, err := svc.Upsert(newSalary(staffID))
	require.NoError(t, err)

	again := newSalary(staffID)
	again.StaffSalaryBonus = 1000000
	second, err := svc.Upsert(again)
	require.NoError(t, err)

	// Tetap satu baris untuk periode itu, ID tidak berubah, total dihitung ulang.
	var count int64
	db.Model(&model.StaffSalary{}).Count(&count)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, first.StaffSalaryID, second.StaffSalaryID)
	assert.Equal(t, 5800000.0, second.StaffSalaryTotal)
}

func TestUpsert_DifferentPeriodsCoexist(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffSalaryService(db)
	staffID := uuid.New()

	_, err := svc.Upsert(newSalary(staffID))
	require.NoError(t, err)

	next := newSalary(staffID)
	next.StaffSalaryMonth = 9
	_, err = svc.Upsert(next)
	require.NoError(t, err)

	var count int64
	db.Model(&model.StaffSalary{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestMarkPaid_ThenPendingAgain(t *testing.T) {
	svc := NewStaffSalaryService(newTestDB(t))
	out, err := svc.Upsert(newSalary(uuid.New()))
	require.NoError(t, err)

	paid, err := svc.MarkPaid(out.StaffSalaryID)
	require.NoError(t, err)
	assert.Equal(t, model.StaffSalaryStatusPaid, paid.StaffSalaryStatus)
	require.NotNil(t, paid.StaffSalaryPaidDate)

	// Sudah paid → MarkPaid kedua ditolak.
	_, err = svc.MarkPaid(out.StaffSalaryID)
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidStateTransition))

	// Pembatalan mengosongkan paid_date.
	back, err := svc.MarkPending(out.StaffSalaryID)
	require.NoError(t, err)
	assert.Equal(t, model.StaffSalaryStatusPending, back.StaffSalaryStatus)
	assert.Nil(t, back.StaffSalaryPaidDate)
}

func TestMarkPaid_NotFound(t *testing.T) {
	svc := NewStaffSalaryService(newTestDB(t))
	_, err := svc.MarkPaid(uuid.New())
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}

func TestList_Filters(t *testing.T) {
	svc := NewStaffSalaryService(newTestDB(t))
	staffA, staffB := uuid.New(), uuid.New()

	_, err := svc.Upsert(newSalary(staffA))
	require.NoError(t, err)
	b := newSalary(staffB)
	b.StaffSalaryMonth = 7
	_, err = svc.Upsert(b)
	require.NoError(t, err)

	_, total, err := svc.List(&staffA, 0, 0, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.List(nil, 7, 2026, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.List(nil, 0, 2026, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
