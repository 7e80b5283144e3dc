// file: internals/features/users/tutors/service/tutor_profile_service_test.go
package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lesku_backend/internals/features/users/tutors/model"
	"lesku_backend/internals/helpers/domainerr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TutorProfile{}))
	return db
}

func TestUpsert_OneProfilePerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewTutorProfileService(db)
	userID := uuid.New()

	first, err := svc.Upsert(&model.TutorProfile{
		TutorProfileUserID:   userID,
		TutorProfileBio:      "Guru les privat",
		TutorProfileSubjects: pq.StringArray{"Matematika", "Fisika"},
	})
	require.NoError(t, err)

	second, err := svc.Upsert(&model.TutorProfile{
		TutorProfileUserID:     userID,
		TutorProfileBio:        "Guru les privat & olimpiade",
		TutorProfileSubjects:   pq.StringArray{"Matematika"},
		TutorProfileHourlyRate: 150000,
	})
	require.NoError(t, err)

	var count int64
	db.Model(&model.TutorProfile{}).Count(&count)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, first.TutorProfileID, second.TutorProfileID)
	assert.Equal(t, "Guru les privat & olimpiade", second.TutorProfileBio)
	assert.Equal(t, 150000.0, second.TutorProfileHourlyRate)
	assert.Equal(t, []string{"Matematika"}, []string(second.TutorProfileSubjects))
}

func TestGetByUserID_NotFound(t *testing.T) {
	svc := NewTutorProfileService(newTestDB(t))
	_, err := svc.GetByUserID(uuid.New())
	require.Error(t, err)
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}
