// file: internals/databases/migrate.go
package database

import (
	"log"

	classModel "lesku_backend/internals/features/classes/class_requests/model"
	appModel "lesku_backend/internals/features/classes/tutor_applications/model"
	contractModel "lesku_backend/internals/features/contracts/model"
	brokerageModel "lesku_backend/internals/features/finance/brokerage/model"
	salaryModel "lesku_backend/internals/features/finance/salaries/model"
	authModel "lesku_backend/internals/features/users/auth/model"
	tutorModel "lesku_backend/internals/features/users/tutors/model"
)

// AutoMigrateAll menyamakan skema dengan model. Idempoten, dipanggil saat boot.
func AutoMigrateAll() {
	if err := DB.AutoMigrate(
		&authModel.User{},
		&authModel.TokenBlacklist{},
		&tutorModel.TutorProfile{},
		&classModel.ClassRequest{},
		&appModel.TutorApplication{},
		&contractModel.Contract{},
		&brokerageModel.PaymentSetting{},
		&brokerageModel.BrokeragePayment{},
		&salaryModel.StaffSalary{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
