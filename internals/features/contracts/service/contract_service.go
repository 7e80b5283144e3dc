// file: internals/features/contracts/service/contract_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "lesku_backend/internals/features/classes/class_requests/model"
	appModel "lesku_backend/internals/features/classes/tutor_applications/model"
	"lesku_backend/internals/features/contracts/model"
	"lesku_backend/internals/helpers/domainerr"
)

type ContractService struct {
	DB *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{DB: db}
}

// CreateContract menerbitkan kontrak untuk pasangan (kelas, tutor) dalam satu
// transaksi:
//  1. kelas berpindah approved → matched + selected_tutor_id terisi (conditional
//     update; gagal berarti kelas sudah matched oleh proses lain),
//  2. lamaran tutor terpilih menjadi selected (harus ada dan berstatus
//     approved),
//  3. lamaran lain pada kelas yang sama otomatis rejected,
//  4. baris kontrak disisipkan dengan customer diambil dari kelas.
//
// Gagal di langkah mana pun membatalkan seluruhnya.
func (s *ContractService) CreateContract(in *model.Contract) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cls classModel.ClassRequest
		if err := tx.First(&cls, "class_request_id = ?", in.ContractClassID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domainerr.New(domainerr.KindNotFound, "kelas tidak ditemukan")
			}
			return domainerr.Persistence("mengambil kelas", err)
		}

		// 1) Flip status kelas. RowsAffected 0 = kelas tidak lagi approved.
		res := tx.Model(&classModel.ClassRequest{}).
			Where("class_request_id = ? AND class_request_status = ?",
				in.ContractClassID, classModel.ClassRequestStatusApproved).
			Updates(map[string]interface{}{
				"class_request_status":            classModel.ClassRequestStatusMatched,
				"class_request_selected_tutor_id": in.ContractTutorID,
			})
		if res.Error != nil {
			return domainerr.Persistence("memperbarui status kelas", res.Error)
		}
		if res.RowsAffected == 0 {
			return domainerr.New(domainerr.KindInvalidStateTransition,
				"kelas tidak berstatus approved sehingga kontrak tidak dapat diterbitkan")
		}

		// 2) Lamaran tutor terpilih: approved → selected.
		res = tx.Model(&appModel.TutorApplication{}).
			Where("tutor_application_class_id = ? AND tutor_application_tutor_id = ? AND tutor_application_status = ?",
				in.ContractClassID, in.ContractTutorID, appModel.TutorApplicationStatusApproved).
			Update("tutor_application_status", appModel.TutorApplicationStatusSelected)
		if res.Error != nil {
			return domainerr.Persistence("menandai lamaran terpilih", res.Error)
		}
		if res.RowsAffected == 0 {
			return domainerr.New(domainerr.KindInvalidStateTransition,
				"tutor belum memiliki lamaran approved pada kelas ini")
		}

		// 3) Sisanya gugur otomatis.
		if err := tx.Model(&appModel.TutorApplication{}).
			Where("tutor_application_class_id = ? AND tutor_application_tutor_id <> ? AND tutor_application_status IN ?",
				in.ContractClassID, in.ContractTutorID,
				[]appModel.TutorApplicationStatus{
					appModel.TutorApplicationStatusPending,
					appModel.TutorApplicationStatusApproved,
				}).
			Update("tutor_application_status", appModel.TutorApplicationStatusRejected).Error; err != nil {
			return domainerr.Persistence("menolak lamaran lain", err)
		}

		// 4) Baris kontrak.
		in.ContractCustomerID = cls.ClassRequestCustomerID
		in.ContractStatus = model.ContractStatusActive
		if err := tx.Create(in).Error; err != nil {
			return domainerr.Persistence("menyimpan kontrak", err)
		}

		log.Printf("[CONTRACT] issued id=%s class=%s tutor=%s amount=%.2f",
			in.ContractID, in.ContractClassID, in.ContractTutorID, in.ContractAmount)
		return nil
	})
}

func (s *ContractService) GetByID(id uuid.UUID) (*model.Contract, error) {
	var m model.Contract
	if err := s.DB.First(&m, "contract_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "kontrak tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil kontrak", err)
	}
	return &m, nil
}

// List dengan filter opsional status; dipakai dashboard staff.
func (s *ContractService) List(status string, limit, offset int) ([]model.Contract, int64, error) {
	q := s.DB.Model(&model.Contract{})
	if status != "" {
		q = q.Where("contract_status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung kontrak", err)
	}
	var rows []model.Contract
	if err := q.
		Order("contract_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar kontrak", err)
	}
	return rows, total, nil
}

// ListByUser mengembalikan kontrak di mana user menjadi customer atau tutor.
func (s *ContractService) ListByUser(userID uuid.UUID, limit, offset int) ([]model.Contract, int64, error) {
	q := s.DB.Model(&model.Contract{}).
		Where("contract_customer_id = ? OR contract_tutor_id = ?", userID, userID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung kontrak", err)
	}
	var rows []model.Contract
	if err := q.
		Order("contract_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar kontrak", err)
	}
	return rows, total, nil
}

// UpdateStatus: active → completed|cancelled. Status terminal tidak bisa diubah lagi.
func (s *ContractService) UpdateStatus(id uuid.UUID, to model.ContractStatus) (*model.Contract, error) {
	if to != model.ContractStatusCompleted && to != model.ContractStatusCancelled {
		return nil, domainerr.New(domainerr.KindInvalidStateTransition,
			"status tujuan kontrak tidak dikenal")
	}
	res := s.DB.Model(&model.Contract{}).
		Where("contract_id = ? AND contract_status = ?", id, model.ContractStatusActive).
		Update("contract_status", to)
	if res.Error != nil {
		return nil, domainerr.Persistence("memperbarui status kontrak", res.Error)
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := s.DB.Model(&model.Contract{}).
			Where("contract_id = ?", id).Count(&exists).Error; err != nil {
			return nil, domainerr.Persistence("memeriksa kontrak", err)
		}
		if exists == 0 {
			return nil, domainerr.New(domainerr.KindNotFound, "kontrak tidak ditemukan")
		}
		return nil, domainerr.New(domainerr.KindInvalidStateTransition,
			"kontrak yang sudah berakhir tidak dapat diubah")
	}
	log.Printf("[CONTRACT] status id=%s to=%s", id, to)
	return s.GetByID(id)
}
