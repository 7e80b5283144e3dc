// file: internals/features/classes/class_requests/service/class_request_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appModel "lesku_backend/internals/features/classes/tutor_applications/model"
	contractModel "lesku_backend/internals/features/contracts/model"
	feeModel "lesku_backend/internals/features/finance/brokerage/model"
	"lesku_backend/internals/helpers/domainerr"

	"lesku_backend/internals/features/classes/class_requests/model"
)

// Batas permintaan pending per customer.
const MaxPendingPerCustomer = 5

type ClassRequestService struct {
	DB *gorm.DB
}

func NewClassRequestService(db *gorm.DB) *ClassRequestService {
	return &ClassRequestService{DB: db}
}

// Create menyimpan permintaan kelas baru (status selalu pending).
// Menolak bila customer sudah punya >= MaxPendingPerCustomer permintaan pending.
func (s *ClassRequestService) Create(req *model.ClassRequest) error {
	req.ClassRequestStatus = model.ClassRequestStatusPending
	req.ClassRequestSelectedTutorID = nil

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var pending int64
		if err := tx.Model(&model.ClassRequest{}).
			Where("class_request_customer_id = ? AND class_request_status = ?",
				req.ClassRequestCustomerID, model.ClassRequestStatusPending).
			Count(&pending).Error; err != nil {
			return domainerr.Persistence("menghitung permintaan pending", err)
		}
		if pending >= MaxPendingPerCustomer {
			return domainerr.New(domainerr.KindTooManyPendingRequests,
				"jumlah permintaan pending sudah mencapai batas")
		}

		if err := tx.Create(req).Error; err != nil {
			return domainerr.Persistence("menyimpan permintaan kelas", err)
		}
		log.Printf("[CLASS_REQUEST] created id=%s customer=%s subject=%q",
			req.ClassRequestID, req.ClassRequestCustomerID, req.ClassRequestSubject)
		return nil
	})
}

func (s *ClassRequestService) GetByID(id uuid.UUID) (*model.ClassRequest, error) {
	var m model.ClassRequest
	if err := s.DB.First(&m, "class_request_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "permintaan kelas tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil permintaan kelas", err)
	}
	return &m, nil
}

// ListByCustomer mengembalikan permintaan milik satu customer, terbaru dulu.
func (s *ClassRequestService) ListByCustomer(customerID uuid.UUID, limit, offset int) ([]model.ClassRequest, int64, error) {
	return s.list(s.DB.Where("class_request_customer_id = ?", customerID), limit, offset)
}

// ListByStatus untuk dashboard staff; status kosong berarti semua.
func (s *ClassRequestService) ListByStatus(status string, limit, offset int) ([]model.ClassRequest, int64, error) {
	q := s.DB.Model(&model.ClassRequest{})
	if status != "" {
		q = q.Where("class_request_status = ?", status)
	}
	return s.list(q, limit, offset)
}

func (s *ClassRequestService) list(q *gorm.DB, limit, offset int) ([]model.ClassRequest, int64, error) {
	var total int64
	if err := q.Model(&model.ClassRequest{}).Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung permintaan kelas", err)
	}
	var rows []model.ClassRequest
	if err := q.
		Order("class_request_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar permintaan kelas", err)
	}
	return rows, total, nil
}

// UpdateDetails mengubah isi permintaan; hanya boleh selama masih pending.
func (s *ClassRequestService) UpdateDetails(id uuid.UUID, patch map[string]interface{}) (*model.ClassRequest, error) {
	if len(patch) == 0 {
		return s.GetByID(id)
	}
	res := s.DB.Model(&model.ClassRequest{}).
		Where("class_request_id = ? AND class_request_status = ?", id, model.ClassRequestStatusPending).
		Updates(patch)
	if res.Error != nil {
		return nil, domainerr.Persistence("mengubah permintaan kelas", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.explainMiss(id, "permintaan hanya dapat diubah selama pending")
	}
	return s.GetByID(id)
}

// Approve: pending → approved (conditional update, aman dari balapan).
func (s *ClassRequestService) Approve(id uuid.UUID) (*model.ClassRequest, error) {
	return s.transition(id, model.ClassRequestStatusApproved, model.ClassRequestStatusPending)
}

// Reject: pending → rejected.
func (s *ClassRequestService) Reject(id uuid.UUID) (*model.ClassRequest, error) {
	return s.transition(id, model.ClassRequestStatusRejected, model.ClassRequestStatusPending)
}

// Complete: matched → completed.
func (s *ClassRequestService) Complete(id uuid.UUID) (*model.ClassRequest, error) {
	return s.transition(id, model.ClassRequestStatusCompleted, model.ClassRequestStatusMatched)
}

func (s *ClassRequestService) transition(id uuid.UUID, to model.ClassRequestStatus, from ...model.ClassRequestStatus) (*model.ClassRequest, error) {
	res := s.DB.Model(&model.ClassRequest{}).
		Where("class_request_id = ? AND class_request_status IN ?", id, from).
		Update("class_request_status", to)
	if res.Error != nil {
		return nil, domainerr.Persistence("memperbarui status permintaan kelas", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.explainMiss(id, "status permintaan tidak mengizinkan transisi ini")
	}
	log.Printf("[CLASS_REQUEST] transition id=%s to=%s", id, to)
	return s.GetByID(id)
}

// explainMiss membedakan not-found dari state salah setelah conditional update kosong.
func (s *ClassRequestService) explainMiss(id uuid.UUID, stateMsg string) error {
	var exists int64
	if err := s.DB.Model(&model.ClassRequest{}).
		Where("class_request_id = ?", id).Count(&exists).Error; err != nil {
		return domainerr.Persistence("memeriksa permintaan kelas", err)
	}
	if exists == 0 {
		return domainerr.New(domainerr.KindNotFound, "permintaan kelas tidak ditemukan")
	}
	return domainerr.New(domainerr.KindInvalidStateTransition, stateMsg)
}

// Delete menghapus permintaan beserta seluruh turunannya
// (lamaran tutor, kontrak, dan fee broker) dalam satu transaksi.
func (s *ClassRequestService) Delete(id uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var m model.ClassRequest
		if err := tx.First(&m, "class_request_id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domainerr.New(domainerr.KindNotFound, "permintaan kelas tidak ditemukan")
			}
			return domainerr.Persistence("mengambil permintaan kelas", err)
		}

		if err := tx.Where("brokerage_payment_class_id = ?", id).
			Delete(&feeModel.BrokeragePayment{}).Error; err != nil {
			return domainerr.Persistence("menghapus fee broker turunan", err)
		}
		if err := tx.Where("contract_class_id = ?", id).
			Delete(&contractModel.Contract{}).Error; err != nil {
			return domainerr.Persistence("menghapus kontrak turunan", err)
		}
		if err := tx.Where("tutor_application_class_id = ?", id).
			Delete(&appModel.TutorApplication{}).Error; err != nil {
			return domainerr.Persistence("menghapus lamaran turunan", err)
		}
		if err := tx.Delete(&m).Error; err != nil {
			return domainerr.Persistence("menghapus permintaan kelas", err)
		}

		log.Printf("[CLASS_REQUEST] deleted id=%s (cascade)", id)
		return nil
	})
}
