// file: internals/features/finance/brokerage/service/brokerage_service.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/features/finance/brokerage/model"
	"lesku_backend/internals/helpers/domainerr"
)

type BrokerageService struct {
	DB *gorm.DB
}

func NewBrokerageService(db *gorm.DB) *BrokerageService {
	return &BrokerageService{DB: db}
}

// CreatePaymentInput adalah masukan pembuatan tagihan fee.
type CreatePaymentInput struct {
	ClassID        uuid.UUID
	TutorID        uuid.UUID
	ContractID     *uuid.UUID
	ContractAmount float64
	// ActualFee opsional; bila nil dipakai hasil kalkulasi.
	ActualFee *float64
	DueDate   *time.Time
	Notes     *string
}

// UpdatePaymentInput adalah patch parsial; field nil tidak disentuh.
type UpdatePaymentInput struct {
	Status    *string
	ActualFee *float64
	DueDate   *time.Time
	Notes     *string
}

// ========================= SETTINGS =========================

// ActiveSetting mengambil kebijakan fee yang sedang berlaku.
func (s *BrokerageService) ActiveSetting() (*model.PaymentSetting, error) {
	return s.activeSetting(s.DB)
}

func (s *BrokerageService) activeSetting(db *gorm.DB) (*model.PaymentSetting, error) {
	var m model.PaymentSetting
	if err := db.
		Where("payment_setting_is_active = ?", true).
		Order("payment_setting_created_at DESC").
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNoActivePolicy,
				"belum ada kebijakan fee yang aktif")
		}
		return nil, domainerr.Persistence("mengambil kebijakan fee", err)
	}
	return &m, nil
}

// UpdateSettings mengganti kebijakan: baris lama dinonaktifkan, baris baru
// disisipkan — satu transaksi, riwayat tidak pernah dihapus.
func (s *BrokerageService) UpdateSettings(feePct, minFee float64, maxFee *float64) (*model.PaymentSetting, error) {
	next := model.PaymentSetting{
		PaymentSettingFeePercentage: feePct,
		PaymentSettingMinimumFee:    minFee,
		PaymentSettingMaximumFee:    maxFee,
		PaymentSettingIsActive:      true,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PaymentSetting{}).
			Where("payment_setting_is_active = ?", true).
			Update("payment_setting_is_active", false).Error; err != nil {
			return domainerr.Persistence("menonaktifkan kebijakan lama", err)
		}
		if err := tx.Create(&next).Error; err != nil {
			return domainerr.Persistence("menyimpan kebijakan baru", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[BROKERAGE] settings updated pct=%.2f min=%.2f", feePct, minFee)
	return &next, nil
}

// SettingsHistory mengembalikan seluruh riwayat kebijakan, terbaru dulu.
func (s *BrokerageService) SettingsHistory(limit, offset int) ([]model.PaymentSetting, int64, error) {
	var total int64
	if err := s.DB.Model(&model.PaymentSetting{}).Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung riwayat kebijakan", err)
	}
	var rows []model.PaymentSetting
	if err := s.DB.
		Order("payment_setting_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil riwayat kebijakan", err)
	}
	return rows, total, nil
}

// ========================= KALKULASI =========================

// applyClamp: persen dulu, lalu batas bawah, terakhir batas atas (bila diset).
// Urutan ini disengaja; minimum > maksimum berarti plafon yang menang.
func applyClamp(amount float64, st *model.PaymentSetting) float64 {
	fee := amount * st.PaymentSettingFeePercentage / 100
	if fee < st.PaymentSettingMinimumFee {
		fee = st.PaymentSettingMinimumFee
	}
	if st.PaymentSettingMaximumFee != nil && fee > *st.PaymentSettingMaximumFee {
		fee = *st.PaymentSettingMaximumFee
	}
	return fee
}

// CalculateFee menghitung fee dari nilai kontrak memakai kebijakan aktif.
func (s *BrokerageService) CalculateFee(contractAmount float64) (fee float64, pct float64, err error) {
	st, err := s.ActiveSetting()
	if err != nil {
		return 0, 0, err
	}
	return applyClamp(contractAmount, st), st.PaymentSettingFeePercentage, nil
}

// ========================= PAYMENTS =========================

// CreatePayment membuat tagihan fee untuk pasangan (kelas, tutor). Fee dihitung
// dari kebijakan aktif; persen dan hasil hitungnya disalin ke baris tagihan,
// actual_fee mulai sama dengan calculated_fee. Pasangan yang sudah punya
// tagihan ditolak (pre-check; unik komposit menutup balapan sisanya).
func (s *BrokerageService) CreatePayment(in CreatePaymentInput) (*model.BrokeragePayment, error) {
	var out model.BrokeragePayment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var dup int64
		if err := tx.Model(&model.BrokeragePayment{}).
			Where("brokerage_payment_class_id = ? AND brokerage_payment_tutor_id = ?", in.ClassID, in.TutorID).
			Count(&dup).Error; err != nil {
			return domainerr.Persistence("memeriksa tagihan ganda", err)
		}
		if dup > 0 {
			return domainerr.New(domainerr.KindDuplicateBrokerageFee,
				"tagihan fee untuk pasangan kelas-tutor ini sudah ada")
		}

		st, err := s.activeSetting(tx)
		if err != nil {
			return err
		}
		calculated := applyClamp(in.ContractAmount, st)
		actual := calculated
		if in.ActualFee != nil {
			actual = *in.ActualFee
		}

		out = model.BrokeragePayment{
			BrokeragePaymentClassID:        in.ClassID,
			BrokeragePaymentTutorID:        in.TutorID,
			BrokeragePaymentContractID:     in.ContractID,
			BrokeragePaymentContractAmount: in.ContractAmount,
			BrokeragePaymentFeePercentage:  st.PaymentSettingFeePercentage,
			BrokeragePaymentCalculatedFee:  calculated,
			BrokeragePaymentActualFee:      actual,
			BrokeragePaymentStatus:         model.BrokeragePaymentStatusPending,
			BrokeragePaymentDueDate:        in.DueDate,
			BrokeragePaymentNotes:          in.Notes,
		}
		if err := tx.Create(&out).Error; err != nil {
			return domainerr.Persistence("menyimpan tagihan fee", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[BROKERAGE] payment created id=%s class=%s tutor=%s fee=%.2f",
		out.BrokeragePaymentID, in.ClassID, in.TutorID, out.BrokeragePaymentCalculatedFee)
	return &out, nil
}

func (s *BrokerageService) GetPaymentByID(id uuid.UUID) (*model.BrokeragePayment, error) {
	var m model.BrokeragePayment
	if err := s.DB.First(&m, "brokerage_payment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "tagihan fee tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil tagihan fee", err)
	}
	return &m, nil
}

// ListPayments dengan filter opsional status dan tutor.
func (s *BrokerageService) ListPayments(status string, tutorID *uuid.UUID, limit, offset int) ([]model.BrokeragePayment, int64, error) {
	q := s.DB.Model(&model.BrokeragePayment{})
	if status != "" {
		q = q.Where("brokerage_payment_status = ?", status)
	}
	if tutorID != nil {
		q = q.Where("brokerage_payment_tutor_id = ?", *tutorID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung tagihan fee", err)
	}
	var rows []model.BrokeragePayment
	if err := q.
		Order("brokerage_payment_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar tagihan fee", err)
	}
	return rows, total, nil
}

// UpdatePayment menerapkan patch parsial. Status paid mengisi paid_date
// sekarang; kembali ke pending mengosongkannya; overdue dan waived tidak
// menyentuh tanggal.
func (s *BrokerageService) UpdatePayment(id uuid.UUID, in UpdatePaymentInput) (*model.BrokeragePayment, error) {
	patch := map[string]interface{}{}
	if in.Status != nil {
		switch st := model.BrokeragePaymentStatus(*in.Status); st {
		case model.BrokeragePaymentStatusPaid:
			patch["brokerage_payment_status"] = st
			patch["brokerage_payment_paid_date"] = time.Now()
		case model.BrokeragePaymentStatusPending:
			patch["brokerage_payment_status"] = st
			patch["brokerage_payment_paid_date"] = nil
		case model.BrokeragePaymentStatusOverdue, model.BrokeragePaymentStatusWaived:
			patch["brokerage_payment_status"] = st
		default:
			return nil, domainerr.New(domainerr.KindInvalidStateTransition,
				"status tagihan tidak dikenal")
		}
	}
	if in.ActualFee != nil {
		patch["brokerage_payment_actual_fee"] = *in.ActualFee
	}
	if in.DueDate != nil {
		patch["brokerage_payment_due_date"] = *in.DueDate
	}
	if in.Notes != nil {
		patch["brokerage_payment_notes"] = in.Notes
	}
	if len(patch) == 0 {
		return s.GetPaymentByID(id)
	}

	res := s.DB.Model(&model.BrokeragePayment{}).
		Where("brokerage_payment_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return nil, domainerr.Persistence("memperbarui tagihan fee", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domainerr.New(domainerr.KindNotFound, "tagihan fee tidak ditemukan")
	}
	return s.GetPaymentByID(id)
}
