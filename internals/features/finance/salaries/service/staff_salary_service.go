// file: internals/features/finance/salaries/service/staff_salary_service.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lesku_backend/internals/features/finance/salaries/model"
	"lesku_backend/internals/helpers/domainerr"
)

type StaffSalaryService struct {
	DB *gorm.DB
}

func NewStaffSalaryService(db *gorm.DB) *StaffSalaryService {
	return &StaffSalaryService{DB: db}
}

// Upsert menyimpan gaji per (staff, bulan, tahun). Periode yang sudah ada
// ditimpa dan totalnya dihitung ulang; status & paid_date baris lama
// dipertahankan.
func (s *StaffSalaryService) Upsert(in *model.StaffSalary) (*model.StaffSalary, error) {
	in.StaffSalaryTotal = in.StaffSalaryBaseAmount + in.StaffSalaryBonus - in.StaffSalaryDeduction
	if in.StaffSalaryStatus == "" {
		in.StaffSalaryStatus = model.StaffSalaryStatusPending
	}

	if err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "staff_salary_staff_id"},
			{Name: "staff_salary_month"},
			{Name: "staff_salary_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"staff_salary_base_amount",
			"staff_salary_bonus",
			"staff_salary_deduction",
			"staff_salary_total",
			"staff_salary_notes",
			"staff_salary_updated_at",
		}),
	}).Create(in).Error; err != nil {
		return nil, domainerr.Persistence("menyimpan gaji staff", err)
	}

	// Baca ulang lewat kunci periode: saat konflik, ID yang digenerate di
	// memori bukan ID baris yang sebenarnya tersimpan.
	out, err := s.GetByPeriod(in.StaffSalaryStaffID, in.StaffSalaryMonth, in.StaffSalaryYear)
	if err != nil {
		return nil, err
	}
	log.Printf("[STAFF_SALARY] upsert staff=%s period=%02d/%d total=%.2f",
		out.StaffSalaryStaffID, out.StaffSalaryMonth, out.StaffSalaryYear, out.StaffSalaryTotal)
	return out, nil
}

func (s *StaffSalaryService) GetByID(id uuid.UUID) (*model.StaffSalary, error) {
	var m model.StaffSalary
	if err := s.DB.First(&m, "staff_salary_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "gaji staff tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil gaji staff", err)
	}
	return &m, nil
}

func (s *StaffSalaryService) GetByPeriod(staffID uuid.UUID, month, year int) (*model.StaffSalary, error) {
	var m model.StaffSalary
	if err := s.DB.
		Where("staff_salary_staff_id = ? AND staff_salary_month = ? AND staff_salary_year = ?",
			staffID, month, year).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domainerr.New(domainerr.KindNotFound, "gaji staff tidak ditemukan")
		}
		return nil, domainerr.Persistence("mengambil gaji staff", err)
	}
	return &m, nil
}

// List dengan filter opsional staff & periode.
func (s *StaffSalaryService) List(staffID *uuid.UUID, month, year int, limit, offset int) ([]model.StaffSalary, int64, error) {
	q := s.DB.Model(&model.StaffSalary{})
	if staffID != nil {
		q = q.Where("staff_salary_staff_id = ?", *staffID)
	}
	if month > 0 {
		q = q.Where("staff_salary_month = ?", month)
	}
	if year > 0 {
		q = q.Where("staff_salary_year = ?", year)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, domainerr.Persistence("menghitung gaji staff", err)
	}
	var rows []model.StaffSalary
	if err := q.
		Order("staff_salary_year DESC, staff_salary_month DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, domainerr.Persistence("mengambil daftar gaji staff", err)
	}
	return rows, total, nil
}

// MarkPaid: pending → paid + paid_date sekarang.
func (s *StaffSalaryService) MarkPaid(id uuid.UUID) (*model.StaffSalary, error) {
	return s.setStatus(id, model.StaffSalaryStatusPaid, model.StaffSalaryStatusPending)
}

// MarkPending membatalkan tanda bayar (salah klik).
func (s *StaffSalaryService) MarkPending(id uuid.UUID) (*model.StaffSalary, error) {
	return s.setStatus(id, model.StaffSalaryStatusPending, model.StaffSalaryStatusPaid)
}

func (s *StaffSalaryService) setStatus(id uuid.UUID, to, from model.StaffSalaryStatus) (*model.StaffSalary, error) {
	patch := map[string]interface{}{"staff_salary_status": to}
	if to == model.StaffSalaryStatusPaid {
		patch["staff_salary_paid_date"] = time.Now()
	} else {
		patch["staff_salary_paid_date"] = nil
	}
	res := s.DB.Model(&model.StaffSalary{}).
		Where("staff_salary_id = ? AND staff_salary_status = ?", id, from).
		Updates(patch)
	if res.Error != nil {
		return nil, domainerr.Persistence("memperbarui status gaji", res.Error)
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := s.DB.Model(&model.StaffSalary{}).
			Where("staff_salary_id = ?", id).Count(&exists).Error; err != nil {
			return nil, domainerr.Persistence("memeriksa gaji staff", err)
		}
		if exists == 0 {
			return nil, domainerr.New(domainerr.KindNotFound, "gaji staff tidak ditemukan")
		}
		return nil, domainerr.New(domainerr.KindInvalidStateTransition,
			"status gaji tidak mengizinkan transisi ini")
	}
	return s.GetByID(id)
}
