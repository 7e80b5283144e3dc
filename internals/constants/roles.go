package constants

import "fmt"

// Role adalah himpunan tertutup role aplikasi.
// Jangan pakai string bebas di luar konstanta ini.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleTutor    = "tutor"
	RoleCustomer = "customer"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess    = "❌ Hanya staff atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyTutorsCanAccess   = "❌ Hanya tutor yang boleh mengakses fitur %s."
	ErrOnlyCustomerCanAccess = "❌ Hanya customer yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutorsCanAccess, feature)
}

func RoleErrorCustomer(feature string) string {
	return fmt.Sprintf(ErrOnlyCustomerCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
// Matriks role × operasi dipasang lewat group route + OnlyRoles:
// - StaffAndAbove : approve/reject/delete class & application, buat kontrak
// - AdminOnly     : brokerage payment, payment settings, staff salary
// - TutorOnly     : submit application, profil tutor
// - CustomerOnly  : buat class request
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStaff,
		RoleTutor,
		RoleCustomer,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	TutorOnly = []string{
		RoleTutor,
	}

	CustomerOnly = []string{
		RoleCustomer,
	}
)

// IsValidRole untuk validasi input role (register oleh admin dsb).
func IsValidRole(r string) bool {
	for _, v := range AllRoles {
		if v == r {
			return true
		}
	}
	return false
}
