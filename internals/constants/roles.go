package constants

import "fmt"

// ==========================
// ✅ Role dasar aplikasi
// ==========================
// normal   → user biasa, hanya boleh baca konten publik
// arranger → boleh submit & kelola arrangement miliknya sendiri
// admin    → moderasi penuh (approve/reject) + kelola semua data
const (
	RoleNormal   = "normal"
	RoleArranger = "arranger"
	RoleAdmin    = "admin"
)

// Template pesan error role
const (
	ErrOnlyArrangersCanAccess = "❌ Hanya arranger atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorArranger(feature string) string {
	return fmt.Sprintf(ErrOnlyArrangersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleNormal,
		RoleArranger,
		RoleAdmin,
	}

	ArrangerAndAbove = []string{
		RoleArranger,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsKnownRole memastikan role dari token termasuk role yang dikenal aplikasi.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
