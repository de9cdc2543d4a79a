// internals/features/attendance/attendance/service/status.go
package service

import (
	"magangku_backend/internals/features/attendance/attendance/model"
)

// Kebijakan status memakai granularitas jam (bukan menit), mengikuti
// aturan kantor: check-in lewat jam 8 dihitung telat, pulang sebelum
// jam 17 dihitung pulang cepat.

// DeriveCheckInStatus menentukan status saat check-in dari jam lokal.
func DeriveCheckInStatus(localHour int) model.AttendanceStatus {
	if localHour > 8 {
		return model.AttendanceLate
	}
	return model.AttendancePresent
}

// DeriveCheckOutStatus menentukan status akhir saat check-out.
// Sebelum jam 17 status berubah jadi early_leave; selain itu status
// hasil check-in dipertahankan.
func DeriveCheckOutStatus(localHour int, prior model.AttendanceStatus) model.AttendanceStatus {
	if localHour < 17 {
		return model.AttendanceEarlyLeave
	}
	return prior
}
