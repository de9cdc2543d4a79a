package service

import (
	"testing"

	"magangku_backend/internals/features/attendance/attendance/model"
)

func TestDeriveCheckInStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hour  int
		want  model.AttendanceStatus
	}{
		{"early morning", 6, model.AttendancePresent},
		{"exactly hour eight", 8, model.AttendancePresent},
		{"one hour past eight", 9, model.AttendanceLate},
		{"midday", 12, model.AttendanceLate},
		{"midnight", 0, model.AttendancePresent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveCheckInStatus(tt.hour); got != tt.want {
				t.Fatalf("DeriveCheckInStatus(%d) = %q, want %q", tt.hour, got, tt.want)
			}
		})
	}
}

func TestDeriveCheckOutStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hour  int
		prior model.AttendanceStatus
		want  model.AttendanceStatus
	}{
		{"before five pm becomes early leave", 16, model.AttendancePresent, model.AttendanceEarlyLeave},
		{"before five pm overrides late", 10, model.AttendanceLate, model.AttendanceEarlyLeave},
		{"exactly five pm keeps present", 17, model.AttendancePresent, model.AttendancePresent},
		{"exactly five pm keeps late", 17, model.AttendanceLate, model.AttendanceLate},
		{"evening keeps late", 18, model.AttendanceLate, model.AttendanceLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveCheckOutStatus(tt.hour, tt.prior); got != tt.want {
				t.Fatalf("DeriveCheckOutStatus(%d, %q) = %q, want %q", tt.hour, tt.prior, got, tt.want)
			}
		})
	}
}
