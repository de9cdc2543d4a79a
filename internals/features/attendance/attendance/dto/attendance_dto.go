package dto

// CheckRequest membawa koordinat hasil geolocation browser.
// Koordinat boleh kosong kalau device tidak mendukung: nanti ditolak
// oleh location provider, bukan oleh validasi body.
type CheckRequest struct {
	Lat *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`
}

// ListAttendanceQuery: filter listing absensi untuk admin/supervisor.
type ListAttendanceQuery struct {
	UserID   *string `query:"user_id" validate:"omitempty,uuid4"`
	DateFrom *string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   *string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Status   *string `query:"status" validate:"omitempty,oneof=present absent late early_leave"`
}

// SummaryResponse: rekap bulanan untuk kartu dashboard.
type SummaryResponse struct {
	Month      string `json:"month"` // yyyy-MM
	Present    int64  `json:"present"`
	Late       int64  `json:"late"`
	EarlyLeave int64  `json:"early_leave"`
	Absent     int64  `json:"absent"`
	TotalDays  int64  `json:"total_days"`
}

// QRCodeResponse: payload QR harian (varian JSON dari endpoint PNG).
type QRCodeResponse struct {
	Payload string `json:"payload"`
	Date    string `json:"date"`
}
