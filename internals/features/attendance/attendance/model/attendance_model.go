// internals/features/attendance/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"magangku_backend/internals/features/attendance/location"
)

type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceLate       AttendanceStatus = "late"
	AttendanceEarlyLeave AttendanceStatus = "early_leave"
)

// DateLayout adalah date key harian (kunci unik per user per hari),
// dihitung dari jam lokal server.
const DateLayout = "2006-01-02"

// AttendanceModel: satu baris per (user, tanggal).
type AttendanceModel struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date   string    `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`

	CheckInTime  *time.Time `gorm:"column:check_in_time" json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `gorm:"column:check_out_time" json:"check_out_time,omitempty"`

	CheckInLocation  *datatypes.JSONType[location.Location] `gorm:"type:jsonb;column:check_in_location" json:"check_in_location,omitempty"`
	CheckOutLocation *datatypes.JSONType[location.Location] `gorm:"type:jsonb;column:check_out_location" json:"check_out_location,omitempty"`

	Status AttendanceStatus `gorm:"type:varchar(16);not null;default:'absent'" json:"status"`
	Notes  *string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

// NewLocationColumn membungkus Location jadi kolom JSONB.
func NewLocationColumn(loc location.Location) *datatypes.JSONType[location.Location] {
	v := datatypes.NewJSONType(loc)
	return &v
}
