package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleModel: jadwal kerja/kegiatan harian intern.
type ScheduleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;column:user_id;index:idx_schedules_user_date" json:"user_id"`
	Date        string    `gorm:"type:date;not null;index:idx_schedules_user_date" json:"date"`
	StartTime   string    `gorm:"type:varchar(5);not null;column:start_time" json:"start_time"` // HH:mm
	EndTime     string    `gorm:"type:varchar(5);not null;column:end_time" json:"end_time"`     // HH:mm
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
