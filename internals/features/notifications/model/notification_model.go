package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// NotificationModel: notifikasi in-app per user.
type NotificationModel struct {
	ID      uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID        `gorm:"type:uuid;not null;column:user_id;index" json:"user_id"`
	Title   string           `gorm:"size:150;not null" json:"title"`
	Message string           `gorm:"type:text;not null" json:"message"`
	Type    NotificationType `gorm:"type:varchar(10);not null;default:'info'" json:"type"`
	Read    bool             `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
