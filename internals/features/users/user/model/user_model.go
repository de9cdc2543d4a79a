package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	FullName string    `gorm:"size:100;not null;column:full_name" json:"full_name"`
	Role     string    `gorm:"type:varchar(20);not null;default:'intern'" json:"role"`

	PhotoURL            *string    `gorm:"size:255;column:photo_url" json:"photo_url,omitempty"`
	SupervisorID        *uuid.UUID `gorm:"type:uuid;column:supervisor_id;index" json:"supervisor_id,omitempty"`
	InternshipStartDate *string    `gorm:"type:date;column:internship_start_date" json:"internship_start_date,omitempty"`
	InternshipEndDate   *string    `gorm:"type:date;column:internship_end_date" json:"internship_end_date,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
