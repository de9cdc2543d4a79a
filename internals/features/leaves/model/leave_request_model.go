package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType string

const (
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveEmergency LeaveType = "emergency"
	LeaveVacation  LeaveType = "vacation"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// LeaveRequestModel: pengajuan izin/cuti intern.
type LeaveRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id;index" json:"user_id"`
	LeaveType LeaveType `gorm:"type:varchar(16);not null;column:leave_type" json:"leave_type"`
	StartDate string    `gorm:"type:date;not null;column:start_date" json:"start_date"`
	EndDate   string    `gorm:"type:date;not null;column:end_date" json:"end_date"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`

	ApprovalStatus ApprovalStatus `gorm:"type:varchar(16);not null;default:'pending';column:approval_status;index" json:"approval_status"`
	ApprovedBy     *uuid.UUID     `gorm:"type:uuid;column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at" json:"approved_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}
