package dto

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=sick personal emergency vacation"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,min=5"`
}

type DecideLeaveRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}
