package dto

import (
	userDTO "magangku_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Email               string  `json:"email" validate:"required,email"`
	Password            string  `json:"password" validate:"required,min=8"`
	FullName            string  `json:"full_name" validate:"required,min=3,max=100"`
	Role                string  `json:"role" validate:"required,oneof=intern supervisor admin"`
	SupervisorID        *string `json:"supervisor_id" validate:"omitempty,uuid4"`
	InternshipStartDate *string `json:"internship_start_date" validate:"omitempty,datetime=2006-01-02"`
	InternshipEndDate   *string `json:"internship_end_date" validate:"omitempty,datetime=2006-01-02"`
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	User        userDTO.UserResponse `json:"user"`
}
