package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/users/user/model"
)

// UserResponse: profil user tanpa field sensitif
type UserResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	FullName            string     `json:"full_name"`
	Role                string     `json:"role"`
	PhotoURL            *string    `json:"photo_url,omitempty"`
	SupervisorID        *uuid.UUID `json:"supervisor_id,omitempty"`
	InternshipStartDate *string    `json:"internship_start_date,omitempty"`
	InternshipEndDate   *string    `json:"internship_end_date,omitempty"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:                  m.ID,
		Email:               m.Email,
		FullName:            m.FullName,
		Role:                m.Role,
		PhotoURL:            m.PhotoURL,
		SupervisorID:        m.SupervisorID,
		InternshipStartDate: m.InternshipStartDate,
		InternshipEndDate:   m.InternshipEndDate,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// UpdateProfileRequest: field yang boleh diubah user sendiri
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
}

// ListUsersQuery: filter listing user untuk admin
type ListUsersQuery struct {
	Role   *string `query:"role" validate:"omitempty,oneof=intern supervisor admin"`
	Search *string `query:"search"`
}
