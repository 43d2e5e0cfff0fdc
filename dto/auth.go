package dto

import (
	"time"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type StaffLoginResponse struct {
	StaffID     uint      `json:"id"`
	StaffName   string    `json:"name"`
	StaffEmail  string    `json:"email"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
