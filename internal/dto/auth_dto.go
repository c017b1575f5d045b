package dto

import "github.com/marcus024/ssu-alumni-tracker/internal/model"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  *model.UserAccount `json:"user"`
}
