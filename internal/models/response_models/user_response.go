package response_models

import (
	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	IsClient     bool      `json:"isClient"`
	IsInstructor bool      `json:"isInstructor"`
	IsAdmin      bool      `json:"isAdmin"`
}

func NewUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		IsClient:     user.IsClient(),
		IsInstructor: user.IsInstructor(),
		IsAdmin:      user.IsAdmin(),
	}
}

func NewUserResponses(users []db_models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
