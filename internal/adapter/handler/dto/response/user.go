package response

import (
	"github.com/google/uuid"

	"github.com/marcos-nsantos/users-api/internal/domain/entity"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func UsersFromEntities(users []entity.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserFromEntity(&u))
	}
	return result
}
