package converter

import (
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *UserToResponse(&user)
	}
	return responses
}

func UserToIdentity(user *entity.User) dto.IdentityResponse {
	return dto.IdentityResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}
