package dto

import "jobboard/internal/domain/profile"

type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
	Email        string `json:"email,omitempty"`
}

// AuthStatusResponse answers /check-auth. User is set only when the caller
// is authenticated.
type AuthStatusResponse struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	User            *UserResponse `json:"user,omitempty"`
}

func NewUserResponse(p profile.Profile) UserResponse {
	return UserResponse{
		ID:           p.ID,
		Name:         p.DisplayName,
		ProfileImage: p.AvatarURL,
	}
}
