package dto

import (
	"time"

	"github.com/SmartLocalApps/service-finder/internal/models"
)

// AuthUserDTO is the user record attached to login and registration
// responses. WorkerID is present only for workers with a profile.
type AuthUserDTO struct {
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	WorkerID string `json:"workerId,omitempty"`
}

func NewAuthUserDTO(u *models.User, workerID string) AuthUserDTO {
	return AuthUserDTO{
		ID:       u.ID,
		LegacyID: u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		WorkerID: workerID,
	}
}

type AdminUserDTO struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAdminUserDTOs(users []models.User) []AdminUserDTO {
	out := make([]AdminUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUserDTO{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
