package usecase

import (
	"context"

	"jobportal/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*AuthOutput, error)
}

// --- Input DTOs ---

// UpdateProfileInput patches the profile. Email and password cannot be changed here.
type UpdateProfileInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Location *string `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
}
