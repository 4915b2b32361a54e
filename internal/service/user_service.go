package service

import (
	"context"

	"fitgpt/internal/models"
	"fitgpt/internal/repository"
)

// UserService handles profile reads, patches, and account deletion.
type UserService struct {
	userRepo repository.UserRepository
}

// ProfileUpdateInput carries an optional patch for each profile field. Nil
// means "leave untouched"; the patch applies fully or not at all.
type ProfileUpdateInput struct {
	BodyType           *string
	Lifestyle          *string
	ComfortPreference  *string
	OnboardingComplete *bool
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies only the fields present in the patch.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdateInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.BodyType != nil {
		user.BodyType = *in.BodyType
	}
	if in.Lifestyle != nil {
		user.Lifestyle = *in.Lifestyle
	}
	if in.ComfortPreference != nil {
		user.ComfortPreference = *in.ComfortPreference
	}
	if in.OnboardingComplete != nil {
		user.OnboardingComplete = *in.OnboardingComplete
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the user; the store cascades deletion to every
// wardrobe item the user owns.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}
