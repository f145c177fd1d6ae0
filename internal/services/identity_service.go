package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alhijaztravel/safarbay/internal/models"
)

// IdentityService turns a (name, email, password) tuple into an authenticated
// account as part of checkout, without a separate registration step.
type IdentityService struct {
	identityRepo models.IdentityRepo
	profileRepo  models.ProfileRepo
	logger       *slog.Logger
}

func NewIdentityService(identityRepo models.IdentityRepo, profileRepo models.ProfileRepo, logger *slog.Logger) *IdentityService {
	return &IdentityService{
		identityRepo: identityRepo,
		profileRepo:  profileRepo,
		logger:       logger,
	}
}

// Provision creates the account or reconciles an existing one. It never
// creates two accounts for the same email: when sign-up reports the email as
// registered, it signs in with the same credentials instead. The profile
// document is written only for a freshly created account.
func (is *IdentityService) Provision(ctx context.Context, email, password, name, phone string) (string, error) {
	account, err := is.identityRepo.SignUp(ctx, email, password)
	if err == nil {
		if nameErr := is.identityRepo.UpdateDisplayName(ctx, account.AccessToken, name, phone); nameErr != nil {
			// The account exists and payment has succeeded; a missing display
			// name is not worth failing the flow over.
			is.logger.Warn("failed to set display name", "user_id", account.ID, "error", nameErr)
		}

		profile := &models.UserProfile{
			ID:        account.ID,
			Name:      name,
			Email:     email,
			Phone:     phone,
			Role:      models.RoleJamaah,
			CreatedAt: time.Now(),
		}
		if profErr := is.profileRepo.CreateProfile(ctx, profile); profErr != nil {
			return "", &models.RegistrationError{Message: fmt.Sprintf("account created but profile write failed: %v", profErr)}
		}
		return account.ID, nil
	}

	if errors.Is(err, models.ErrAlreadyRegistered) {
		existing, signInErr := is.identityRepo.SignIn(ctx, email, password)
		if signInErr != nil {
			// Registered under a different password; the user must log in
			// manually.
			return "", &models.RegistrationError{Conflict: true}
		}
		return existing.ID, nil
	}

	return "", &models.RegistrationError{Message: err.Error()}
}
