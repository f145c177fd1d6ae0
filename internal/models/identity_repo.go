package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
)

// ErrAlreadyRegistered is returned by SignUp when the email already has an
// account, so the caller can fall back to signing in.
var ErrAlreadyRegistered = errors.New("email already registered")

// AuthAccount is the slice of the provider response the checkout flow needs.
type AuthAccount struct {
	ID          string
	AccessToken string
}

type IdentityRepo interface {
	SignUp(ctx context.Context, email, password string) (*AuthAccount, error)
	SignIn(ctx context.Context, email, password string) (*AuthAccount, error)
	UpdateDisplayName(ctx context.Context, accessToken, name, phone string) error
}

func (su *SupabaseRepo) SignUp(ctx context.Context, email, password string) (*AuthAccount, error) {
	res, err := su.supabaseClient.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "already registered") || strings.Contains(msg, "already exists") {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return &AuthAccount{
		ID:          res.User.ID.String(),
		AccessToken: res.AccessToken,
	}, nil
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (*AuthAccount, error) {
	res, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}

	return &AuthAccount{
		ID:          res.User.ID.String(),
		AccessToken: res.AccessToken,
	}, nil
}

// UpdateDisplayName stores the display name and phone on the provider account
// via user metadata.
func (su *SupabaseRepo) UpdateDisplayName(ctx context.Context, accessToken, name, phone string) error {
	_, err := su.supabaseClient.Auth.WithToken(accessToken).UpdateUser(types.UpdateUserRequest{
		Data: map[string]interface{}{
			"display_name": name,
			"phone_number": phone,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update display name: %v", err)
	}
	return nil
}
