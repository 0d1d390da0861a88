package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthValidationService normalizes and validates credentials before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	credentials.Email = normalizeEmail(credentials.Email)
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during registration validation: %w", err)
	}

	return v.inner.Register(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	credentials.Email = normalizeEmail(credentials.Email)
	if err := v.validator.Validate(ctx, credentials, validators.FieldEmailPresent, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, principal models.Principal) (models.User, error) {
	if !principal.IsAuthenticated() {
		return models.User{}, ErrAuthenticationRequired
	}
	return v.inner.CurrentUser(ctx, principal)
}

func (v *AuthValidationService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateSession(ctx, user)
}

func (v *AuthValidationService) ResolveSession(ctx context.Context, tokenString string) (models.Principal, error) {
	if tokenString == "" {
		return models.Principal{}, ErrInvalidSession
	}
	return v.inner.ResolveSession(ctx, tokenString)
}

func (v *AuthValidationService) Logout(ctx context.Context, principal models.Principal) error {
	return v.inner.Logout(ctx, principal)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
