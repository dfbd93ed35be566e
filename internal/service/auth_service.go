package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"resourcehub/internal/auth"
	apperrors "resourcehub/internal/errors"
	"resourcehub/internal/model"
	"resourcehub/internal/repository"
	"resourcehub/internal/validation"
)

// TokenPair bundles the credentials issued on register and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken, accessToken string) error
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) (token string, err error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a new user with an empty profile and issues tokens.
// Registration never grants the admin role; admins are seeded or promoted
// by an existing admin.
func (s *authService) Register(ctx context.Context, email, password, name string, role model.Role) (*model.User, *TokenPair, error) {
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleProvider {
		return nil, nil, apperrors.ErrForbidden
	}

	if err := validation.ValidatePassword(password); err != nil {
		return nil, nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, nil, apperrors.ErrEmailAlreadyRegistered
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Email:   email,
		Name:    name,
		Role:    role,
		Status:  model.StatusActive,
		Profile: &model.Profile{},
	}
	if err := user.SetPassword(password); err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	// User and profile are created in one transaction through the association.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, nil, apperrors.ErrAccountNotActive
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("update last login: %w", err)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *authService) issueTokens(ctx context.Context, user *model.User) (*TokenPair, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, s.jwtService.RefreshTTL()); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	if storedUserID != claims.UserID || storedEmail != claims.Email {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates the refresh token and blacklists the access token for
// its remaining lifetime.
func (s *authService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, tokenID); err != nil {
		return err
	}

	if accessToken != "" {
		if accessID, err := s.jwtService.ExtractTokenID(accessToken); err == nil {
			_ = s.tokenStore.BlacklistAccessToken(ctx, accessID, s.jwtService.AccessTTL())
		}
	}
	return nil
}

// ChangePassword replaces the user's password after verifying the current one.
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if !user.VerifyPassword(currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.Update(ctx, user)
}

// RequestPasswordReset issues a reset token when the email exists. The
// caller always reports success externally to prevent email enumeration;
// the returned token is empty when the email is unknown.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return "", err
	}

	// Overwrites any prior token.
	expires := time.Now().Add(auth.ResetTokenExpiry)
	user.ResetToken = &token
	user.ResetTokenExpiresAt = &expires
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}

	return token, nil
}

// ResetPassword consumes a reset token and sets the new password. Tokens
// are single use: the token fields are cleared in the same update that
// stores the new hash.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return err
	}

	if !user.VerifyResetToken(token, time.Now()) {
		return apperrors.ErrInvalidResetToken
	}

	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.ClearResetToken()
	return s.userRepo.Update(ctx, user)
}
