package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rangeops/backoffice-go/internal/domain/auth"
	"github.com/rangeops/backoffice-go/internal/domain/employee"
	"github.com/rangeops/backoffice-go/internal/domain/user"
	"github.com/rangeops/backoffice-go/internal/pkg/jwt"
	"github.com/rangeops/backoffice-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	google       oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) auth.AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		google:       google,
	}
}

// Register implements auth.AuthService. A matching employee record
// (same email) is linked automatically so the new login lands on its
// own timesheet.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if emp != nil {
		newUser.EmployeeID = &emp.ID
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(created)
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.PasswordHash == "" {
		// Google-only account, no password set.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// LoginWithGoogle implements auth.AuthService. Google accounts are
// matched by Google ID first, then linked by verified email; an email
// nobody in the system carries is refused rather than auto-registered.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrGoogleEmailNotFound
	}

	u, err := s.userRepo.GetByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return s.issueTokens(u)
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, err
	}

	u, err = s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleEmailNotFound
		}
		return auth.TokenResponse{}, err
	}

	u.GoogleID = &info.GoogleID
	if err := s.userRepo.Update(ctx, u); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(u)
}

// Refresh implements auth.AuthService.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := decoded.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := decoded.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, nil
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *authServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		TokenType:    "Bearer",
	}, nil
}
