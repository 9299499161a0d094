package auth

import (
	"context"
	"fmt"

	"github.com/hanbit-hr/worktime-backend-go/internal/domain/employee"
	"github.com/hanbit-hr/worktime-backend-go/internal/domain/user"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/database"
	"github.com/hanbit-hr/worktime-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// ActorFor resolves a user row into the acting identity, pulling the
// department from the linked employee so manager scoping works.
func (s *Service) ActorFor(ctx context.Context, u user.User) (user.Actor, error) {
	actor := user.Actor{
		UserID:     u.ID,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
	}
	if u.EmployeeID != nil {
		emp, err := s.EmployeeRepository.GetByID(ctx, *u.EmployeeID)
		if err != nil {
			return user.Actor{}, fmt.Errorf("failed to resolve linked employee: %w", err)
		}
		actor.DepartmentID = emp.DepartmentID
	}
	return actor, nil
}

// Login checks credentials and issues the token pair.
func (s *Service) Login(ctx context.Context, req user.LoginRequest) (user.TokenResponse, error) {
	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.TokenResponse{}, user.ErrInvalidCredentials
		}
		return user.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	actor, err := s.ActorFor(ctx, u)
	if err != nil {
		return user.TokenResponse{}, err
	}

	var tokens user.TokenResponse
	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = s.Service.GenerateAccessToken(actor, u.Username)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = s.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokens, nil
}

// Register creates an account. Only admins reach this path; the role
// check happens in the handler middleware.
func (s *Service) Register(ctx context.Context, req user.RegisterRequest) (user.User, error) {
	if _, err := s.UserRepository.GetByUsername(ctx, req.Username); err == nil {
		return user.User{}, user.ErrUsernameExists
	} else if err != user.ErrUserNotFound {
		return user.User{}, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
}

// Refresh trades a live refresh token for a fresh access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (user.TokenResponse, error) {
	if s.Service.IsTokenRevoked(refreshToken) {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	token, err := s.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	u, err := s.UserRepository.GetByID(ctx, int64(userID))
	if err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	actor, err := s.ActorFor(ctx, u)
	if err != nil {
		return user.TokenResponse{}, err
	}

	var tokens user.TokenResponse
	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = s.Service.GenerateAccessToken(actor, u.Username)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokens.RefreshToken = refreshToken

	return tokens, nil
}

// Logout revokes the refresh token.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.Service.RevokeToken(refreshToken)
	}
}

// ChangePassword verifies the current password before replacing it.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req user.ChangePasswordRequest) error {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}

// ListUsers returns all accounts as safe projections.
func (s *Service) ListUsers(ctx context.Context) ([]user.Response, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}
