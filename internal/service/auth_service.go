package service

import (
	"errors"
	"fmt"

	"folio-be/internal/apperr"
	"folio-be/internal/entities"
	"folio-be/internal/hash"
	"folio-be/internal/models"
	"folio-be/internal/repository"
	"folio-be/internal/token"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(userID string) (*entities.User, error)
	UpdateProfile(userID string, req *models.UpdateProfileRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   hash.Hasher
	tokens   *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher hash.Hasher, tokens *token.Service) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a new user account and logs it in. The FindByEmail
// pre-check is a fast path only; two racing registrations are settled by
// the unique index, which the repository reports as ErrEmailTaken.
func (s *authService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, apperr.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, apperr.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Name, req.Email, hashed)
	if err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respondWithToken(user)
}

// Login authenticates a user and returns the profile with a fresh token.
// An unknown email and a wrong password produce the same error value.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	if !s.hasher.Check(req.Password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

// GetProfile loads the authenticated user's record
func (s *authService) GetProfile(userID string) (*entities.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile replaces the user's name and, if provided, password, then
// re-issues a token for the same identity. The email never changes here.
func (s *authService) UpdateProfile(userID string, req *models.UpdateProfileRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	if req.Name != nil && *req.Name != "" {
		name = *req.Name
	}

	passwordHash := user.PasswordHash
	if req.Password != nil && *req.Password != "" {
		passwordHash, err = s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	updated, err := s.userRepo.Update(user.ID, name, passwordHash)
	if err != nil {
		return nil, err
	}

	return s.respondWithToken(updated)
}

func (s *authService) respondWithToken(user *entities.User) (*models.AuthResponse, error) {
	tok, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     tok,
	}, nil
}
