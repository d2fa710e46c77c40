package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit. It counts bytes, not characters.
const maxPasswordBytes = 72

// UserService defines the user operations exposed over HTTP.
type UserService interface {
	Register(ctx context.Context, dto UserCreateDto) (*UserDto, error)
	FindByEmail(ctx context.Context, email string) (*UserDto, error)
}

type Service struct {
	store    UserStore
	validate *validator.Validate
	cost     int
}

// NewService creates a user Service. Passwords are hashed with bcrypt at the given cost;
// a cost of 0 means bcrypt.DefaultCost.
func NewService(store UserStore, cost int) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cost:     cost,
	}
}

// Register validates the request, hashes the password and stores the user.
func (s *Service) Register(ctx context.Context, dto UserCreateDto) (*UserDto, error) {
	dto.Email = strings.TrimSpace(dto.Email)
	if err := s.validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	if len(dto.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password is %d bytes long, at most %d are allowed", ErrInvalidUser, len(dto.Password), maxPasswordBytes)
	}
	if dto.Role == "" {
		dto.Role = RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.store.Create(ctx, dto.Email, string(hash), dto.Role)
	if err != nil {
		return nil, err
	}
	return toDto(created), nil
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*UserDto, error) {
	found, err := s.store.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	return toDto(found), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(u *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
