package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"corpsite/internal/pkg/jwt"
)

// Service handles CMS user business logic
type Service struct {
	repo       *Repository
	jwtService *jwt.Service
}

// NewService creates user service
func NewService(repo *Repository, jwtService *jwt.Service) *Service {
	return &Service{repo: repo, jwtService: jwtService}
}

// Login checks credentials and issues a signed token. The same error comes
// back for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Register creates a CMS account with a hashed password
func (s *Service) Register(ctx context.Context, name, email, password, role string) (*User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = RoleEditor
	}

	return s.repo.Create(ctx, &User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	})
}

// ChangePassword rehashes and stores a new password
func (s *Service) ChangePassword(ctx context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, map[string]any{"password_hash": string(hash)})
}
