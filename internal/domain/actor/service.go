package actor

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	jwtsvc "agencydesk/internal/pkg/jwt"
)

// Service handles authentication and actor lookups.
type Service struct {
	repo *Repository
	jwt  *jwtsvc.Service
}

func NewService(repo *Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Login verifies credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *Actor, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrActorNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !a.IsActive {
		return "", nil, ErrInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(a.ID, string(a.Role))
	if err != nil {
		return "", nil, err
	}

	return token, a, nil
}

// Register creates an actor with a hashed password. Used by seeding and
// admin provisioning.
func (s *Service) Register(ctx context.Context, a *Actor, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return s.repo.Create(ctx, a)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Actor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByRole(ctx context.Context, role Role) ([]Actor, error) {
	return s.repo.ListByRole(ctx, role)
}
