package seed

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aman-a-k/HOSTEL-MANAGEMENT---SKILL-LAB/internal/models"
)

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type account struct {
	name     string
	email    string
	password string
	role     models.UserRole
}

// Demo accounts match the credentials printed in the frontend login page.
var demoAccounts = []account{
	{name: "Admin User", email: "admin@hostel.com", password: "admin123", role: models.RoleAdmin},
	{name: "John Doe", email: "student@hostel.com", password: "student123", role: models.RoleStudent},
}

// Seeder ensures demo accounts exist at startup.
type Seeder struct {
	repo   userRepository
	logger *zap.Logger
}

// New constructs a Seeder.
func New(repo userRepository, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{repo: repo, logger: logger}
}

// Run creates any missing demo account. It is idempotent and never returns
// an error: seeding failures are logged and the server starts regardless.
func (s *Seeder) Run(ctx context.Context) {
	for _, acc := range demoAccounts {
		existing, err := s.repo.FindByEmail(ctx, acc.email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("seed lookup failed", zap.String("email", acc.email), zap.Error(err))
			continue
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Warn("seed hash failed", zap.String("email", acc.email), zap.Error(err))
			continue
		}

		user := &models.User{
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: string(hash),
			Role:         acc.role,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			s.logger.Warn("seed create failed", zap.String("email", acc.email), zap.Error(err))
			continue
		}

		s.logger.Info("seeded demo account", zap.String("email", acc.email), zap.String("role", string(acc.role)))
	}
}
