package auth

import (
	"context"
	"errors"

	"go-ehs/internal/common/errs"
	"go-ehs/internal/common/models"
	"go-ehs/internal/features/user"
	"go-ehs/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo}
}

// Login checks credentials and issues a signed token. Unknown email and
// wrong password produce the same message so account existence never leaks.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errs.Invalid("Invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return "", errs.Invalid("Invalid credentials")
	}

	return utils.GenerateToken(usr.ID, usr.Role)
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	usr, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("User not found")
		}
		return nil, err
	}
	return usr, nil
}
