package user

import (
	"context"
	"errors"
	"time"

	"go-ehs/internal/common/errs"
	"go-ehs/internal/common/models"
	"go-ehs/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

type UpdateUserInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput, actor *utils.UserClaims) (*models.User, error)
}

type UserServiceImpl struct {
	UserRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &UserServiceImpl{UserRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errs.Invalid("Name, email and password are required")
	}

	if _, err := s.UserRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, errs.Invalid("User already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newUser := models.User{
		Name:       in.Name,
		Email:      in.Email,
		Password:   string(hash),
		Role:       models.RoleUser,
		Department: in.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.UserRepo.Create(ctx, &newUser); err != nil {
		return nil, err
	}
	return &newUser, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.List(ctx)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, in UpdateUserInput, actor *utils.UserClaims) (*models.User, error) {
	if !actor.IsAdmin() && actor.UserID != id {
		return nil, errs.Forbidden("Access denied")
	}

	fields := bson.M{"updated_at": time.Now()}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Department != "" {
		fields["department"] = in.Department
	}
	// Only admins can change roles
	if in.Role != "" && actor.IsAdmin() {
		role := models.Role(in.Role)
		if role != models.RoleUser && role != models.RoleAdmin {
			return nil, errs.Invalid("Invalid role")
		}
		fields["role"] = role
	}

	user, err := s.UserRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
