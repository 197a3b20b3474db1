package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ehs/internal/common/errs"
	"go-ehs/internal/common/models"
	"go-ehs/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID.Hex()] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, fields bson.M) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestLogin(t *testing.T) {
	utils.Configure("test-secret", time.Hour)

	repo := newFakeUserRepo()
	service := NewAuthService(repo)
	u := seedUser(t, repo, "user@example.com", "correct-horse")

	t.Run("Valid credentials", func(t *testing.T) {
		token, err := service.Login(context.Background(), "user@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		claims, err := utils.ValidateToken(token)
		if err != nil {
			t.Fatalf("issued token does not validate: %v", err)
		}
		if claims.UserID != u.ID.Hex() {
			t.Errorf("token UserID = %s, want %s", claims.UserID, u.ID.Hex())
		}
	})

	// Unknown email and wrong password must be indistinguishable
	for _, tt := range []struct {
		name, email, password string
	}{
		{"Wrong password", "user@example.com", "wrong"},
		{"Unknown email", "nobody@example.com", "correct-horse"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tt.email, tt.password)
			var appErr *errs.Error
			if !errors.As(err, &appErr) || appErr.Kind != errs.KindInvalid {
				t.Fatalf("expected invalid error, got %v", err)
			}
			if appErr.Message != "Invalid credentials" {
				t.Errorf("message = %q, want %q", appErr.Message, "Invalid credentials")
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo)
	u := seedUser(t, repo, "user@example.com", "pw")

	got, err := service.CurrentUser(context.Background(), u.ID.Hex())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if got.Email != u.Email {
		t.Errorf("Email = %s, want %s", got.Email, u.Email)
	}

	_, err = service.CurrentUser(context.Background(), primitive.NewObjectID().Hex())
	var appErr *errs.Error
	if !errors.As(err, &appErr) || appErr.Kind != errs.KindNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}
