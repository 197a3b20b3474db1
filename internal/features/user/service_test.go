package user

import (
	"context"
	"errors"
	"testing"

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
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if email, ok := fields["email"].(string); ok {
		u.Email = email
	}
	if department, ok := fields["department"].(string); ok {
		u.Department = department
	}
	if role, ok := fields["role"].(models.Role); ok {
		u.Role = role
	}
	return u, nil
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	in := RegisterInput{Name: "Jo Smith", Email: "jo@example.com", Password: "secret", Department: "Operations"}

	u, err := service.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Role != models.RoleUser {
		t.Errorf("Role = %s, every registration starts as user", u.Role)
	}
	if u.Password == "secret" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")); err != nil {
		t.Error("stored password hash does not match the input")
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	if _, err := service.Register(context.Background(), RegisterInput{Name: "X", Email: "x@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		in   RegisterInput
		want string
	}{
		{"Missing name", RegisterInput{Email: "a@example.com", Password: "pw"}, "Name, email and password are required"},
		{"Missing email", RegisterInput{Name: "A", Password: "pw"}, "Name, email and password are required"},
		{"Missing password", RegisterInput{Name: "A", Email: "a@example.com"}, "Name, email and password are required"},
		{"Duplicate email", RegisterInput{Name: "X2", Email: "x@example.com", Password: "pw"}, "User already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.in)
			var appErr *errs.Error
			if !errors.As(err, &appErr) || appErr.Kind != errs.KindInvalid {
				t.Fatalf("expected invalid error, got %v", err)
			}
			if appErr.Message != tt.want {
				t.Errorf("message = %q, want %q", appErr.Message, tt.want)
			}
		})
	}
}

func TestUpdateUserAccessControl(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	target, _ := service.Register(context.Background(), RegisterInput{Name: "Target", Email: "t@example.com", Password: "pw"})
	targetID := target.ID.Hex()

	selfClaims := &utils.UserClaims{UserID: targetID, Role: models.RoleUser}
	adminClaims := &utils.UserClaims{UserID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin}
	strangerClaims := &utils.UserClaims{UserID: primitive.NewObjectID().Hex(), Role: models.RoleUser}

	t.Run("Stranger denied", func(t *testing.T) {
		_, err := service.UpdateUser(context.Background(), targetID, UpdateUserInput{Name: "Hacked"}, strangerClaims)
		var appErr *errs.Error
		if !errors.As(err, &appErr) || appErr.Kind != errs.KindForbidden {
			t.Fatalf("expected forbidden error, got %v", err)
		}
	})

	t.Run("Self can update profile", func(t *testing.T) {
		u, err := service.UpdateUser(context.Background(), targetID, UpdateUserInput{Name: "Renamed"}, selfClaims)
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		if u.Name != "Renamed" {
			t.Errorf("Name = %s, want Renamed", u.Name)
		}
	})

	t.Run("Self cannot escalate role", func(t *testing.T) {
		u, err := service.UpdateUser(context.Background(), targetID, UpdateUserInput{Role: "admin"}, selfClaims)
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		if u.Role != models.RoleUser {
			t.Errorf("non-admin changed a role: %s", u.Role)
		}
	})

	t.Run("Admin can change role", func(t *testing.T) {
		u, err := service.UpdateUser(context.Background(), targetID, UpdateUserInput{Role: "admin"}, adminClaims)
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
		if u.Role != models.RoleAdmin {
			t.Errorf("Role = %s, want admin", u.Role)
		}
	})

	t.Run("Admin rejects unknown role", func(t *testing.T) {
		_, err := service.UpdateUser(context.Background(), targetID, UpdateUserInput{Role: "superuser"}, adminClaims)
		var appErr *errs.Error
		if !errors.As(err, &appErr) || appErr.Kind != errs.KindInvalid {
			t.Fatalf("expected invalid error, got %v", err)
		}
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := service.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), UpdateUserInput{Name: "X"}, adminClaims)
		var appErr *errs.Error
		if !errors.As(err, &appErr) || appErr.Kind != errs.KindNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
