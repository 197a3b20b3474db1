package utils

import (
	"testing"
	"time"

	"go-ehs/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-secret", time.Hour)

	userID := primitive.NewObjectID()
	token, err := GenerateToken(userID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID.Hex())
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %s, want admin", claims.Role)
	}
	if !claims.IsAdmin() {
		t.Error("IsAdmin() = false for admin token")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	Configure("test-secret", time.Hour)

	// Negative TTL is ignored by Configure, so force it directly
	tokenTTL = -time.Minute
	defer func() { tokenTTL = time.Hour }()

	token, err := GenerateToken(primitive.NewObjectID(), models.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	Configure("first-secret", time.Hour)
	token, err := GenerateToken(primitive.NewObjectID(), models.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	Configure("second-secret", time.Hour)
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	Configure("test-secret", time.Hour)
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Manufacturing", "acme-manufacturing"},
		{"March 2026", "march-2026"},
		{"  spaced  out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
