package jwt

import (
	"KeepEat-Backend/domain"
	"errors"
	"testing"
)

func TestGenerateAndParseToken(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleVolunteer)
	if token == "" {
		t.Fatal("generated token is empty")
	}

	userID, role, err := service.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("GetUserIDByToken failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("userID = %q, want user-123", userID)
	}
	if role != domain.RoleVolunteer {
		t.Errorf("role = %q, want %q", role, domain.RoleVolunteer)
	}
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
