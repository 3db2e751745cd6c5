package services_test

import (
	"errors"
	"testing"

	"PanaderiaApp/app/models"
	"PanaderiaApp/app/services"
)

func TestLogin(t *testing.T) {
	svc := services.NewAuthService()

	cases := []struct {
		username string
		role     models.Role
	}{
		{"ventas", models.RoleSales},
		{"produccion", models.RoleProduction},
	}
	for _, tc := range cases {
		user, err := svc.Login(tc.username, "1234")
		if err != nil {
			t.Fatalf("Login(%s) failed: %v", tc.username, err)
		}
		if user.Role != tc.role {
			t.Errorf("role for %s = %s, want %s", tc.username, user.Role, tc.role)
		}
		current, ok := svc.CurrentUser()
		if !ok || current.Username != tc.username {
			t.Errorf("current user = %+v, want %s", current, tc.username)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := services.NewAuthService()

	if _, err := svc.Login("ventas", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nadie", "1234"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("unknown user = %v, want ErrInvalidCredentials", err)
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Error("failed logins must not set a current user")
	}
}

func TestLogout(t *testing.T) {
	svc := services.NewAuthService()
	if _, err := svc.Login("ventas", "1234"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	svc.Logout()
	if _, ok := svc.CurrentUser(); ok {
		t.Error("logout should clear the current user")
	}
}
