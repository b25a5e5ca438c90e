package usecase_test

import (
	"context"
	"strings"
	"testing"

	"room-booking/internal/data/entity"
	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:        "test-secret",
			Issuer:        "room-booking",
			Audience:      "room-booking-clients",
			ExpiryMinutes: 120,
		},
	}
}

func newAuthService() usecase.AuthService {
	return usecase.NewAuthService(newMemRepository(), testConfig(), zap.NewNop())
}

func TestRegisterCreatesCustomer(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw123456",
		FullName: "Alice Example",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Role != entity.RoleCustomer {
		t.Errorf("role = %s, want %s", user.Role, entity.RoleCustomer)
	}
	if user.Email != "a@x.com" {
		t.Errorf("email = %s, want a@x.com", user.Email)
	}
	if user.ID == "" {
		t.Error("expected non-empty user id")
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService()

	req := &request.RegisterRequest{Email: "a@x.com", Password: "pw123456", FullName: "Alice"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "A@X.COM",
		Password: "pw123456",
		FullName: "Alice Again",
	})
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("error = %v, want already registered", err)
	}
}

func TestLoginReturnsUppercasedRoleClaim(t *testing.T) {
	svc := newAuthService()
	cfg := testConfig()

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw123456",
		FullName: "Alice",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := utils.VerifyToken(cfg.JWT, auth.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Role != "CUSTOMER" {
		t.Errorf("role claim = %s, want CUSTOMER", claims.Role)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("email claim = %s, want a@x.com", claims.Email)
	}
	if claims.UserID != auth.UserID {
		t.Errorf("userId claim = %s, want %s", claims.UserID, auth.UserID)
	}
}

func TestLoginFailuresAreOpaque(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw123456",
		FullName: "Alice",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable
	_, errNoUser := svc.Login(context.Background(), &request.LoginRequest{
		Email: "nobody@x.com", Password: "pw123456",
	})
	_, errBadPass := svc.Login(context.Background(), &request.LoginRequest{
		Email: "a@x.com", Password: "wrong-password",
	})

	if errNoUser == nil || errBadPass == nil {
		t.Fatal("expected both logins to fail")
	}
	if errNoUser.Error() != errBadPass.Error() {
		t.Errorf("errors differ: %q vs %q", errNoUser, errBadPass)
	}
	if !strings.Contains(errNoUser.Error(), "invalid credentials") {
		t.Errorf("error = %v, want invalid credentials", errNoUser)
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "A@X.com",
		Password: "pw123456",
		FullName: "Alice",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "a@x.COM",
		Password: "pw123456",
	}); err != nil {
		t.Fatalf("login with different casing: %v", err)
	}
}

func TestRegisterStaffDefaultsToStaffRole(t *testing.T) {
	svc := newAuthService()

	user, err := svc.RegisterStaff(context.Background(), &request.RegisterStaffRequest{
		Email:    "s@x.com",
		Password: "pw123456",
		FullName: "Sam Staff",
	})
	if err != nil {
		t.Fatalf("register staff: %v", err)
	}
	if user.Role != entity.RoleStaff {
		t.Errorf("role = %s, want %s", user.Role, entity.RoleStaff)
	}
}

func TestRegisterStaffWithAdminRole(t *testing.T) {
	svc := newAuthService()

	role := "admin"
	user, err := svc.RegisterStaff(context.Background(), &request.RegisterStaffRequest{
		Email:    "boss@x.com",
		Password: "pw123456",
		FullName: "Boss",
		Role:     &role,
	})
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	if user.Role != entity.RoleAdmin {
		t.Errorf("role = %s, want %s", user.Role, entity.RoleAdmin)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw",
		FullName: "Alice",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("error = %v, want validation failed", err)
	}
}
