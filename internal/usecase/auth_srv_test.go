package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/dto/request"
	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

func newAuthFixture() (AuthService, *repository.Repository, *stubSessions, *recordingMailer) {
	repo := &repository.Repository{
		User: newStubUserRepo(),
		OTP:  newStubOTPRepo(),
	}
	sessions := newStubSessions()
	mail := newRecordingMailer()
	config := &utils.Config{
		OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}
	svc := NewAuthService(repo, sessions, mail, config, zap.NewNop())
	return svc, repo, sessions, mail
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	svc, _, sessions, mail := newAuthFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Anika",
		Email:    "anika@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Email != "anika@example.com" {
		t.Fatalf("unexpected email %q", reg.Email)
	}

	code := mail.lastCode("anika@example.com")
	if len(code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", code)
	}

	// Login before verification re-sends a code and reports the
	// pending user ID.
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "anika@example.com", Password: "secret123"})
	var unverified *UnverifiedAccountError
	if !errors.As(err, &unverified) {
		t.Fatalf("expected UnverifiedAccountError, got %v", err)
	}
	if unverified.UserID.String() != reg.UserID {
		t.Fatalf("pending user ID mismatch: %s vs %s", unverified.UserID, reg.UserID)
	}

	// Only the newest code is valid now.
	code = mail.lastCode("anika@example.com")
	auth, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{UserID: reg.UserID, OTP: code})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("verification should open a session")
	}
	if identity, _ := sessions.Get(ctx, auth.Token); identity == nil {
		t.Fatal("session token not stored")
	}

	// A normal login works from here on.
	auth2, err := svc.Login(ctx, &request.LoginRequest{Email: "anika@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login after verify: %v", err)
	}
	if auth2.User.Name != "Anika" {
		t.Fatalf("unexpected session user %+v", auth2.User)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	req := &request.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "secret123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _, mail := newAuthFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "B", Email: "b@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{
		UserID: reg.UserID, OTP: mail.lastCode("b@example.com"),
	}); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// Unknown email and wrong password answer identically.
	_, errUnknown := svc.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, errWrongPass := svc.Login(ctx, &request.LoginRequest{Email: "b@example.com", Password: "wrongpass"})
	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials twice, got %v / %v", errUnknown, errWrongPass)
	}
}

func TestVerifyOTPFailures(t *testing.T) {
	svc, repo, _, mail := newAuthFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "C", Email: "c@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{UserID: reg.UserID, OTP: "000000"}); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("expected ErrCodeMismatch, got %v", err)
	}

	unknown := "4d9f3f70-0000-0000-0000-000000000000"
	if _, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{UserID: unknown, OTP: "123456"}); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}

	// Expire the stored code and try the real one.
	otps := repo.OTP.(*stubOTPRepo)
	otps.mu.Lock()
	for _, otp := range otps.otps {
		otp.ExpiresAt = time.Now().Add(-time.Second)
	}
	otps.mu.Unlock()

	code := mail.lastCode("c@example.com")
	if _, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{UserID: reg.UserID, OTP: code}); !errors.Is(err, ErrCodeExpired) {
		t.Fatalf("expected ErrCodeExpired, got %v", err)
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	svc, _, sessions, mail := newAuthFixture()
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "D", Email: "d@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	auth, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{
		UserID: reg.UserID, OTP: mail.lastCode("d@example.com"),
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if err := svc.Logout(ctx, auth.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if identity, _ := sessions.Get(ctx, auth.Token); identity != nil {
		t.Fatal("session should be gone after logout")
	}
}
