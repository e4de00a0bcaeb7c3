package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"goppo-soppo/internal/data/entity"
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/dto/request"
	"goppo-soppo/internal/dto/response"
	"goppo-soppo/pkg/mailer"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeNotFound       = errors.New("OTP not found")
	ErrCodeExpired        = errors.New("OTP expired")
	ErrCodeMismatch       = errors.New("invalid OTP")
)

// UnverifiedAccountError is returned by Login when the account exists
// but has not finished OTP verification; it carries the pending user ID
// so the client can jump back into the verify flow.
type UnverifiedAccountError struct {
	UserID uuid.UUID
}

func (e *UnverifiedAccountError) Error() string {
	return "email not verified"
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo     *repository.Repository
	sessions session.Store
	mail     mailer.Mailer
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	sessions session.Store,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
		mail:     mail,
		config:   config,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Reject already-registered emails
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, ErrDuplicateEmail
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create the user, unverified until the OTP round-trip completes
	user := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsVerified:   false,
		Role:         entity.RoleUser,
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, fmt.Errorf("validation failed: dob must be YYYY-MM-DD")
		}
		user.DOB = &dob
	}
	if req.Gender != "" {
		gender := req.Gender
		user.Gender = &gender
	}
	if req.PreferredGenre != "" {
		genre := req.PreferredGenre
		user.PreferredGenre = &genre
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user")
	}

	// 5. Issue and send the OTP
	if err := s.issueOTP(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered, awaiting verification",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.RegisterResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
	}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("VerifyOTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := utils.ParseUUID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("validation failed: userId must be a valid UUID")
	}

	// 2. Only the most recently issued code is ever valid
	otp, err := s.repo.OTP.FindLatestByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to verify OTP")
	}
	if otp == nil {
		return nil, ErrCodeNotFound
	}
	if otp.IsExpired(time.Now()) {
		return nil, ErrCodeExpired
	}
	if !utils.CheckPasswordHash(req.OTP, otp.OTPHash) {
		return nil, ErrCodeMismatch
	}

	// 3. Flip the account to verified and burn every outstanding code
	if err := s.repo.User.MarkVerified(ctx, userID); err != nil {
		s.log.Error("Failed to mark user verified", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to verify account")
	}
	if err := s.repo.OTP.DeleteAllForUser(ctx, userID); err != nil {
		s.log.Warn("Failed to clean up used OTPs", zap.Error(err), zap.String("user_id", req.UserID))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Error("Failed to load verified user", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to verify account")
	}

	// 4. Verification logs the user straight in
	return s.openSession(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check credentials; same error whether the email or the
	// password is wrong
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to log in")
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. Unverified accounts are bounced back to the OTP flow
	if !user.IsVerified {
		if err := s.issueOTP(ctx, user); err != nil {
			return nil, err
		}
		return nil, &UnverifiedAccountError{UserID: user.ID}
	}

	return s.openSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.log.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("failed to log out")
	}
	return nil
}

// issueOTP generates a fresh code, stores only its hash, and sends the
// plaintext by mail. Sending is synchronous: registration fails loudly
// if the mail cannot go out.
func (s *authService) issueOTP(ctx context.Context, user *entity.User) error {
	code := utils.GenerateOTP(s.config.OTP.Length)

	codeHash, err := utils.HashPassword(code)
	if err != nil {
		s.log.Error("Failed to hash OTP", zap.Error(err))
		return fmt.Errorf("failed to issue OTP")
	}

	now := time.Now()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		OTPHash:    codeHash,
		ExpiresAt:  now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}
	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to issue OTP")
	}

	if err := s.mail.SendOTP(ctx, user.Email, code); err != nil {
		s.log.Error("Failed to send OTP mail", zap.Error(err), zap.String("email", user.Email))
		return fmt.Errorf("failed to send verification email")
	}

	return nil
}

func (s *authService) openSession(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	identity := entity.IdentityOf(user)

	token, err := s.sessions.Create(ctx, identity)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Session opened",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		User:  response.IdentityToSessionUser(identity),
		Token: token,
	}, nil
}
