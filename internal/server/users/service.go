package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/logging"
	"github.com/refurnish/authcore/internal/server/auth"
	"github.com/refurnish/authcore/internal/server/config"
	"github.com/refurnish/authcore/internal/server/loginaudit"
	"github.com/refurnish/authcore/internal/server/sessions"
)

// MinPasswordLength is enforced before any hashing happens.
const MinPasswordLength = 8

const confirmationTokenSize = 32

// Audit failure reasons.
const (
	reasonUnknownEmail    = "unknown email"
	reasonInvalidPassword = "invalid password"
)

// ClientMeta carries the request metadata recorded with sessions and audit
// entries.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// RegisterParams is the canonical registration input. Role may be empty, in
// which case the account is a client.
type RegisterParams struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Role        string
}

// Service implements the credential and session lifecycle: registration,
// authentication, token issuance, and the best-effort session/audit
// bookkeeping around them.
type Service struct {
	repo     Repository
	sessions sessions.Repository
	audit    loginaudit.Repository
	hasher   *auth.PasswordHasher
	issuer   *auth.TokenIssuer
	logger   logging.Logger
}

func NewService(
	repo Repository,
	sessionRepo sessions.Repository,
	auditRepo loginaudit.Repository,
	cfg *config.Config,
	logger logging.Logger,
) *Service {
	return &Service{
		repo:     repo,
		sessions: sessionRepo,
		audit:    auditRepo,
		hasher:   auth.NewPasswordHasher(cfg.HashTimeCost, cfg.HashMemoryKiB),
		issuer:   auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.SessionTTL),
		logger:   logger.With("module", "users"),
	}
}

// TokenIssuer exposes the verifier side for the HTTP middleware.
func (s *Service) TokenIssuer() *auth.TokenIssuer {
	return s.issuer
}

// Register creates a new account and immediately authenticates it: the caller
// gets the sanitized user plus a bearer token. A session row and a success
// audit entry are written best-effort after the decision.
func (s *Service) Register(ctx context.Context, params RegisterParams, client ClientMeta) (*User, string, error) {

	if err := validateRegistration(&params); err != nil {
		return nil, "", err
	}

	hash, salt, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	confirmation, err := common.MakeRandHexString(confirmationTokenSize)
	if err != nil {
		return nil, "", fmt.Errorf("error generating confirmation token: %w", err)
	}

	now := time.Now()
	user := &User{
		ID:                uuid.NewString(),
		Email:             params.Email,
		FullName:          params.FullName,
		PhoneNumber:       params.PhoneNumber,
		Role:              params.Role,
		PasswordHash:      hash,
		PasswordSalt:      salt,
		EmailConfirmed:    false,
		ConfirmationToken: confirmation,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, "", common.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	token, err := s.issuer.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", fmt.Errorf("%w: token issuance: %v", common.ErrInternal, err)
	}

	// Registration is decided; bookkeeping below must not undo it.
	s.recordSession(ctx, created.ID, token, client)
	s.recordAttempt(ctx, &created.ID, true, "", client)

	return created.Sanitized(), token, nil
}

// Login authenticates an email/password pair. Unknown email and wrong
// password return the identical ErrInvalidCredentials value so the two cases
// are indistinguishable to the caller. Every attempt appends one audit entry;
// only a success creates a session.
func (s *Service) Login(ctx context.Context, email, password string, client ClientMeta) (*User, string, error) {

	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.recordAttempt(ctx, nil, false, reasonUnknownEmail, client)
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash, user.PasswordSalt) {
		s.recordAttempt(ctx, &user.ID, false, reasonInvalidPassword, client)
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("%w: token issuance: %v", common.ErrInternal, err)
	}

	// Authentication is decided; everything below is best-effort follow-up.
	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn(ctx, "last-login update failed", "user_id", user.ID, "error", err.Error())
	}
	s.recordSession(ctx, user.ID, token, client)
	s.recordAttempt(ctx, &user.ID, true, "", client)

	return user.Sanitized(), token, nil
}

// recordSession persists the session row for an issued token. Failures are
// logged and swallowed.
func (s *Service) recordSession(ctx context.Context, userID, token string, client ClientMeta) {
	now := time.Now()
	session := &sessions.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(s.issuer.TTL()),
		CreatedAt: now,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Warn(ctx, "session write failed", "user_id", userID, "error", err.Error())
	}
}

// recordAttempt appends a login-history row. Failures are logged and
// swallowed.
func (s *Service) recordAttempt(ctx context.Context, userID *string, success bool, reason string, client ClientMeta) {
	entry := &loginaudit.Entry{
		ID:            uuid.NewString(),
		UserID:        userID,
		Success:       success,
		FailureReason: reason,
		IPAddress:     client.IPAddress,
		UserAgent:     client.UserAgent,
		CreatedAt:     time.Now(),
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn(ctx, "audit write failed", "success", success, "error", err.Error())
	}
}

func validateRegistration(params *RegisterParams) error {
	if params.Email == "" || !strings.Contains(params.Email, "@") {
		return fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if len(params.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}
	if params.FullName == "" {
		return fmt.Errorf("%w: full name is required", common.ErrValidation)
	}
	if params.Role == "" {
		params.Role = RoleClient
	}
	if !ValidRole(params.Role) {
		return fmt.Errorf("%w: unknown role %q", common.ErrValidation, params.Role)
	}
	return nil
}
