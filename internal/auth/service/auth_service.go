package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	"github.com/datachef-lab/idsnap-portal/internal/auth/dto"
	autherror "github.com/datachef-lab/idsnap-portal/internal/errors"
)

var ddmmyyyy = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// AuthService owns the credential flows that end in a token pair: the
// UID+DOB student login and the refresh-cookie session paths. OTP
// verification lives in OTPService; both funnel into IssueFor.
type AuthService struct {
	dir    domain.IdentityDirectory
	tokens TokenGenerator
	log    *slog.Logger
}

func NewAuthService(dir domain.IdentityDirectory, tokens TokenGenerator, log *slog.Logger) *AuthService {
	return &AuthService{
		dir:    dir,
		tokens: tokens,
		log:    log,
	}
}

// Login authenticates a student by UID and date of birth. Admins have
// no direct login; they go through the OTP flow.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthData, *domain.Identity, error) {
	uid := domain.NormalizeUID(input.UID)
	dob, err := normalizeDOB(input.DOB)
	if err != nil {
		return nil, nil, autherror.ErrInvalidCredentials
	}

	student, err := s.dir.StudentByUIDAndDOB(ctx, uid, dob)
	if err != nil {
		return nil, nil, fmt.Errorf("student lookup failed: %w", err)
	}
	if student == nil {
		return nil, nil, autherror.ErrInvalidCredentials
	}

	if err := s.dir.TouchCheckIn(ctx, student.Email); err != nil {
		s.log.Warn("failed to stamp check-in", "email", student.Email, "error", err)
	}

	data, err := s.IssueFor(student)
	if err != nil {
		return nil, nil, err
	}

	return data, student, nil
}

// IssueFor mints a token pair for an already-authenticated identity.
func (s *AuthService) IssueFor(identity *domain.Identity) (*dto.AuthData, error) {
	accessToken, refreshToken, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &dto.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UID:          identity.SessionUID(),
		UserType:     string(identity.Role),
		RedirectURL:  identity.RedirectURL(),
	}, nil
}

// ResolveRefresh verifies a refresh token and re-resolves the identity
// behind it. This is a verification-path lookup: it never stamps the
// check-in timestamp, unlike the login paths.
func (s *AuthService) ResolveRefresh(ctx context.Context, refreshToken string) (*domain.Identity, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, autherror.ErrUnauthorized
	}

	identity, err := s.lookupByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, autherror.ErrUserNotFound
	}

	return identity, nil
}

// Session mints a fresh access token for the identity behind a refresh
// cookie, without rotating the refresh token. Used by /auth/me.
func (s *AuthService) Session(ctx context.Context, refreshToken string) (*dto.SessionOutput, error) {
	identity, err := s.ResolveRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.SessionOutput{
		AccessToken: accessToken,
		User:        dto.IdentityOutputFrom(identity),
	}, nil
}

func (s *AuthService) lookupByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	student, err := s.dir.StudentByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if student != nil {
		return student, nil
	}

	return s.dir.AdminByEmail(ctx, email)
}

// normalizeDOB accepts DD-MM-YYYY (the form the login screen collects)
// or an ISO date, and returns YYYY-MM-DD for the directory query.
func normalizeDOB(dob string) (string, error) {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return "", fmt.Errorf("empty date of birth")
	}

	if ddmmyyyy.MatchString(dob) {
		parts := strings.Split(dob, "-")
		return parts[2] + "-" + parts[1] + "-" + parts[0], nil
	}

	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return "", fmt.Errorf("unrecognized date of birth format: %w", err)
	}
	return t.Format("2006-01-02"), nil
}
