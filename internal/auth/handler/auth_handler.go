package handler

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	"github.com/datachef-lab/idsnap-portal/internal/auth/dto"
	"github.com/datachef-lab/idsnap-portal/internal/auth/service"
	autherror "github.com/datachef-lab/idsnap-portal/internal/errors"
	"github.com/datachef-lab/idsnap-portal/pkg/constant"
)

type AuthHandler struct {
	authService *service.AuthService
	otpService  *service.OTPService
	cookies     *SessionCookieManager
	log         *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, otpService *service.OTPService,
	cookies *SessionCookieManager, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		otpService:  otpService,
		cookies:     cookies,
		log:         log,
	}
}

func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var input dto.SendOTPInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if strings.TrimSpace(input.Identifier) == "" {
		return badRequest(c, "identifier is required")
	}

	expiresAt, err := h.otpService.RequestChallenge(c.Context(), input.Identifier)
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return notFound(c)
		}
		// Infrastructure detail stays in the log; the response must not
		// reveal which downstream dependency is degraded.
		h.log.Error("send-otp failed", "error", err)
		return internalError(c, "failed to send OTP")
	}

	return c.Status(fiber.StatusOK).JSON(dto.SendOTPResponse{
		Success:   true,
		Message:   "OTP sent successfully",
		ExpiresAt: expiresAt,
	})
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var input dto.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if strings.TrimSpace(input.Identifier) == "" || strings.TrimSpace(input.OTP) == "" {
		return badRequest(c, "identifier and OTP are required")
	}

	identity, outcome, err := h.otpService.VerifyChallenge(c.Context(), input.Identifier, strings.TrimSpace(input.OTP))
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return notFound(c)
		}
		h.log.Error("verify-otp failed", "error", err)
		return internalError(c, "failed to verify OTP")
	}

	// Expired and invalid are distinct corrective actions for the user:
	// request a new code versus retype this one.
	switch outcome {
	case domain.ChallengeExpired:
		return badRequest(c, "OTP expired")
	case domain.ChallengeInvalid:
		return badRequest(c, "Invalid OTP")
	}

	return h.establishSession(c, identity, "OTP verified successfully")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid input")
	}
	if strings.TrimSpace(input.UID) == "" || strings.TrimSpace(input.DOB) == "" {
		return badRequest(c, "UID and date of birth are required")
	}

	data, identity, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid UID or date of birth",
			})
		}
		h.log.Error("login failed", "error", err)
		return internalError(c, "an error occurred during login")
	}

	h.cookies.Set(c, data.RefreshToken, identity)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Data:    *data,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	refreshToken := c.Cookies(constant.CookieRefreshToken)
	if refreshToken == "" {
		return unauthorized(c, "no refresh token found")
	}

	session, err := h.authService.Session(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		case errors.Is(err, autherror.ErrUnauthorized):
			h.cookies.Clear(c)
			return unauthorized(c, "invalid refresh token")
		default:
			h.log.Error("session check failed", "error", err)
			return internalError(c, "failed to verify session")
		}
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(constant.CookieRefreshToken)
	if refreshToken == "" {
		return unauthorized(c, "no refresh token provided")
	}

	identity, err := h.authService.ResolveRefresh(c.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, autherror.ErrUnauthorized) || errors.Is(err, autherror.ErrUserNotFound) {
			// The refresh token itself is the invalid artifact; tear the
			// session down so the client stops presenting it.
			h.cookies.Clear(c)
			return unauthorized(c, "invalid refresh token")
		}
		h.log.Error("token refresh failed", "error", err)
		return internalError(c, "an error occurred during token refresh")
	}

	data, err := h.authService.IssueFor(identity)
	if err != nil {
		h.log.Error("token refresh failed", "error", err)
		return internalError(c, "an error occurred during token refresh")
	}

	h.cookies.Set(c, data.RefreshToken, identity)

	return c.Status(fiber.StatusOK).JSON(dto.SessionOutput{
		AccessToken: data.AccessToken,
		User:        dto.IdentityOutputFrom(identity),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) establishSession(c *fiber.Ctx, identity *domain.Identity, message string) error {
	data, err := h.authService.IssueFor(identity)
	if err != nil {
		h.log.Error("token issuance failed", "error", err)
		return internalError(c, "failed to establish session")
	}

	h.cookies.Set(c, data.RefreshToken, identity)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Success: true,
		Message: message,
		Data:    *data,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "user not found",
	})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
