package dto

import "time"

type SendOTPInput struct {
	Identifier string `json:"identifier"`
}

type SendOTPResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type VerifyOTPInput struct {
	Identifier string `json:"identifier"`
	OTP        string `json:"otp"`
}

type LoginInput struct {
	UID string `json:"uid"`
	DOB string `json:"dob"`
}

// AuthData is the payload returned by login and verify-otp. The client
// must navigate to RedirectURL rather than assume a fixed path.
type AuthData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UID          string `json:"uid"`
	UserType     string `json:"userType"`
	RedirectURL  string `json:"redirectUrl"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}
