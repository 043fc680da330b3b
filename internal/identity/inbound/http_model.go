package inbound

import "net/http"

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResponse struct {
	Email string `json:"email"`
}

func (SignupResponse) Message() string {
	return "Signup successful. An OTP has been sent to your email address."
}

func (SignupResponse) StatusCode() int {
	return http.StatusCreated
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyOTPResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

func (VerifyOTPResponse) Message() string {
	return "Account verified successfully."
}

type AuthUser struct {
	ID    int64  `json:"id,string"`
	Email string `json:"email"`
}

type SendLoginOTPRequest struct {
	Email string `json:"email"`
}

type SendLoginOTPResponse struct{}

func (SendLoginOTPResponse) Message() string {
	return "An OTP has been sent to your email address."
}

type ResendOTPRequest struct {
	Email string `json:"email"`
}

type ResendOTPResponse struct{}

func (ResendOTPResponse) Message() string {
	return "A new OTP has been sent to your email address."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

func (LoginResponse) Message() string {
	return "Login successful."
}
