package inbound

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/identity/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.SignupOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	SendLoginOTP(ctx context.Context, in usecase.SendLoginOTPInput) error
	ResendOTP(ctx context.Context, in usecase.ResendOTPInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/signup", end.Signup)
	r.POST("/api/v1/auth/verify-otp", end.VerifyOTP)
	// Passwordless login shares the verification flow end to end.
	r.POST("/api/v1/auth/login-with-otp", end.VerifyOTP)
	r.POST("/api/v1/auth/send-login-otp", end.SendLoginOTP)
	r.POST("/api/v1/auth/resend-otp", end.ResendOTP)
	r.POST("/api/v1/auth/login", end.Login)
}
