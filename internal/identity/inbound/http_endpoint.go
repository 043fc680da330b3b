package inbound

import (
	"github.com/anshy0304/veggiefinder/internal/identity/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// Signup creates a new account and emails a verification OTP.
// @Summary Sign up
// @Description Creates an unverified account and sends a six-digit OTP to the email address.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup payload"
// @Success 201 {object} router.successResponse{data=SignupResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already signed up"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/signup [post]
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{Email: resp.Email}, nil
}

// VerifyOTP checks a pending OTP, verifies the account, and signs the user in.
// It serves both the post-signup verification route and the passwordless
// login route.
// @Summary Verify OTP and log in
// @Description Validates the emailed OTP, marks the account verified, and returns a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "OTP payload"
// @Success 200 {object} router.successResponse{data=VerifyOTPResponse} "Verification result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 422 {object} router.errorResponse "Incorrect or expired OTP"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/verify-otp [post]
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		User:  AuthUser{ID: resp.AccountID, Email: resp.Email},
		Token: resp.Token,
	}, nil
}

// SendLoginOTP emails a fresh login OTP to an existing account.
// @Summary Send login OTP
// @Description Issues a fresh OTP for passwordless login and emails it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SendLoginOTPRequest true "Email payload"
// @Success 200 {object} router.successResponse{data=SendLoginOTPResponse} "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/send-login-otp [post]
func (h *HTTPEndpoint) SendLoginOTP(r *router.Request) (any, error) {
	var req SendLoginOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SendLoginOTP(r.Context(), usecase.SendLoginOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return SendLoginOTPResponse{}, nil
}

// ResendOTP emails a fresh verification OTP to an unverified account.
// @Summary Resend verification OTP
// @Description Issues a fresh OTP for account verification and emails it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResendOTPRequest true "Email payload"
// @Success 200 {object} router.successResponse{data=ResendOTPResponse} "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 422 {object} router.errorResponse "Account already verified"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/resend-otp [post]
func (h *HTTPEndpoint) ResendOTP(r *router.Request) (any, error) {
	var req ResendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.ResendOTP(r.Context(), usecase.ResendOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return ResendOTPResponse{}, nil
}

// Login authenticates with email and password.
// @Summary Log in
// @Description Validates credentials and returns a JWT for a verified account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Account not verified"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		User:  AuthUser{ID: resp.AccountID, Email: resp.Email},
		Token: resp.Token,
	}, nil
}
