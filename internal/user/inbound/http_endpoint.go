package inbound

import (
	"github.com/shandysiswandi/godo/internal/pkg/i18n"
	"github.com/shandysiswandi/godo/internal/pkg/router"
	"github.com/shandysiswandi/godo/internal/user/usecase"
)

// HTTPEndpoint exposes HTTP handlers for account and OTP workflows.
type HTTPEndpoint struct {
	uc uc
}

// Login authenticates a user and issues a JWT access token.
// @Summary Authenticate user
// @Description Validates credentials and returns a bearer access token with its lifetime.
// @Tags Users, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.envelope{data=LoginResponse} "Access token"
// @Failure 401 {object} router.envelope "Invalid credentials"
// @Router /api/v1/users/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}

// Create registers a new user account.
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 201 {object} router.envelope{data=CreateUserResponse} "Created user"
// @Failure 409 {object} router.envelope "Username or email already exists"
// @Failure 422 {object} router.envelope "Validation error"
// @Router /api/v1/users [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateUserRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UserCreate(r.Context(), usecase.UserCreateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return CreateUserResponse{UserResponse: newUserResponse(resp.User)}, nil
}

// List returns a paginated page of users.
// @Summary List users
// @Produce json
// @Tags Users
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} router.envelope{data=ListUsersResponse} "User page"
// @Router /api/v1/users [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return newListUsersResponse(resp.Users, resp.Total, resp.Page, resp.Size), nil
}

// Detail returns a single user by ID. The literal id "me" resolves to
// the authenticated user; httprouter cannot register a static /me route
// next to the :id parameter.
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID or the literal value me"
// @Success 200 {object} router.envelope{data=DetailUserResponse} "User"
// @Failure 404 {object} router.envelope "User not found"
// @Router /api/v1/users/{id} [get]
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	if r.GetParam("id") == "me" {
		resp, err := h.uc.Me(r.Context())
		if err != nil {
			return nil, err
		}

		return DetailUserResponse{UserResponse: newUserResponse(resp.User)}, nil
	}

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserDetail(r.Context(), usecase.UserDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return DetailUserResponse{UserResponse: newUserResponse(resp.User)}, nil
}

// Update applies a full or partial update to a user account.
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} router.envelope{data=UpdateUserResponse} "Updated user"
// @Failure 404 {object} router.envelope "User not found"
// @Failure 409 {object} router.envelope "Username or email already exists"
// @Router /api/v1/users/{id} [put]
func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UpdateUserRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UserUpdate(r.Context(), usecase.UserUpdateInput{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return UpdateUserResponse{UserResponse: newUserResponse(resp.User)}, nil
}

// Delete removes a user account.
// @Summary Delete user
// @Tags Users
// @Param id path int true "User ID"
// @Success 204 "No content"
// @Failure 404 {object} router.envelope "User not found"
// @Router /api/v1/users/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.UserDelete(r.Context(), usecase.UserDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// OTPRequest issues a one-time passcode for an email address.
// @Summary Request OTP
// @Description Issues a passcode for the email, replacing any active one, and publishes it for delivery.
// @Tags Users, OTP
// @Accept json
// @Produce json
// @Param request body OTPRequestRequest true "OTP request payload"
// @Success 200 {object} router.envelope{data=OTPRequestResponse} "Issued passcode info"
// @Failure 422 {object} router.envelope "Validation error"
// @Router /api/v1/users/otp/request [post]
func (h *HTTPEndpoint) OTPRequest(r *router.Request) (any, error) {
	var req OTPRequestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPRequest(r.Context(), usecase.OTPRequestInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return newOTPRequestResponse(resp, i18n.KeyOTPSent), nil
}

// OTPVerify validates a submitted passcode, consuming it on success.
// @Summary Verify OTP
// @Tags Users, OTP
// @Accept json
// @Produce json
// @Param request body OTPVerifyRequest true "OTP verification payload"
// @Success 200 {object} router.envelope{data=OTPVerifyResponse} "Verification result"
// @Failure 400 {object} router.envelope "Passcode mismatch"
// @Failure 404 {object} router.envelope "Passcode not found or expired"
// @Router /api/v1/users/otp/verify [post]
func (h *HTTPEndpoint) OTPVerify(r *router.Request) (any, error) {
	var req OTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPVerify(r.Context(), usecase.OTPVerifyInput{
		Email:   req.Email,
		OTPCode: req.OTPCode,
	})
	if err != nil {
		return nil, err
	}

	return OTPVerifyResponse{Email: resp.Email}, nil
}

// OTPResend invalidates the active passcode and issues a fresh one.
// @Summary Resend OTP
// @Tags Users, OTP
// @Accept json
// @Produce json
// @Param request body OTPRequestRequest true "OTP resend payload"
// @Success 200 {object} router.envelope{data=OTPRequestResponse} "Issued passcode info"
// @Router /api/v1/users/otp/resend [post]
func (h *HTTPEndpoint) OTPResend(r *router.Request) (any, error) {
	var req OTPRequestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPResend(r.Context(), usecase.OTPResendInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return newOTPRequestResponse(resp, i18n.KeyOTPResent), nil
}

func newOTPRequestResponse(resp *usecase.OTPRequestOutput, messageKey string) OTPRequestResponse {
	out := OTPRequestResponse{
		Email:            resp.Email,
		ExpiresInSeconds: resp.ExpiresInSeconds,
		messageKey:       messageKey,
	}
	if resp.EchoCode {
		out.OTPCode = resp.Code
	}

	return out
}
