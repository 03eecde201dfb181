package domain

import (
	"errors"
)

var (
	MessageSuccessRegister  = "user registered successfully"
	MessageSuccessLogin     = "login success"
	MessageSuccessGetMe     = "success get profile"
	MessageSuccessVerify    = "email verified successfully"
	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetMe      = "failed to get profile"
	MessageFailedVerify     = "failed to verify email"

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid username or password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string      `json:"token"`
		User  UserProfile `json:"user"`
	}

	UserProfile struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		IsVerified bool   `json:"is_verified"`
	}
)
