package domain

import (
	"errors"
	"os"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageDatabaseUnavailable  = "database unavailable"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID           = errors.New("failed to parse UUID")
	ErrUserNotAllowed      = errors.New("user not allowed")
	ErrTokenNotFound       = errors.New("failed to token not found")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrDatabaseUnavailable = errors.New("database not connected yet")
)
