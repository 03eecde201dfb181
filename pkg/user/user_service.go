package user

import (
	"Melt-App/domain"
	"Melt-App/entities"
	"Melt-App/internal/utils"
	"Melt-App/internal/utils/mailing"
	"Melt-App/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		VerifyEmail(ctx context.Context, token string) error
		GetAllUsers(ctx context.Context) ([]domain.UserProfile, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.AuthResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := entities.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.AuthResponse{}, err
	}

	// Verification mail failure must not block signup.
	if err := s.sendVerificationEmail(&user); err != nil {
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toProfile(&user)}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.AuthResponse{Token: token, User: toProfile(user)}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	return toProfile(user), nil
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateVerificationToken(token)
	if err != nil {
		return err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return domain.ErrTokenInvalid
	}
	return s.userRepository.MarkVerified(ctx, userID)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserProfile, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		result = append(result, toProfile(u))
	}
	return result, nil
}

func (s *userService) sendVerificationEmail(user *entities.User) error {
	token, err := s.jwtService.GenerateVerificationToken(
		map[string]any{"user_id": user.ID.String()},
		24*time.Hour,
	)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to MELT. Please verify your email by clicking "+
			"<a href=%q>this link</a>. The link expires in 24 hours.</p>",
		user.Username, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verify your MELT account", body)
}

func toProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}
