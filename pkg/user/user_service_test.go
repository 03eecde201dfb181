package user

import (
	"Melt-App/domain"
	"Melt-App/entities"
	"Melt-App/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, u := range r.users {
		result = append(result, u)
	}
	return result, nil
}

func (r *fakeUserRepository) MarkVerified(ctx context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsVerified = true
	return nil
}

func registerReq(username, email string) domain.RegisterRequest {
	return domain.RegisterRequest{Username: username, Email: email, Password: "correct horse battery"}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, domain.RoleUser, res.User.Role)
	assert.False(t, res.User.IsVerified)

	stored, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", stored.Password, "password must never be stored in plaintext")
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterRejectsTakenIdentity(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("alice", "other@example.com"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.Register(ctx, registerReq("bob", "alice@example.com"))
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, jwt.NewJWTService())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestVerifyEmail(t *testing.T) {
	repo := newFakeUserRepository()
	jwtService := jwt.NewJWTService()
	svc := NewUserService(repo, jwtService)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	token, err := jwtService.GenerateVerificationToken(map[string]any{"user_id": res.User.ID}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(ctx, token))
	stored, err := repo.GetUserByID(ctx, res.User.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
}

func TestMeUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepository(), jwt.NewJWTService())

	_, err := svc.Me(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
