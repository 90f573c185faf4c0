package auth

import (
	"context"
	"testing"

	"courtbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID, role string) (string, error) {
	return "token-" + userID, nil
}

func TestRegister(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, fakeJWT{})

	mockUsers.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	res, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    " Ana@Example.com ",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, domain.RolePlayer, res.User.Role)
	assert.Empty(t, res.User.PasswordHash)
	assert.NotEmpty(t, res.Token)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, fakeJWT{})

	mockUsers.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{ID: "u1"}, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	service := NewService(new(MockUserRepository), fakeJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret-pass",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, fakeJWT{})
	mockUsers.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RolePlayer,
	}, nil)

	res, err := service.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "secret-pass"})

	assert.NoError(t, err)
	assert.Equal(t, "token-u1", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)

	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, fakeJWT{})
	mockUsers.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           "u1",
		PasswordHash: string(hash),
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{Email: "ana@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, fakeJWT{})
	mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
