package user

import (
	"context"
	"testing"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
	"EcoBite-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
	created []*entities.User
	updated []*entities.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		byEmail: map[string]*entities.User{},
		byID:    map[string]*entities.User{},
	}
}

func (m *mockUserRepository) add(user *entities.User) {
	m.byEmail[user.Email] = user
	m.byID[user.ID.String()] = user
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m.created = append(m.created, user)
	m.add(user)
	return nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	m.updated = append(m.updated, user)
	m.add(user)
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo, jwt.NewJWTService())

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "wastenot",
		Email:    "wastenot@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "wastenot", res.Username)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.NotEqual(t, "supersecret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret1")))
	assert.Equal(t, domain.RoleUser, stored.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	repo.add(&entities.User{
		ID:    uuid.New(),
		Email: "taken@example.com",
	})
	service := NewUserService(repo, jwt.NewJWTService())

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "newbie",
		Email:    "taken@example.com",
		Password: "supersecret1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := newMockUserRepository()
	repo.add(&entities.User{
		ID:       uuid.New(),
		Email:    "cook@example.com",
		Password: string(hashed),
		Role:     domain.RoleUser,
	})
	service := NewUserService(repo, jwt.NewJWTService())

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "rightpassword",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "cook@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	user := &entities.User{
		ID:       uuid.New(),
		Username: "old",
		Email:    "u@example.com",
		Password: "oldhash",
	}
	repo := newMockUserRepository()
	repo.add(user)
	service := NewUserService(repo, jwt.NewJWTService())

	err := service.UpdateUser(context.Background(), domain.UpdateUserRequest{
		Username: "newname",
		Password: "newpassword1",
	}, user.ID.String())
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, "newname", repo.updated[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updated[0].Password), []byte("newpassword1")))
}
