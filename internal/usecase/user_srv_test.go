package usecase_test

import (
	"context"
	"testing"

	"stayease/internal/data/entity"
	"stayease/internal/dto/request"
	"stayease/internal/usecase"
	"stayease/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(f *fixture) usecase.UserService {
	return usecase.NewUserService(f.repo, zap.NewNop())
}

func TestUserService_CreateUser(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	resp, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Citra Dewi",
		Email:    "citra@example.com",
		Password: "secret123",
		Role:     "staff",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, resp.Role)

	_, err = svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Citra Again",
		Email:    "citra@example.com",
		Password: "secret123",
		Role:     "user",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestUserService_CreateUser_InvalidRole(t *testing.T) {
	f := newFixture()
	svc := newUserService(f)

	_, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "Citra Dewi",
		Email:    "citra@example.com",
		Password: "secret123",
		Role:     "superadmin",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUserService_UpdateUser(t *testing.T) {
	f := newFixture()
	user := f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	svc := newUserService(f)

	newPassword := "newsecret"
	resp, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UpdateUserRequest{
		Name:     "Andi W.",
		Email:    "andi@example.com",
		Password: &newPassword,
		Role:     "staff",
	})

	require.NoError(t, err)
	assert.Equal(t, "Andi W.", resp.Name)
	assert.Equal(t, entity.RoleStaff, resp.Role)

	stored, err := f.repo.User.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newsecret", stored.PasswordHash))
}

func TestUserService_UpdateUser_KeepsPasswordWhenOmitted(t *testing.T) {
	f := newFixture()
	user := f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	svc := newUserService(f)

	_, err := svc.UpdateUser(context.Background(), user.ID.String(), &request.UpdateUserRequest{
		Name:  "Andi W.",
		Email: "andi@example.com",
		Role:  "user",
	})

	require.NoError(t, err)

	stored, err := f.repo.User.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", stored.PasswordHash)
}

func TestUserService_UpdateUser_EmailCollision(t *testing.T) {
	f := newFixture()
	f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	other := f.seedUser("Budi Santoso", "budi@example.com", entity.RoleUser)
	svc := newUserService(f)

	_, err := svc.UpdateUser(context.Background(), other.ID.String(), &request.UpdateUserRequest{
		Name:  "Budi Santoso",
		Email: "andi@example.com",
		Role:  "user",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestUserService_DeleteUser_RevokesSessions(t *testing.T) {
	f := newFixture()
	user := f.seedUser("Andi Wijaya", "andi@example.com", entity.RoleUser)
	svc := newUserService(f)

	// Open a live session for the account
	config := &utils.Config{}
	config.Session.ExpiryHours = 24
	authSvc := usecase.NewAuthService(f.repo, config, zap.NewNop())

	resp, err := authSvc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	victim, err := f.repo.User.FindByEmail(context.Background(), "budi@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), victim.ID.String()))

	deleted, err := f.repo.User.FindByID(context.Background(), victim.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	session, err := f.repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	// The untouched account is still there
	kept, err := f.repo.User.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestUserService_GetAllUsers_Pagination(t *testing.T) {
	f := newFixture()
	for i := 0; i < 15; i++ {
		f.seedUser("User", "user"+string(rune('a'+i))+"@example.com", entity.RoleUser)
	}
	svc := newUserService(f)

	resp, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 5)
	assert.Equal(t, int64(15), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}
