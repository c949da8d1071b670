package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
	"parttimejobs/pkg/config"
	"parttimejobs/pkg/jwtutil"
)

func testJWT() *jwtutil.JWTUtil {
	return jwtutil.NewJWTUtil(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		Issuer:          "parttimejobs-api",
		Audience:        "parttimejobs-web",
		ExpirationHours: 1,
	})
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeStudentRepo, *fakeEmployerRepo) {
	users := newFakeUserRepo()
	students := newFakeStudentRepo(users)
	employers := newFakeEmployerRepo(users)
	return NewAuthService(users, students, employers, testJWT()), users, students, employers
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password, role string, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     active,
		Role:         model.Role{RoleName: role},
	}
	require.NoError(t, users.Add(context.Background(), user))
	return user
}

func TestAuthServiceRegister_Student(t *testing.T) {
	svc, users, students, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "anna@example.com",
		Password: "secret1",
		Role:     model.RoleStudent,
		FullName: "Anna Ivanova",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleStudent, resp.Role)

	user, err := users.GetByEmail(context.Background(), "anna@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsActive)
	assert.Equal(t, model.RoleIDStudent, user.RoleID)

	// Profile shares the user's primary key.
	student, err := students.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, student)
	assert.Equal(t, "Anna Ivanova", student.FullName)
}

func TestAuthServiceRegister_Employer(t *testing.T) {
	svc, _, _, employers := newAuthFixture()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:       "hr@acme.test",
		Password:    "secret1",
		Role:        model.RoleEmployer,
		CompanyName: "Acme Ltd",
	})
	require.NoError(t, err)

	employer, err := employers.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	require.NotNil(t, employer)
	assert.Equal(t, "Acme Ltd", employer.CompanyName)
	assert.False(t, employer.IsVerified, "new employers start unverified")
}

func TestAuthServiceRegister_DuplicateEmail(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	seedUser(t, users, "taken@example.com", "secret1", model.RoleStudent, true)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret1",
		Role:     model.RoleStudent,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
	assert.Equal(t, "Email already exists", apperr.MessageOf(err))
}

func TestAuthServiceRegister_InvalidRole(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "x@example.com",
		Password: "secret1",
		Role:     "Superuser",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestAuthServiceLogin(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	seedUser(t, users, "anna@example.com", "secret1", model.RoleStudent, true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "anna@example.com", resp.Email)
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	seedUser(t, users, "anna@example.com", "secret1", model.RoleStudent, true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))
	assert.Equal(t, "Invalid email or password", apperr.MessageOf(err))
}

func TestAuthServiceLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))
	// Same message as a wrong password so accounts can't be enumerated.
	assert.Equal(t, "Invalid email or password", apperr.MessageOf(err))
}

func TestAuthServiceLogin_DeactivatedAccount(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	seedUser(t, users, "anna@example.com", "secret1", model.RoleStudent, false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "anna@example.com",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))
	assert.Equal(t, "Account is deactivated", apperr.MessageOf(err))
}

func TestAuthServiceChangePassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	user := seedUser(t, users, "anna@example.com", "secret1", model.RoleStudent, true)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "updated1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "anna@example.com", Password: "updated1"})
	require.NoError(t, err)
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "anna@example.com", Password: "secret1"})
	require.Error(t, err)
}

func TestAuthServiceChangePassword_WrongCurrent(t *testing.T) {
	svc, users, _, _ := newAuthFixture()
	user := seedUser(t, users, "anna@example.com", "secret1", model.RoleStudent, true)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "updated1",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeUnauthorized))
	assert.Equal(t, "Current password is incorrect", apperr.MessageOf(err))
}
