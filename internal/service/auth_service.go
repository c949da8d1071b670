package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
	"parttimejobs/pkg/jwtutil"
	"parttimejobs/pkg/logger"
)

// AuthService handles registration, login and password changes.
type AuthService struct {
	users     UserRepo
	students  StudentRepo
	employers EmployerRepo
	jwt       *jwtutil.JWTUtil
}

func NewAuthService(users UserRepo, students StudentRepo, employers EmployerRepo, jwt *jwtutil.JWTUtil) *AuthService {
	return &AuthService{users: users, students: students, employers: employers, jwt: jwt}
}

// Register creates the user and, for Student/Employer roles, the profile row
// in the same transaction. Returns a fresh token so the caller is logged in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("checking email", err)
	}
	if exists {
		return nil, apperr.Conflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hashing password", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	switch req.Role {
	case model.RoleStudent:
		user.RoleID = model.RoleIDStudent
		student := &model.Student{FullName: req.FullName}
		if err := s.students.CreateWithUser(ctx, user, student); err != nil {
			return nil, apperr.Internal("creating student account", err)
		}
	case model.RoleEmployer:
		user.RoleID = model.RoleIDEmployer
		employer := &model.Employer{CompanyName: req.CompanyName}
		if err := s.employers.CreateWithUser(ctx, user, employer); err != nil {
			return nil, apperr.Internal("creating employer account", err)
		}
	case model.RoleAdmin:
		user.RoleID = model.RoleIDAdmin
		if err := s.users.Add(ctx, user); err != nil {
			return nil, apperr.Internal("creating admin account", err)
		}
	default:
		return nil, apperr.Validation("invalid role: " + req.Role)
	}

	logger.FromContext(ctx).Info("Account registered",
		zap.Uint("user_id", user.ID), zap.String("role", req.Role))
	return s.issueToken(user, req.Role)
}

// Login verifies credentials and rejects inactive accounts.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("fetching user", err)
	}
	if user == nil {
		log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if !user.IsActive {
		log.Warn("Login attempt on deactivated account", zap.Uint("user_id", user.ID))
		return nil, apperr.Unauthorized("Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		log.Warn("Login attempt with wrong password", zap.Uint("user_id", user.ID))
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	return s.issueToken(user, user.Role.RoleName)
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.users.GetWithRole(ctx, userID)
	if err != nil {
		return apperr.Internal("fetching user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("hashing password", err)
	}
	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return apperr.Internal("updating password", err)
	}
	return nil
}

func (s *AuthService) issueToken(user *model.User, role string) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.jwt.GenerateToken(user.Email, user.ID, role)
	if err != nil {
		return nil, apperr.Internal("generating token", err)
	}
	return &dto.AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
