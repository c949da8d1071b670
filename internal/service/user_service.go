package service

import (
	"context"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

// UserService covers the admin account-management surface.
type UserService struct {
	users     UserRepo
	students  StudentRepo
	employers EmployerRepo
}

func NewUserService(users UserRepo, students StudentRepo, employers EmployerRepo) *UserService {
	return &UserService{users: users, students: students, employers: employers}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing users", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.users.GetWithRole(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update changes the account email and active flag, plus the display name
// and phone on whichever profile row the user owns.
func (s *UserService) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.GetWithRole(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	if req.Email != user.Email {
		exists, err := s.users.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, apperr.Internal("checking email", err)
		}
		if exists {
			return nil, apperr.Conflict("Email already exists")
		}
		user.Email = req.Email
	}
	user.IsActive = req.IsActive

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperr.Internal("updating user", err)
	}

	if user.Student != nil {
		if req.FullName != nil {
			user.Student.FullName = *req.FullName
		}
		if req.Phone != nil {
			user.Student.PhoneNumber = req.Phone
		}
		if err := s.students.Update(ctx, user.Student); err != nil {
			return nil, apperr.Internal("updating student profile", err)
		}
	} else if user.Employer != nil {
		if req.FullName != nil {
			user.Employer.ContactName = req.FullName
		}
		if req.Phone != nil {
			user.Employer.PhoneNumber = req.Phone
		}
		if err := s.employers.Update(ctx, user.Employer); err != nil {
			return nil, apperr.Internal("updating employer profile", err)
		}
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.users.GetWithRole(ctx, id)
	if err != nil {
		return apperr.Internal("fetching user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return apperr.Internal("deleting user", err)
	}
	return nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role.RoleName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	switch {
	case u.Student != nil:
		resp.FullName = &u.Student.FullName
		resp.Phone = u.Student.PhoneNumber
	case u.Employer != nil:
		resp.FullName = &u.Employer.CompanyName
		resp.Phone = u.Employer.PhoneNumber
	}
	return resp
}
