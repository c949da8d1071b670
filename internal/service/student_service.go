package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type StudentService struct {
	students StudentRepo
	users    UserRepo
}

func NewStudentService(students StudentRepo, users UserRepo) *StudentService {
	return &StudentService{students: students, users: users}
}

func (s *StudentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing students", err)
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, toStudentResponse(&students[i]))
	}
	return out, nil
}

func (s *StudentService) Get(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching student", err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *StudentService) ListByMajor(ctx context.Context, major string) ([]dto.StudentResponse, error) {
	students, err := s.students.GetByMajor(ctx, major)
	if err != nil {
		return nil, apperr.Internal("listing students", err)
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, toStudentResponse(&students[i]))
	}
	return out, nil
}

// Create registers a student account: user row plus profile row, keyed by
// the same id.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
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
		RoleID:       model.RoleIDStudent,
		IsActive:     true,
	}
	student := &model.Student{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Major:       req.Major,
		YearOfStudy: req.YearOfStudy,
		CVFile:      req.CVFile,
	}
	if err := s.students.CreateWithUser(ctx, user, student); err != nil {
		return nil, apperr.Internal("creating student", err)
	}

	student.User = *user
	resp := toStudentResponse(student)
	return &resp, nil
}

// CreateProfile attaches a student profile to an already registered user.
func (s *StudentService) CreateProfile(ctx context.Context, req *dto.CreateStudentProfileRequest) (*dto.StudentResponse, error) {
	user, err := s.users.GetWithRole(ctx, req.UserID)
	if err != nil {
		return nil, apperr.Internal("fetching user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	existing, err := s.students.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperr.Internal("fetching student", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Student profile already exists for this user")
	}

	student := &model.Student{
		ID:          req.UserID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Major:       req.Major,
		YearOfStudy: req.YearOfStudy,
		CVFile:      req.CVFile,
	}
	if err := s.students.Add(ctx, student); err != nil {
		return nil, apperr.Internal("creating student profile", err)
	}

	student.User = *user
	resp := toStudentResponse(student)
	return &resp, nil
}

func (s *StudentService) Update(ctx context.Context, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching student", err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}

	student.FullName = req.FullName
	student.PhoneNumber = req.PhoneNumber
	student.Major = req.Major
	student.YearOfStudy = req.YearOfStudy
	if req.CVFile != nil {
		student.CVFile = req.CVFile
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, apperr.Internal("updating student", err)
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

// SetCVFile persists the stored CV path and returns the previous one so the
// caller can remove the superseded file.
func (s *StudentService) SetCVFile(ctx context.Context, id uint, path string) (previous *string, err error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching student", err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}

	previous = student.CVFile
	student.CVFile = &path
	if err := s.students.Update(ctx, student); err != nil {
		return nil, apperr.Internal("updating student", err)
	}
	return previous, nil
}

func (s *StudentService) Delete(ctx context.Context, id uint) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching student", err)
	}
	if student == nil {
		return apperr.NotFound("Student not found")
	}
	if err := s.students.Delete(ctx, student); err != nil {
		return apperr.Internal("deleting student", err)
	}
	return nil
}

func toStudentResponse(st *model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		StudentID:         st.ID,
		Email:             st.User.Email,
		FullName:          st.FullName,
		PhoneNumber:       st.PhoneNumber,
		Major:             st.Major,
		YearOfStudy:       st.YearOfStudy,
		CVFile:            st.CVFile,
		IsActive:          st.User.IsActive,
		CreatedAt:         st.User.CreatedAt,
		TotalApplications: len(st.Applications),
	}
}
