package service

import (
	"context"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type RoleService struct {
	roles RoleRepo
}

func NewRoleService(roles RoleRepo) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.roles.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing roles", err)
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, toRoleResponse(&roles[i]))
	}
	return out, nil
}

func (s *RoleService) Get(ctx context.Context, id uint) (*dto.RoleResponse, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching role", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found")
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *RoleService) GetByName(ctx context.Context, name string) (*dto.RoleResponse, error) {
	role, err := s.roles.GetByName(ctx, name)
	if err != nil {
		return nil, apperr.Internal("fetching role", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found")
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *RoleService) Create(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	exists, err := s.roles.NameExists(ctx, req.RoleName)
	if err != nil {
		return nil, apperr.Internal("checking role name", err)
	}
	if exists {
		return nil, apperr.Conflict("Role name already exists")
	}

	role := &model.Role{RoleName: req.RoleName}
	if err := s.roles.Add(ctx, role); err != nil {
		return nil, apperr.Internal("creating role", err)
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *RoleService) Update(ctx context.Context, id uint, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching role", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found")
	}

	if req.RoleName != role.RoleName {
		exists, err := s.roles.NameExists(ctx, req.RoleName)
		if err != nil {
			return nil, apperr.Internal("checking role name", err)
		}
		if exists {
			return nil, apperr.Conflict("Role name already exists")
		}
	}

	role.RoleName = req.RoleName
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, apperr.Internal("updating role", err)
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

func (s *RoleService) Delete(ctx context.Context, id uint) error {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching role", err)
	}
	if role == nil {
		return apperr.NotFound("Role not found")
	}
	if err := s.roles.Delete(ctx, role); err != nil {
		return apperr.Internal("deleting role", err)
	}
	return nil
}

func toRoleResponse(r *model.Role) dto.RoleResponse {
	return dto.RoleResponse{
		RoleID:     r.ID,
		RoleName:   r.RoleName,
		TotalUsers: len(r.Users),
	}
}
