package dto

type CreateRoleRequest struct {
	RoleName string `json:"roleName" validate:"required,max=50"`
}

type UpdateRoleRequest struct {
	RoleName string `json:"roleName" validate:"required,max=50"`
}

type RoleResponse struct {
	RoleID     uint   `json:"roleId"`
	RoleName   string `json:"roleName"`
	TotalUsers int    `json:"totalUsers"`
}
