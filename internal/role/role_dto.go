package role

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}

type RoleResponse struct {
	Guid string `json:"guid"`
	Name string `json:"name"`
}
