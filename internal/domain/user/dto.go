package user

// LoginRequest represents login form data
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest represents admin account creation
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

// UpdateUserRequest carries a partial merge; only non-nil fields are written.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

func (req *UpdateUserRequest) fields() map[string]any {
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	return fields
}
