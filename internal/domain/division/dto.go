package division

// CreateDivisionRequest represents admin creation form data
type CreateDivisionRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	SubCompanyID string `json:"sub_company_id" validate:"required"`
}

// UpdateDivisionRequest carries a partial merge; only non-nil fields are written.
type UpdateDivisionRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	SubCompanyID *string `json:"sub_company_id"`
}

func (req *UpdateDivisionRequest) fields() map[string]any {
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if req.SubCompanyID != nil {
		fields["sub_company_id"] = *req.SubCompanyID
	}
	return fields
}

// DivisionView is a list row with the parent name resolved for display.
type DivisionView struct {
	Division
	SubCompanyName string `json:"sub_company_name"`
}
