package subcompany

// CreateSubCompanyRequest represents admin creation form data
type CreateSubCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Email       string `json:"email" validate:"omitempty,email"`
	MobilePhone string `json:"mobile_phone"`
	Address     string `json:"address"`
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	TikTok      string `json:"tiktok"`
	YouTube     string `json:"youtube"`
}

// UpdateSubCompanyRequest carries a partial merge; only non-nil fields are written.
type UpdateSubCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Email       *string `json:"email" validate:"omitempty,email"`
	MobilePhone *string `json:"mobile_phone"`
	Address     *string `json:"address"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	TikTok      *string `json:"tiktok"`
	YouTube     *string `json:"youtube"`
}

func (req *UpdateSubCompanyRequest) fields() map[string]any {
	fields := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("name", req.Name)
	set("description", req.Description)
	set("logo", req.Logo)
	set("email", req.Email)
	set("mobile_phone", req.MobilePhone)
	set("address", req.Address)
	set("facebook", req.Facebook)
	set("instagram", req.Instagram)
	set("tiktok", req.TikTok)
	set("youtube", req.YouTube)
	return fields
}
