package contract

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	NameInKhmer string `json:"nameInKhmer" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	NameInKhmer *string `json:"nameInKhmer" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}
