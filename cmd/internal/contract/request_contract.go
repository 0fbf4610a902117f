package contract

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
	CompanyID   int64  `json:"companyId" validate:"required"`
	Type        int    `json:"type" validate:"omitempty,oneof=1 2"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}
