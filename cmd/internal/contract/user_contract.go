package contract

type CreateUserRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2,max=80"`
	UserName    string `json:"userName" validate:"required,min=2,max=80,nospaces"`
	Password    string `json:"password" validate:"required,min=8,max=64,hasdigit,hasupper,haslower"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
	CompanyID   int64  `json:"company" validate:"required"`
}

type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
	// RegistrationToken is unioned into the user's device-token set
	// when present.
	RegistrationToken string `json:"registrationToken" validate:"omitempty,max=512"`
}

type UpdateUserRequest struct {
	FullName    *string `json:"fullName" validate:"omitempty,min=2,max=80"`
	UserName    *string `json:"userName" validate:"omitempty,min=2,max=80,nospaces"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=64,hasdigit,hasupper,haslower"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=64,hasdigit,hasupper,haslower"`
}

// UserSafeResponse is the minimal identity block exposed to the
// `current/safe` route.
type UserSafeResponse struct {
	FullName string `json:"fullName"`
	UserName string `json:"userName"`
}
