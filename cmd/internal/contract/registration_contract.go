package contract

import "github.com/shopspring/decimal"

type CreateMocRequest struct {
	MocNumber        string          `json:"mocNumber" validate:"required,max=64"`
	NotedDate        int64           `json:"notedDate" validate:"required"`
	Capital          decimal.Decimal `json:"capital"`
	DateOfBTV        int64           `json:"dateOfBTV"`
	CompanyType      int             `json:"companyType" validate:"required,oneof=1 2 3"`
	MocUsernameLogin string          `json:"mocUsernameLogin" validate:"omitempty,max=120"`
	MocPasswordLogin string          `json:"mocPasswordLogin" validate:"omitempty,max=120"`
	CompanyID        int64           `json:"companyId" validate:"required"`
}

type UpdateMocRequest struct {
	MocNumber        *string          `json:"mocNumber" validate:"omitempty,max=64"`
	NotedDate        *int64           `json:"notedDate"`
	Capital          *decimal.Decimal `json:"capital"`
	DateOfBTV        *int64           `json:"dateOfBTV"`
	CompanyType      *int             `json:"companyType" validate:"omitempty,oneof=1 2 3"`
	MocUsernameLogin *string          `json:"mocUsernameLogin" validate:"omitempty,max=120"`
	MocPasswordLogin *string          `json:"mocPasswordLogin" validate:"omitempty,max=120"`
}

type CreateDotRequest struct {
	DotNumber          string `json:"dotNumber" validate:"required,max=64"`
	NotedDate          int64  `json:"notedDate" validate:"required"`
	DotBranch          string `json:"dotBranch" validate:"omitempty,max=120"`
	Address            string `json:"address" validate:"omitempty,max=500"`
	BankName           string `json:"bankName" validate:"omitempty,max=120"`
	BankAccountName    string `json:"bankAccountName" validate:"omitempty,max=120"`
	BankAccountNumber  string `json:"bankAccountNumber" validate:"omitempty,max=64"`
	TaxationCardNumber string `json:"taxationCardNumber" validate:"omitempty,max=64"`
	PhoneNumber        string `json:"phoneNumber" validate:"omitempty,max=20"`
	CompanyID          int64  `json:"companyId" validate:"required"`
}

type UpdateDotRequest struct {
	DotNumber          *string `json:"dotNumber" validate:"omitempty,max=64"`
	NotedDate          *int64  `json:"notedDate"`
	DotBranch          *string `json:"dotBranch" validate:"omitempty,max=120"`
	Address            *string `json:"address" validate:"omitempty,max=500"`
	BankName           *string `json:"bankName" validate:"omitempty,max=120"`
	BankAccountName    *string `json:"bankAccountName" validate:"omitempty,max=120"`
	BankAccountNumber  *string `json:"bankAccountNumber" validate:"omitempty,max=64"`
	TaxationCardNumber *string `json:"taxationCardNumber" validate:"omitempty,max=64"`
	PhoneNumber        *string `json:"phoneNumber" validate:"omitempty,max=20"`
}
