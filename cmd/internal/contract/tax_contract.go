package contract

import "github.com/shopspring/decimal"

// MonthlyTaxPayload is one reported month as supplied by the client.
// (Year, Month) is the period key.
type MonthlyTaxPayload struct {
	Year       int             `json:"year" validate:"required,min=1900,max=3000"`
	Month      int             `json:"month" validate:"required,min=1,max=12"`
	Revenue    decimal.Decimal `json:"revenue"`
	Spending   decimal.Decimal `json:"spending"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Notes      string          `json:"notes" validate:"omitempty,max=2000"`
}

type YearlyTaxPayload struct {
	Year       int             `json:"year" validate:"required,min=1900,max=3000"`
	Revenue    decimal.Decimal `json:"revenue"`
	Spending   decimal.Decimal `json:"spending"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Notes      string          `json:"notes" validate:"omitempty,max=2000"`
}

type CreateTaxHistoryRequest struct {
	CompanyID    int64               `json:"companyId" validate:"required"`
	TaxPerMonths []MonthlyTaxPayload `json:"taxPerMonths" validate:"dive"`
	TaxPerYears  []YearlyTaxPayload  `json:"taxPerYears" validate:"dive"`
}

// UpdateTaxHistoryRequest replaces whichever sequences are present.
type UpdateTaxHistoryRequest struct {
	TaxPerMonths []MonthlyTaxPayload `json:"taxPerMonths" validate:"omitempty,dive"`
	TaxPerYears  []YearlyTaxPayload  `json:"taxPerYears" validate:"omitempty,dive"`
}

type UpsertMonthRequest struct {
	CompanyID int64             `json:"companyId" validate:"required"`
	Entry     MonthlyTaxPayload `json:"entry"`
}

// ReplaceYearsRequest swaps a company's entire yearly sequence.
type ReplaceYearsRequest struct {
	CompanyID int64              `json:"companyId" validate:"required"`
	Entries   []YearlyTaxPayload `json:"entries" validate:"dive"`
}
