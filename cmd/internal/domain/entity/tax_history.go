package entity

import "github.com/shopspring/decimal"

// TaxHistory is the per-company ledger of declared tax figures.
// Both sequences are kept sorted ascending by their period key after
// every mutation; there is never more than one monthly entry for the
// same (year, month) pair.
type TaxHistory struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	Deleted   bool  `gorm:"not null;default:false" json:"deleted"`
	CreatedAt int64 `gorm:"not null" json:"createdAt"`
	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`

	// Relations
	TaxPerMonths []*MonthlyTax `gorm:"foreignKey:TaxHistoryID;references:ID" json:"taxPerMonths"`
	TaxPerYears  []*YearlyTax  `gorm:"foreignKey:TaxHistoryID;references:ID" json:"taxPerYears"`
}

// MonthlyTax is one reported month. The (Year, Month) pair is the
// period key; Month is 1-12.
type MonthlyTax struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	TaxHistoryID int64           `gorm:"not null;index" json:"-"`
	Year         int             `gorm:"not null" json:"year"`
	Month        int             `gorm:"not null" json:"month"`
	Revenue      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"revenue"`
	Spending     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"spending"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"paidAmount"`
	Notes        string          `json:"notes"`
}

// SamePeriod reports whether both entries cover the same reporting month.
func (m *MonthlyTax) SamePeriod(year, month int) bool {
	return m.Year == year && m.Month == month
}

type YearlyTax struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	TaxHistoryID int64           `gorm:"not null;index" json:"-"`
	Year         int             `gorm:"not null" json:"year"`
	Revenue      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"revenue"`
	Spending     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"spending"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"paidAmount"`
	Notes        string          `json:"notes"`
}
