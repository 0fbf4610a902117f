package entity

import "github.com/shopspring/decimal"

type CompanyType int

const (
	CompanyTypeSoleProprietorship CompanyType = 1
	CompanyTypePrivateLimited     CompanyType = 2
	CompanyTypePublicLimited      CompanyType = 3
)

// Moc is a company's Ministry of Commerce registration record.
type Moc struct {
	ID               int64           `gorm:"primaryKey" json:"id"`
	MocNumber        string          `gorm:"not null" json:"mocNumber"`
	NotedDate        int64           `gorm:"not null" json:"notedDate"`
	Capital          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"capital"`
	DateOfBTV        int64           `json:"dateOfBTV"`
	CompanyType      CompanyType     `json:"companyType"`
	MocUsernameLogin string          `json:"mocUsernameLogin"`
	MocPasswordLogin string          `json:"mocPasswordLogin"`
	Deleted          bool            `gorm:"not null;default:false" json:"deleted"`
	CreatedAt        int64           `gorm:"not null" json:"createdAt"`
	UpdatedAt        int64           `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
