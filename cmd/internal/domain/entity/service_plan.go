package entity

import "github.com/shopspring/decimal"

// ServicePlan is the published price sheet for the tax-return services
// the office offers. The monthly return price depends on whether the
// company's revenue crosses Threshold.
type ServicePlan struct {
	ID                     int64           `gorm:"primaryKey" json:"id"`
	Threshold              decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"threshold"`
	MoreThanThresholdPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"moreThanThresholdPrice"`
	LessThanThresholdPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"lessThanThresholdPrice"`
	SalaryTaxPrice         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"salaryTaxPrice"`
	PatentTaxPrice         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"patentTaxPrice"`
	TrademarkTaxPrice      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"trademarkTaxPrice"`
	PropertyTaxPrice       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"propertyTaxPrice"`
	TransportationTaxPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"transportationTaxPrice"`
	DocURL                 string          `json:"docUrl"`
	Deleted                bool            `gorm:"not null;default:false" json:"deleted"`
	CreatedAt              int64           `gorm:"not null" json:"createdAt"`
	UpdatedAt              int64           `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}
