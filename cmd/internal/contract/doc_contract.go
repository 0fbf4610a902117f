package contract

import "github.com/shopspring/decimal"

const MaxDocFileSizeBytes = 30 * 1024 * 1024

var ValidDocFileTypes = []string{"pdf", "png", "jpg", "jpeg", "webp"}

type OtherDocumentPayload struct {
	DocURL       string `json:"docUrl" validate:"required,max=1000"`
	Title        string `json:"title" validate:"required,max=200"`
	TitleInKhmer string `json:"titleInKhmer" validate:"omitempty,max=200"`
}

// SaveDocRequest creates a company's document record, or patches the
// one identified by DocID when it is present.
type SaveDocRequest struct {
	DocID           *int64                 `json:"docId"`
	CompanyID       int64                  `json:"companyId" validate:"required"`
	MocCertificate  *string                `json:"moc_certificate" validate:"omitempty,max=1000"`
	BusinessExtract *string                `json:"business_extract" validate:"omitempty,max=1000"`
	VatCertificate  *string                `json:"vat_certificate" validate:"omitempty,max=1000"`
	Patent          *string                `json:"patent" validate:"omitempty,max=1000"`
	GdtCard         *string                `json:"gdt_card" validate:"omitempty,max=1000"`
	Others          []OtherDocumentPayload `json:"others" validate:"omitempty,dive"`
}

type UploadDocResponse struct {
	DocURL string `json:"docUrl"`
}

type CreateServicePlanRequest struct {
	Threshold              decimal.Decimal `json:"threshold"`
	MoreThanThresholdPrice decimal.Decimal `json:"moreThanThresholdPrice"`
	LessThanThresholdPrice decimal.Decimal `json:"lessThanThresholdPrice"`
	SalaryTaxPrice         decimal.Decimal `json:"salaryTaxPrice"`
	PatentTaxPrice         decimal.Decimal `json:"patentTaxPrice"`
	TrademarkTaxPrice      decimal.Decimal `json:"trademarkTaxPrice"`
	PropertyTaxPrice       decimal.Decimal `json:"propertyTaxPrice"`
	TransportationTaxPrice decimal.Decimal `json:"transportationTaxPrice"`
	DocURL                 string          `json:"docUrl" validate:"omitempty,max=1000"`
}
