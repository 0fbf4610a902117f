package entity

// Doc holds the storage URLs of a company's certificate scans.
type Doc struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	MocCertificate  string `json:"moc_certificate"`
	BusinessExtract string `json:"business_extract"`
	VatCertificate  string `json:"vat_certificate"`
	Patent          string `json:"patent"`
	GdtCard         string `json:"gdt_card"`
	Deleted         bool   `gorm:"not null;default:false" json:"deleted"`
	CreatedAt       int64  `gorm:"not null" json:"createdAt"`
	UpdatedAt       int64  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`

	// Relations
	Others []*OtherDocument `gorm:"foreignKey:DocID;references:ID" json:"others"`
}

// OtherDocument is any uploaded file that has no dedicated slot on Doc.
type OtherDocument struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	DocID        int64  `gorm:"not null;index" json:"-"`
	DocURL       string `gorm:"not null" json:"docUrl"`
	Title        string `gorm:"not null" json:"title"`
	TitleInKhmer string `json:"titleInKhmer"`
}
