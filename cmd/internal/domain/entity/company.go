package entity

// Company groups every record the back office keeps about one client:
// its registrations (MOC/DOT), certificate documents and tax history.
type Company struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	NameInKhmer  string `gorm:"not null" json:"nameInKhmer"`
	Description  string `json:"description"`
	MocID        *int64 `json:"mocId,omitempty"`
	DotID        *int64 `json:"dotId,omitempty"`
	DocID        *int64 `json:"docId,omitempty"`
	TaxHistoryID *int64 `json:"taxHistoryId,omitempty"`
	Deleted      bool   `gorm:"not null;default:false" json:"deleted"`
	CreatedAt    int64  `gorm:"not null" json:"createdAt"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`

	// Relations
	Moc        *Moc        `gorm:"foreignKey:MocID;references:ID" json:"moc,omitempty"`
	Dot        *Dot        `gorm:"foreignKey:DotID;references:ID" json:"dot,omitempty"`
	Doc        *Doc        `gorm:"foreignKey:DocID;references:ID" json:"doc,omitempty"`
	TaxHistory *TaxHistory `gorm:"foreignKey:TaxHistoryID;references:ID" json:"taxHistory,omitempty"`
	User       *User       `gorm:"foreignKey:CompanyID;references:ID" json:"user,omitempty"`
}
